package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/rest/request"
	"github.com/Guyuepp/go-clean-forum/internal/rest/response"
)

type LikeHandler struct {
	Service domain.LikeUsecase
}

func NewLikeHandler(svc domain.LikeUsecase) *LikeHandler {
	return &LikeHandler{
		Service: svc,
	}
}

func (h *LikeHandler) Like(c *gin.Context) {
	var req request.Like
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	uid, ok := currentUser(c)
	if !ok {
		return
	}

	tt, tid := req.Target()
	l, err := h.Service.Like(c.Request.Context(), uid, tt, tid)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewLikeFromDomain(&l))
}

// Unlike reads the target from the query string
func (h *LikeHandler) Unlike(c *gin.Context) {
	var req request.Like
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}
	uid, ok := currentUser(c)
	if !ok {
		return
	}

	tt, tid := req.Target()
	changed, err := h.Service.Unlike(c.Request.Context(), uid, tt, tid)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_changed": changed})
}

func (h *LikeHandler) FetchByTarget(c *gin.Context) {
	var req request.Like
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	tt, tid := req.Target()
	list, next, err := h.Service.FetchByTarget(c.Request.Context(), tt, tid, scopeOf(c), c.Query("cursor"), pageNum(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Header("X-Cursor", next)
	c.JSON(http.StatusOK, gin.H{"likes": response.NewLikesFromDomain(list)})
}

func (h *LikeHandler) FetchByUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	list, next, err := h.Service.FetchByUser(c.Request.Context(), id, scopeOf(c), c.Query("cursor"), pageNum(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Header("X-Cursor", next)
	c.JSON(http.StatusOK, gin.H{"likes": response.NewLikesFromDomain(list)})
}
