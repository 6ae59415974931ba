package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/rest/request"
	"github.com/Guyuepp/go-clean-forum/internal/rest/response"
)

type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

func (h *CommentHandler) Create(c *gin.Context) {
	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	uid, ok := currentUser(c)
	if !ok {
		return
	}

	comment := req.ToDomain(uid)
	if err := h.Service.Create(c.Request.Context(), &comment); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewCommentFromDomain(&comment))
}

func (h *CommentHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	comment, err := h.Service.GetByID(c.Request.Context(), id, scopeOf(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewCommentFromDomain(&comment))
}

func (h *CommentHandler) GetThread(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	list, err := h.Service.GetThread(c.Request.Context(), id, scopeOf(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": response.NewCommentsFromDomain(list)})
}

func (h *CommentHandler) GetSubtree(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	list, err := h.Service.GetSubtree(c.Request.Context(), id, scopeOf(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": response.NewCommentsFromDomain(list)})
}

// FetchByPost 普通用户只看到顶层评论，游标通过 X-Cursor 返回
func (h *CommentHandler) FetchByPost(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	list, next, err := h.Service.FetchByPost(c.Request.Context(), id, scopeOf(c), c.Query("cursor"), pageNum(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Header("X-Cursor", next)
	c.JSON(http.StatusOK, gin.H{"comments": response.NewCommentsFromDomain(list)})
}

func (h *CommentHandler) Review(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req request.Review
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	comment, err := h.Service.Review(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewCommentFromDomain(&comment))
}

func (h *CommentHandler) SetStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req request.DisplayStatus
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	comment, err := h.Service.SetStatus(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewCommentFromDomain(&comment))
}

func (h *CommentHandler) SoftDelete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	changed, err := h.Service.SoftDelete(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_changed": changed})
}

func (h *CommentHandler) Restore(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	changed, err := h.Service.Restore(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_changed": changed})
}

func (h *CommentHandler) HardDelete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if _, err := h.Service.HardDelete(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
