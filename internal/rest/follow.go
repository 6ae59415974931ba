package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/rest/response"
)

type FollowHandler struct {
	Service domain.FollowUsecase
}

func NewFollowHandler(svc domain.FollowUsecase) *FollowHandler {
	return &FollowHandler{
		Service: svc,
	}
}

// Follow makes the caller follow user :id
func (h *FollowHandler) Follow(c *gin.Context) {
	followee, ok := paramID(c, "id")
	if !ok {
		return
	}
	uid, ok := currentUser(c)
	if !ok {
		return
	}

	f, err := h.Service.Follow(c.Request.Context(), uid, followee)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewFollowFromDomain(&f))
}

func (h *FollowHandler) Unfollow(c *gin.Context) {
	followee, ok := paramID(c, "id")
	if !ok {
		return
	}
	uid, ok := currentUser(c)
	if !ok {
		return
	}

	changed, err := h.Service.Unfollow(c.Request.Context(), uid, followee)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_changed": changed})
}

// Get returns the edge :id -> :followee
func (h *FollowHandler) Get(c *gin.Context) {
	follower, ok := paramID(c, "id")
	if !ok {
		return
	}
	followee, ok := paramID(c, "followee")
	if !ok {
		return
	}

	f, err := h.Service.Get(c.Request.Context(), follower, followee, scopeOf(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewFollowFromDomain(&f))
}

func (h *FollowHandler) HardDelete(c *gin.Context) {
	follower, ok := paramID(c, "id")
	if !ok {
		return
	}
	followee, ok := paramID(c, "followee")
	if !ok {
		return
	}

	if _, err := h.Service.HardDelete(c.Request.Context(), follower, followee); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FollowHandler) FetchFollowing(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	list, next, err := h.Service.FetchFollowing(c.Request.Context(), id, c.Query("cursor"), pageNum(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Header("X-Cursor", next)
	c.JSON(http.StatusOK, gin.H{"following": response.NewFollowEntriesFromDomain(list)})
}

func (h *FollowHandler) FetchFollowers(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	list, next, err := h.Service.FetchFollowers(c.Request.Context(), id, c.Query("cursor"), pageNum(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Header("X-Cursor", next)
	c.JSON(http.StatusOK, gin.H{"followers": response.NewFollowEntriesFromDomain(list)})
}
