package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-clean-forum/domain"
)

type StatsHandler struct {
	Service domain.StatsUsecase
}

func NewStatsHandler(svc domain.StatsUsecase) *StatsHandler {
	return &StatsHandler{
		Service: svc,
	}
}

func (h *StatsHandler) GetPostStats(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	res, err := h.Service.GetPostStats(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *StatsHandler) GetUserStats(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	res, err := h.Service.GetUserStats(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
