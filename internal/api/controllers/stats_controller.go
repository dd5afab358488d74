package controllers

import (
	"github.com/gin-gonic/gin"

	"alphagate/internal/services"
	"alphagate/pkg/utils"
)

type StatsController struct {
	statsService services.StatsService
}

func NewStatsController(statsService services.StatsService) *StatsController {
	return &StatsController{
		statsService: statsService,
	}
}

// GetStats godoc
// @Summary Table counts and the most recent protocol update
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/stats [get]
func (s *StatsController) GetStats(c *gin.Context) {
	stats, err := s.statsService.BuildStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Stats fetched successfully")
}
