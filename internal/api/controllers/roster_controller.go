package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"alphagate/internal/models/request_models"
	"alphagate/internal/services"
	"alphagate/pkg/utils"
)

type RosterController struct {
	rosterService services.RosterService
}

func NewRosterController(rosterService services.RosterService) *RosterController {
	return &RosterController{
		rosterService: rosterService,
	}
}

// ListUsers godoc
// @Summary List accounts newest first, with snapshot counters
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/users [get]
func (r *RosterController) ListUsers(c *gin.Context) {
	roster, err := r.rosterService.ListAccounts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, roster, "Users fetched successfully")
}

// UpdateUser godoc
// @Summary Update the editable subscription/role subset of an account
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Account id"
// @Param request body request_models.RosterEditRequest true "Editable fields"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/users/{id} [put]
func (r *RosterController) UpdateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid account id")
		return
	}

	var req request_models.RosterEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := r.rosterService.UpdateAccount(c.Request.Context(), id, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User updated successfully")
}
