package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"alphagate/internal/models/request_models"
	"alphagate/internal/services"
	"alphagate/pkg/utils"
)

// EditorController is the admin CRUD surface for protocol records.
// Admin callers always receive the full, ungated record.
type EditorController struct {
	editorService services.EditorService
}

func NewEditorController(editorService services.EditorService) *EditorController {
	return &EditorController{
		editorService: editorService,
	}
}

// ListProtocols godoc
// @Summary List full protocol records
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/protocols [get]
func (e *EditorController) ListProtocols(c *gin.Context) {
	protocols, err := e.editorService.ListProtocols(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, protocols, "Protocols fetched successfully")
}

// GetProtocol godoc
// @Summary Load one full protocol record for editing
// @Tags Admin
// @Produce json
// @Param id path string true "Protocol id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/protocols/{id} [get]
func (e *EditorController) GetProtocol(c *gin.Context) {
	protocol, err := e.editorService.LoadProtocol(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, protocol, "Protocol fetched successfully")
}

// CreateProtocol godoc
// @Summary Create a protocol record
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.ProtocolDraft true "Protocol draft"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/protocols [post]
func (e *EditorController) CreateProtocol(c *gin.Context) {
	var draft request_models.ProtocolDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	protocol, err := e.editorService.SaveProtocol(c.Request.Context(), draft, nil)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, protocol, "Protocol created successfully")
}

// UpdateProtocol godoc
// @Summary Overwrite a protocol record with the submitted draft
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Protocol id"
// @Param request body request_models.ProtocolDraft true "Protocol draft"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/protocols/{id} [put]
func (e *EditorController) UpdateProtocol(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid protocol id")
		return
	}

	var draft request_models.ProtocolDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	protocol, err := e.editorService.SaveProtocol(c.Request.Context(), draft, &id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, protocol, "Protocol updated successfully")
}

// DeleteProtocol godoc
// @Summary Permanently delete a protocol record
// @Tags Admin
// @Produce json
// @Param id path string true "Protocol id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/protocols/{id} [delete]
func (e *EditorController) DeleteProtocol(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid protocol id")
		return
	}

	if err := e.editorService.DeleteProtocol(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Protocol deleted successfully")
}
