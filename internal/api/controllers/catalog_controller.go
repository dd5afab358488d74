package controllers

import (
	"github.com/gin-gonic/gin"

	"alphagate/internal/services"
	"alphagate/pkg/middleware"
	"alphagate/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogService
}

func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// ListProtocols godoc
// @Summary List protocols ordered by ranking score
// @Description Premium fields are included only for subscribed or admin callers
// @Tags Protocols
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /protocols [get]
func (p *CatalogController) ListProtocols(c *gin.Context) {
	level := middleware.LevelFromContext(c)

	catalog, err := p.catalogService.ListProtocols(c.Request.Context(), level)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, catalog, "Protocols fetched successfully")
}

// GetProtocol godoc
// @Summary Fetch one protocol
// @Tags Protocols
// @Produce json
// @Param id path string true "Protocol id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /protocols/{id} [get]
func (p *CatalogController) GetProtocol(c *gin.Context) {
	level := middleware.LevelFromContext(c)

	view, err := p.catalogService.GetProtocol(c.Request.Context(), c.Param("id"), level)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, view, "Protocol fetched successfully")
}
