package protocol_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"alphagate/internal/repositories"
	"alphagate/internal/services"
)

var Module = fx.Provide(
	provideProtocolRepo, provideCatalogService, provideEditorService,
)

func provideProtocolRepo(db *gorm.DB) repositories.ProtocolRepository {
	return repositories.NewProtocolRepository(db)
}

func provideCatalogService(protocolRepo repositories.ProtocolRepository) services.CatalogService {
	return services.NewCatalogService(protocolRepo)
}

func provideEditorService(protocolRepo repositories.ProtocolRepository) services.EditorService {
	return services.NewEditorService(protocolRepo)
}
