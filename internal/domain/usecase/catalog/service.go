package catalog

import (
	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/community-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/community-ledger/internal/domain/port/usecase"
)

// Service manages the activity and product catalog
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.CatalogUseCase {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
