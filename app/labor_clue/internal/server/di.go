package server

import (
	"github.com/google/wire"

	"github.com/iWorld-y/labor_clue/app/labor_clue/internal/data"
	"github.com/iWorld-y/labor_clue/app/labor_clue/internal/service"
	"github.com/iWorld-y/labor_clue/app/labor_clue/internal/usecase"
)

// ProviderSet 是线索汇总服务的依赖注入 Provider 集合
var ProviderSet = wire.NewSet(
	// Server providers
	NewHTTPServer,
	NewClueEngine,

	// Data providers
	data.NewWorkbookRepo,

	// UseCase providers
	usecase.NewReportUseCase,

	// Service providers
	service.NewClueService,
)
