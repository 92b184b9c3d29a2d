package handlers

import (
	"go.uber.org/zap"

	"github.com/BruksfildServices01/petshop-console/internal/audit"
	"github.com/BruksfildServices01/petshop-console/internal/domain/catalog"
	"github.com/BruksfildServices01/petshop-console/internal/infra/petshopapi"
	"github.com/BruksfildServices01/petshop-console/internal/infra/repository"
	"github.com/BruksfildServices01/petshop-console/internal/models"
)

type EmployeeHandler = CatalogHandler[models.Employee, models.EmployeeInput]

type ServiceHandler = CatalogHandler[models.Service, models.ServiceInput]

// NewEmployeeHandler repassa ?apenas_ativos ao backend; sem ele a lista
// inclui funcionários inativos.
func NewEmployeeHandler(
	api *petshopapi.Client,
	refs ReferenceInvalidator,
	auditDispatcher *audit.Dispatcher,
	log *zap.Logger,
) *EmployeeHandler {
	return NewCatalogHandler(api.Employees, CatalogSpec[models.Employee, models.EmployeeInput]{
		Entity:           "employee",
		Ref:              repository.RefEmployees,
		Forward:          []string{"apenas_ativos"},
		Validate:         catalog.ValidateEmployee,
		Match:            catalog.MatchEmployee,
		ID:               func(e models.Employee) int64 { return e.ID },
		MsgSaveFailed:    "Erro ao salvar funcionário. Tente novamente.",
		MsgDeleteFailed:  "Erro ao excluir funcionário. Tente novamente.",
		MsgConfirmDelete: "Confirme a exclusão do funcionário.",
	}, refs, auditDispatcher, log)
}

func NewServiceHandler(
	api *petshopapi.Client,
	refs ReferenceInvalidator,
	auditDispatcher *audit.Dispatcher,
	log *zap.Logger,
) *ServiceHandler {
	return NewCatalogHandler(api.Services, CatalogSpec[models.Service, models.ServiceInput]{
		Entity:           "service",
		Ref:              repository.RefServices,
		Validate:         catalog.ValidateService,
		Match:            catalog.MatchService,
		ID:               func(s models.Service) int64 { return s.ID },
		MsgSaveFailed:    "Erro ao salvar serviço. Tente novamente.",
		MsgDeleteFailed:  "Erro ao excluir serviço. Tente novamente.",
		MsgConfirmDelete: "Confirme a exclusão do serviço.",
	}, refs, auditDispatcher, log)
}
