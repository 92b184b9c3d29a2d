package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/petshop-console/internal/audit"
	"github.com/BruksfildServices01/petshop-console/internal/domain/catalog"
	"github.com/BruksfildServices01/petshop-console/internal/httpresp"
	"github.com/BruksfildServices01/petshop-console/internal/infra/petshopapi"
	"github.com/BruksfildServices01/petshop-console/internal/models"
)

// ClientHandler é o cadastro de clientes, com o seletor de animais por
// cliente usado pelo formulário de agendamento.
type ClientHandler struct {
	*CatalogHandler[models.Customer, models.CustomerInput]
	api *petshopapi.Client
}

func NewClientHandler(
	api *petshopapi.Client,
	auditDispatcher *audit.Dispatcher,
	log *zap.Logger,
) *ClientHandler {
	spec := CatalogSpec[models.Customer, models.CustomerInput]{
		Entity:           "customer",
		Validate:         catalog.ValidateCustomer,
		Match:            catalog.MatchCustomer,
		ID:               func(cu models.Customer) int64 { return cu.ID },
		MsgSaveFailed:    "Erro ao salvar cliente. Por favor, tente novamente.",
		MsgDeleteFailed:  "Erro ao excluir cliente. Por favor, tente novamente.",
		MsgConfirmDelete: "Confirme a exclusão do cliente.",
	}
	return &ClientHandler{
		CatalogHandler: NewCatalogHandler(api.Customers, spec, nil, auditDispatcher, log),
		api:            api,
	}
}

// ======================================================
// ANIMALS OF CLIENT
// ======================================================
func (h *ClientHandler) Animals(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	animals, err := h.api.Animals.List(c.Request.Context(), petshopapi.AnimalsOfCustomer(id))
	if err != nil {
		backendError(c, err, MsgCatalogLoadFailed)
		return
	}
	httpresp.List(c, animals)
}
