package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/petshop-console/internal/audit"
	"github.com/BruksfildServices01/petshop-console/internal/domain/catalog"
	"github.com/BruksfildServices01/petshop-console/internal/httpresp"
	"github.com/BruksfildServices01/petshop-console/internal/infra/petshopapi"
	"github.com/BruksfildServices01/petshop-console/internal/infra/repository"
	"github.com/BruksfildServices01/petshop-console/internal/models"
)

// AnimalHandler é o cadastro de animais. A listagem traz o nome do tutor
// para a busca e para a tabela.
type AnimalHandler struct {
	*CatalogHandler[models.Animal, models.AnimalInput]
	api *petshopapi.Client
}

func NewAnimalHandler(
	api *petshopapi.Client,
	refs ReferenceInvalidator,
	auditDispatcher *audit.Dispatcher,
	log *zap.Logger,
) *AnimalHandler {
	spec := CatalogSpec[models.Animal, models.AnimalInput]{
		Entity:           "animal",
		Ref:              repository.RefAnimals,
		Validate:         catalog.ValidateAnimal,
		ID:               func(a models.Animal) int64 { return a.ID },
		MsgSaveFailed:    "Erro ao salvar animal. Tente novamente.",
		MsgDeleteFailed:  "Erro ao excluir animal. Tente novamente.",
		MsgConfirmDelete: "Confirme a exclusão do animal.",
	}
	return &AnimalHandler{
		CatalogHandler: NewCatalogHandler(api.Animals, spec, refs, auditDispatcher, log),
		api:            api,
	}
}

// ======================================================
// LIST ANIMALS
// ======================================================
func (h *AnimalHandler) List(c *gin.Context) {
	var (
		animals   []models.Animal
		customers []models.Customer
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		animals, err = h.api.Animals.List(ctx, nil)
		return err
	})
	g.Go(func() (err error) {
		customers, err = h.api.Customers.List(ctx, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		backendError(c, err, MsgCatalogLoadFailed)
		return
	}

	list := catalog.Filter(catalog.WithOwners(animals, customers), c.Query("query"), catalog.MatchAnimal)
	httpresp.List(c, list)
}
