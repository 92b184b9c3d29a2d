package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/petshop-console/internal/audit"
	"github.com/BruksfildServices01/petshop-console/internal/domain/catalog"
	"github.com/BruksfildServices01/petshop-console/internal/httperr"
	"github.com/BruksfildServices01/petshop-console/internal/httpresp"
	"github.com/BruksfildServices01/petshop-console/internal/infra/petshopapi"
	"github.com/BruksfildServices01/petshop-console/internal/infra/repository"
	"github.com/BruksfildServices01/petshop-console/internal/middleware"
)

const MsgCatalogLoadFailed = "Não foi possível carregar os dados. Tente novamente."

// ReferenceInvalidator descarta coleções cacheadas após escrita no cadastro.
type ReferenceInvalidator interface {
	Invalidate(ctx context.Context, ref repository.Reference)
}

// CatalogSpec descreve um cadastro do pet shop (clientes, animais,
// funcionários, serviços).
type CatalogSpec[T any, In any] struct {
	// Entity nomeia o cadastro na auditoria: "customer" vira
	// customer_created, customer_updated, customer_deleted.
	Entity string
	Ref    repository.Reference

	// Forward lista os query params repassados ao backend na listagem.
	Forward []string

	Validate func(In) error
	Match    func(T, string) bool
	ID       func(T) int64

	MsgSaveFailed    string
	MsgDeleteFailed  string
	MsgConfirmDelete string
}

// ======================================================
// HANDLER
// ======================================================

type CatalogHandler[T any, In any] struct {
	resource *petshopapi.Resource[T, In]
	spec     CatalogSpec[T, In]
	refs     ReferenceInvalidator
	audit    *audit.Dispatcher
	log      *zap.Logger
}

func NewCatalogHandler[T any, In any](
	resource *petshopapi.Resource[T, In],
	spec CatalogSpec[T, In],
	refs ReferenceInvalidator,
	auditDispatcher *audit.Dispatcher,
	log *zap.Logger,
) *CatalogHandler[T, In] {
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogHandler[T, In]{
		resource: resource,
		spec:     spec,
		refs:     refs,
		audit:    auditDispatcher,
		log:      log,
	}
}

// ======================================================
// LIST / GET
// ======================================================
func (h *CatalogHandler[T, In]) List(c *gin.Context) {
	list, err := h.resource.List(c.Request.Context(), h.forwarded(c))
	if err != nil {
		backendError(c, err, MsgCatalogLoadFailed)
		return
	}

	if h.spec.Match != nil {
		list = catalog.Filter(list, c.Query("query"), h.spec.Match)
	}
	httpresp.List(c, list)
}

func (h *CatalogHandler[T, In]) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	item, err := h.resource.Get(c.Request.Context(), id)
	if err != nil {
		backendError(c, err, MsgCatalogLoadFailed)
		return
	}
	httpresp.OK(c, item)
}

// ======================================================
// CREATE / UPDATE
// ======================================================
func (h *CatalogHandler[T, In]) Create(c *gin.Context) {
	in, ok := h.bind(c)
	if !ok {
		return
	}

	item, err := h.resource.Create(c.Request.Context(), in)
	if err != nil {
		h.log.Warn("catalog create failed", zap.String("entity", h.spec.Entity), zap.Error(err))
		backendError(c, err, h.spec.MsgSaveFailed)
		return
	}

	h.changed(c, "created", h.spec.ID(*item))
	httpresp.Created(c, item)
}

func (h *CatalogHandler[T, In]) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	in, ok := h.bind(c)
	if !ok {
		return
	}

	item, err := h.resource.Update(c.Request.Context(), id, in)
	if err != nil {
		h.log.Warn("catalog update failed",
			zap.String("entity", h.spec.Entity),
			zap.Int64("id", id),
			zap.Error(err),
		)
		backendError(c, err, h.spec.MsgSaveFailed)
		return
	}

	h.changed(c, "updated", id)
	httpresp.OK(c, item)
}

// ======================================================
// DELETE
// ======================================================
// Exige ?confirm=true; sem confirmação nada é enviado ao backend.
func (h *CatalogHandler[T, In]) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if confirmed, _ := strconv.ParseBool(c.Query("confirm")); !confirmed {
		httperr.Conflict(c, "confirmation_required", h.spec.MsgConfirmDelete)
		return
	}

	if err := h.resource.Delete(c.Request.Context(), id); err != nil {
		h.log.Warn("catalog delete failed",
			zap.String("entity", h.spec.Entity),
			zap.Int64("id", id),
			zap.Error(err),
		)
		backendError(c, err, h.spec.MsgDeleteFailed)
		return
	}

	h.changed(c, "deleted", id)
	c.Status(http.StatusNoContent)
}

// ======================================================
// HELPERS
// ======================================================

func (h *CatalogHandler[T, In]) bind(c *gin.Context) (In, bool) {
	var in In
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Requisição inválida.")
		return in, false
	}

	if h.spec.Validate != nil {
		if err := h.spec.Validate(in); err != nil {
			if be, ok := httperr.AsBusiness(err); ok && catalog.IsValidation(err) {
				httperr.Write(c, http.StatusUnprocessableEntity, be.Code, be.Message)
			} else {
				httperr.Internal(c, "internal_error", "Erro inesperado.")
			}
			return in, false
		}
	}
	return in, true
}

func (h *CatalogHandler[T, In]) forwarded(c *gin.Context) url.Values {
	if len(h.spec.Forward) == 0 {
		return nil
	}
	q := url.Values{}
	for _, name := range h.spec.Forward {
		if v, ok := c.GetQuery(name); ok {
			q.Set(name, v)
		}
	}
	return q
}

func (h *CatalogHandler[T, In]) changed(c *gin.Context, verb string, id int64) {
	if h.refs != nil {
		h.refs.Invalidate(c.Request.Context(), h.spec.Ref)
	}

	h.audit.Dispatch(audit.Event{
		SessionID: middleware.SessionIDFrom(c),
		Action:    h.spec.Entity + "_" + verb,
		Entity:    h.spec.Entity,
		EntityID:  &id,
	})
}

func backendError(c *gin.Context, err error, fallback string) {
	if petshopapi.IsNotFound(err) {
		httperr.NotFound(c, "not_found", petshopapi.DetailOrMessage(err))
		return
	}
	httperr.Write(c, http.StatusBadGateway, "backend_error", petshopapi.DetailOr(err, fallback))
}
