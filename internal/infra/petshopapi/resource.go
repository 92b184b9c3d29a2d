package petshopapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Resource é uma coleção REST: /<nome>/ e /<nome>/{id}.
type Resource[T any, In any] struct {
	c    *Client
	name string
}

func newResource[T any, In any](c *Client, name string) *Resource[T, In] {
	return &Resource[T, In]{c: c, name: name}
}

func (r *Resource[T, In]) collectionPath() string {
	return "/" + r.name + "/"
}

func (r *Resource[T, In]) itemPath(id int64) string {
	return "/" + r.name + "/" + strconv.FormatInt(id, 10)
}

func (r *Resource[T, In]) List(ctx context.Context, query url.Values) ([]T, error) {
	var out []T
	if err := r.c.do(ctx, http.MethodGet, r.collectionPath(), query, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (r *Resource[T, In]) Get(ctx context.Context, id int64) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodGet, r.itemPath(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Resource[T, In]) Create(ctx context.Context, in In) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPost, r.collectionPath(), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Resource[T, In]) Update(ctx context.Context, id int64, in In) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPut, r.itemPath(id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Resource[T, In]) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, r.itemPath(id), nil, nil, nil)
}

// --------------------------------------------------
// Filtros
// --------------------------------------------------

func AnimalsOfCustomer(customerID int64) url.Values {
	return url.Values{"cliente_id": {strconv.FormatInt(customerID, 10)}}
}

func EmployeesQuery(onlyActive bool) url.Values {
	return url.Values{"apenas_ativos": {strconv.FormatBool(onlyActive)}}
}
