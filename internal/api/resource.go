package api

import (
	"context"
	"net/http"
)

// Resource is a generic CRUD client over one collection endpoint. Typed
// clients either use it directly (reference data) or extend it with
// resource-specific operations.
type Resource[T any] struct {
	client *Client
	path   string
}

func NewResource[T any](c *Client, path string) *Resource[T] {
	return &Resource[T]{client: c, path: path}
}

func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	err := r.client.do(ctx, http.MethodGet, r.path, nil, nil, &out)
	return out, err
}

func (r *Resource[T]) Get(ctx context.Context, id string) (T, error) {
	var out T
	err := r.client.do(ctx, http.MethodGet, r.path+"/"+id, nil, nil, &out)
	return out, err
}

func (r *Resource[T]) Create(ctx context.Context, in any) (T, error) {
	var out T
	err := r.client.do(ctx, http.MethodPost, r.path, nil, in, &out)
	return out, err
}

func (r *Resource[T]) Update(ctx context.Context, id string, in any) (T, error) {
	var out T
	err := r.client.do(ctx, http.MethodPatch, r.path+"/"+id, nil, in, &out)
	return out, err
}

func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	return r.client.do(ctx, http.MethodDelete, r.path+"/"+id, nil, nil, nil)
}
