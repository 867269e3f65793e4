package api

import (
	"context"
	"net/http"
	"strconv"

	"inventory-console/internal/model"
)

const adminUsersPath = "/api/admin/users"

// UserAdminClient covers the admin-only account surface: listing accounts,
// toggling them, and assigning roles.
type UserAdminClient struct {
	client *Client
}

func NewUserAdminClient(c *Client) *UserAdminClient {
	return &UserAdminClient{client: c}
}

func (u *UserAdminClient) List(ctx context.Context) ([]model.AdminUser, error) {
	var out []model.AdminUser
	err := u.client.do(ctx, http.MethodGet, adminUsersPath, nil, nil, &out)
	return out, err
}

func (u *UserAdminClient) Update(ctx context.Context, id int64, req model.UpdateUserRequest) (model.AdminUser, error) {
	var out model.AdminUser
	err := u.client.do(ctx, http.MethodPatch, adminUsersPath+"/"+strconv.FormatInt(id, 10), nil, req, &out)
	return out, err
}

// AvailableRoles returns every role name the server will accept.
func (u *UserAdminClient) AvailableRoles(ctx context.Context) ([]string, error) {
	var out []string
	err := u.client.do(ctx, http.MethodGet, "/api/admin/roles", nil, nil, &out)
	return out, err
}
