package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"inventory-console/internal/model"
)

const devicesPath = "/api/devices"

// DeviceClient covers the devices API: filtered listing, CRUD, transfers
// between departments, and per-device movement history.
type DeviceClient struct {
	client *Client
}

func NewDeviceClient(c *Client) *DeviceClient {
	return &DeviceClient{client: c}
}

func (d *DeviceClient) List(ctx context.Context, q model.DeviceQuery) (model.DeviceList, error) {
	var out model.DeviceList
	err := d.client.do(ctx, http.MethodGet, devicesPath, deviceQueryValues(q), nil, &out)
	return out, err
}

func (d *DeviceClient) Get(ctx context.Context, id string) (model.Device, error) {
	var out model.Device
	err := d.client.do(ctx, http.MethodGet, devicesPath+"/"+id, nil, nil, &out)
	return out, err
}

// Create returns the new device's id.
func (d *DeviceClient) Create(ctx context.Context, req model.CreateDeviceRequest) (string, error) {
	var id string
	err := d.client.do(ctx, http.MethodPost, devicesPath, nil, req, &id)
	return id, err
}

func (d *DeviceClient) Update(ctx context.Context, req model.UpdateDeviceRequest) error {
	return d.client.do(ctx, http.MethodPut, devicesPath, nil, req, nil)
}

func (d *DeviceClient) Delete(ctx context.Context, id string) error {
	return d.client.do(ctx, http.MethodDelete, devicesPath+"/"+id, nil, nil, nil)
}

// Move transfers a device to another department for a given reason.
func (d *DeviceClient) Move(ctx context.Context, req model.MoveRequest) error {
	return d.client.do(ctx, http.MethodPost, devicesPath+"/move", nil, req, nil)
}

// History returns the device's transfer history, newest first.
func (d *DeviceClient) History(ctx context.Context, id string) ([]model.Movement, error) {
	var out []model.Movement
	err := d.client.do(ctx, http.MethodGet, devicesPath+"/"+id+"/history", nil, nil, &out)
	return out, err
}

func deviceQueryValues(q model.DeviceQuery) url.Values {
	values := url.Values{}

	if q.DepartmentID != "" {
		values.Set("DepartmentId", q.DepartmentID)
	}
	if q.StatusID != 0 {
		values.Set("StatusId", strconv.Itoa(q.StatusID))
	}
	if q.SearchText != "" {
		values.Set("SearchText", q.SearchText)
	}
	if q.SortBy != "" {
		values.Set("SortBy", q.SortBy)
		values.Set("SortDescending", strconv.FormatBool(q.SortDescending))
	}
	if q.Page > 0 {
		values.Set("Page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		values.Set("PageSize", strconv.Itoa(q.PageSize))
	}

	return values
}
