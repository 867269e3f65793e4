package model

import "time"

// Device is a tracked inventory item as returned by the devices API.
type Device struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	InventoryNumber       string    `json:"inventoryNumber"`
	Description           string    `json:"description,omitempty"`
	CurrentDepartmentID   string    `json:"currentDepartmentId,omitempty"`
	CurrentDepartmentName string    `json:"currentDepartmentName,omitempty"`
	CurrentStatusID       int       `json:"currentStatusId"`
	CurrentStatusName     string    `json:"currentStatusName,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
	IsActive              bool      `json:"isActive"`
}

type CreateDeviceRequest struct {
	Name                string `json:"name"`
	InventoryNumber     string `json:"inventoryNumber"`
	Description         string `json:"description,omitempty"`
	CurrentDepartmentID string `json:"currentDepartmentId,omitempty"`
	CurrentStatusID     int    `json:"currentStatusId"`
}

type UpdateDeviceRequest struct {
	ID              string `json:"id"`
	Name            string `json:"name,omitempty"`
	InventoryNumber string `json:"inventoryNumber,omitempty"`
	Description     string `json:"description,omitempty"`
}

// MoveRequest transfers a device to another department.
type MoveRequest struct {
	DeviceID       string `json:"deviceId"`
	ToDepartmentID string `json:"toDepartmentId"`
	ReasonID       string `json:"reasonId"`
	Note           string `json:"note,omitempty"`
}

// Movement is one entry of a device's transfer history.
type Movement struct {
	ID                 string    `json:"id"`
	MovedAt            time.Time `json:"movedAt"`
	FromDepartmentName string    `json:"fromDepartmentName,omitempty"`
	ToDepartmentName   string    `json:"toDepartmentName,omitempty"`
	ReasonName         string    `json:"reasonName,omitempty"`
	MovedBy            string    `json:"movedBy,omitempty"`
	Note               string    `json:"note,omitempty"`
}

// DeviceQuery narrows and pages a device listing. Zero values mean "not set".
type DeviceQuery struct {
	DepartmentID   string
	StatusID       int
	SearchText     string
	SortBy         string
	SortDescending bool
	Page           int
	PageSize       int
}

// DeviceList is a paginated device listing.
type DeviceList struct {
	Items      []Device `json:"items"`
	TotalCount int      `json:"totalCount"`
	PageNumber int      `json:"pageNumber"`
	PageSize   int      `json:"pageSize"`
	TotalPages int      `json:"totalPages"`
}
