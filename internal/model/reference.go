package model

// Department is an organizational unit devices are assigned to.
type Department struct {
	ID       string `json:"id"`
	Code     int    `json:"code"`
	Name     string `json:"name,omitempty"`
	IsActive bool   `json:"isActive"`
}

type CreateDepartmentRequest struct {
	Code int    `json:"code"`
	Name string `json:"name,omitempty"`
}

type UpdateDepartmentRequest struct {
	ID       string `json:"id"`
	Code     int    `json:"code"`
	Name     string `json:"name,omitempty"`
	IsActive bool   `json:"isActive"`
}

// DeviceStatus is a reference-data status a device can be in.
type DeviceStatus struct {
	ID        int    `json:"id"`
	Code      string `json:"code,omitempty"`
	Name      string `json:"name,omitempty"`
	SortOrder int    `json:"sortOrder"`
	IsActive  bool   `json:"isActive"`
}

// MovementReason is a reference-data reason attached to device transfers.
type MovementReason struct {
	ID          string `json:"id"`
	Code        string `json:"code,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	SortOrder   int    `json:"sortOrder"`
	IsActive    bool   `json:"isActive"`
}

type CreateReasonRequest struct {
	Code        string `json:"code,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	SortOrder   int    `json:"sortOrder"`
}

type UpdateReasonRequest struct {
	ID          string `json:"id"`
	Code        string `json:"code,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	SortOrder   int    `json:"sortOrder"`
	IsActive    bool   `json:"isActive"`
}

// DepartmentStats is the per-department device tally used by reports.
type DepartmentStats struct {
	DepartmentID   string `json:"departmentId"`
	DepartmentName string `json:"departmentName,omitempty"`
	DeviceCount    int    `json:"deviceCount"`
	ActiveCount    int    `json:"activeCount"`
	RepairCount    int    `json:"repairCount"`
}
