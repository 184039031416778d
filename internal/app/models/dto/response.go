package dto

import "time"

// APIResponse wraps successful read payloads.
type APIResponse struct {
	Data       any             `json:"data,omitempty"`
	Pagination *PaginationInfo `json:"pagination,omitempty"`
	Error      *ErrorDetail    `json:"error,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
}

// PaginationInfo describes one page of a list.
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
}

// NewAPIResponse wraps data with the current timestamp.
func NewAPIResponse(data any) APIResponse {
	return APIResponse{Data: data, Timestamp: time.Now()}
}

// ImportResponse reports the outcome of a roster import.
type ImportResponse struct {
	Imported int              `json:"imported"`
	Failed   []ImportRowError `json:"failed"`
}

// ImportRowError is one rejected spreadsheet row.
type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}
