package models

// Department groups students and courses. IDs are assigned by the caller.
type Department struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"` // Nullable
}
