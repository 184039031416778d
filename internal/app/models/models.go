package models

// DateLayout is the wire format for calendar dates (date of birth, enroll date).
const DateLayout = "2006-01-02"

// Int64Ptr returns a pointer to v. Handy for optional department references.
func Int64Ptr(v int64) *int64 {
	return &v
}

// StringPtr returns a pointer to s, or nil when s is empty.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
