package entity

import "github.com/google/uuid"

// Patient sort fields accepted by the repository layer.
const (
	PatientSortName      = "name"
	PatientSortUpdatedAt = "updated_at"
	PatientSortCreatedAt = "created_at"
)

// PatientFilter is a domain-level filter for querying patients.
// Used by repository layer to avoid coupling with delivery DTOs.
// TenantID is mandatory: every patient query is tenant-scoped.
type PatientFilter struct {
	TenantID  uuid.UUID
	Search    string // case-insensitive substring across name/email/phone
	Status    string // "active", "inactive" or "all" (bypasses status filtering)
	SortBy    string // name | updated_at | created_at (default created_at)
	SortOrder string // asc | desc (default desc)
	Page      int
	Limit     int
}

// Normalize applies pagination defaults and clamps limits.
func (f *PatientFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
	switch f.SortBy {
	case PatientSortName, PatientSortUpdatedAt, PatientSortCreatedAt:
	default:
		f.SortBy = PatientSortCreatedAt
	}
	if f.SortOrder != "asc" {
		f.SortOrder = "desc"
	}
	if f.Status == "" {
		f.Status = "all"
	}
}

// Offset returns the row offset for the current page.
func (f *PatientFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
