package shared

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the minimal contract every aggregate repository satisfies.
type Repository[T any] interface {
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// OrgRepository is a repository scoped to an organization. All lookups are
// keyed by organization id; a record from another organization behaves as
// if it did not exist.
type OrgRepository[T any] interface {
	Repository[T]
	FindByIDForOrg(ctx context.Context, orgID, id uuid.UUID) (*T, error)
	FindAllForOrg(ctx context.Context, orgID uuid.UUID, filter Filter) ([]T, error)
}

// Filter carries paging, ordering and field constraints for list queries.
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Filters  map[string]any
}

// DefaultFilter pages from the start, newest first.
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: 20,
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  make(map[string]any),
	}
}

// Offset converts the page number into a row offset, clamping bad input to
// the first page.
func (f Filter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.Limit()
}

// Limit returns the page size, falling back to the default for bad input.
func (f Filter) Limit() int {
	if f.PageSize < 1 {
		return 20
	}
	return f.PageSize
}
