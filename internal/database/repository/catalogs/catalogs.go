// Package catalogs implements the repository shared by the reference
// catalogs: applications, origins and priorities.
package catalogs

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/database"
	"github.com/heartmarshall/casedesk/internal/database/repository/base"
	"github.com/heartmarshall/casedesk/internal/database/schema"
	"github.com/heartmarshall/casedesk/internal/model"
)

// Filter narrows a catalog listing.
type Filter struct {
	Search   string
	IsActive *bool
}

// CatalogRepository provides persistence for one catalog table.
type CatalogRepository struct {
	*base.Base[model.CatalogItem]
	t     schema.CatalogTable
	sorts base.SortColumns
}

// NewCatalogRepository creates a repository over table.
func NewCatalogRepository(q database.Querier, table schema.CatalogTable) *CatalogRepository {
	return &CatalogRepository{
		Base: base.MustNewBase[model.CatalogItem](q, base.Config{
			Table:   table.Name.String(),
			Columns: table.Columns(),
		}),
		t: table,
		sorts: base.SortColumns{
			"name":       table.ItemName.Qualified(),
			"rank":       table.Rank.Qualified(),
			"created_at": table.CreatedAt.Qualified(),
		},
	}
}

// Schema returns the table this repository operates on.
func (r *CatalogRepository) Schema() schema.CatalogTable { return r.t }

// GetByID returns one item.
func (r *CatalogRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.CatalogItem, error) {
	if err := base.ValidateUUID(id, "id"); err != nil {
		return nil, err
	}
	return r.Base.GetByID(ctx, r.t.ID.Qualified(), id)
}

// List returns one page of items, by rank then name unless sorted otherwise.
func (r *CatalogRepository) List(ctx context.Context, filter Filter, page model.PageRequest) (model.PageResult[model.CatalogItem], error) {
	query := r.SelectBuilder()
	if s := strings.TrimSpace(filter.Search); s != "" {
		query = query.Where(base.ILikeAny(s, r.t.ItemName.Qualified()))
	}
	if filter.IsActive != nil {
		query = query.Where(squirrel.Eq{r.t.IsActive.Qualified(): *filter.IsActive})
	}

	order := []string{r.t.Rank.Qualified() + " ASC", r.t.ItemName.Qualified() + " ASC", r.t.ID.Qualified() + " ASC"}
	if page.SortBy != "" {
		order = r.sorts.OrderBy(page, r.t.Rank.Qualified(), r.t.ID.Qualified())
	}
	return r.Page(ctx, query, page, order...)
}

// Create inserts an item.
func (r *CatalogRepository) Create(ctx context.Context, item *model.CatalogItem) (*model.CatalogItem, error) {
	if item == nil {
		return nil, fmt.Errorf("%w: %s item is required", database.ErrInvalidInput, r.t.Name)
	}
	if err := base.ValidateString(item.Name, "name"); err != nil {
		return nil, err
	}

	insert := r.InsertBuilder().
		Columns(r.t.InsertColumns()...).
		Values(item.Name, item.Description, item.Rank, item.IsActive)

	return r.InsertReturning(ctx, insert)
}

// Update overwrites the mutable fields of an item.
func (r *CatalogRepository) Update(ctx context.Context, id uuid.UUID, item *model.CatalogItem) (*model.CatalogItem, error) {
	if err := base.ValidateUUID(id, "id"); err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: %s item is required", database.ErrInvalidInput, r.t.Name)
	}

	update := r.UpdateBuilder().
		Set(r.t.ItemName.Bare(), item.Name).
		Set(r.t.Description.Bare(), item.Description).
		Set(r.t.Rank.Bare(), item.Rank).
		Set(r.t.IsActive.Bare(), item.IsActive).
		Set(r.t.UpdatedAt.Bare(), squirrel.Expr("now()")).
		Where(squirrel.Eq{r.t.ID.Qualified(): id})

	return r.Base.Update(ctx, update)
}

// Delete removes an item.
func (r *CatalogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := base.ValidateUUID(id, "id"); err != nil {
		return err
	}
	return r.Base.Delete(ctx, r.t.ID.Qualified(), id)
}
