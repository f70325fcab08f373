package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	apperrors "agrimatch/internal/errors"
	"agrimatch/internal/model"
)

// SearchFilter holds the optional, independently supplied criteria of the
// listing search. Nil or zero fields contribute no constraint.
type SearchFilter struct {
	Prefecture string
	City       string
	MinArea    *float64
	MaxArea    *float64
	MinPrice   *int64
	MaxPrice   *int64
	Keyword    string
	Facilities []string
}

// Validate rejects facility keys outside the fixed set. Numeric fields are
// already typed, so parse errors are handled at the transport boundary.
func (f SearchFilter) Validate() error {
	for _, key := range f.Facilities {
		if _, ok := model.FacilityColumn(key); !ok {
			return apperrors.ErrUnknownFacility
		}
	}
	return nil
}

// likeEscaper neutralizes LIKE wildcards in user input so a keyword of "%"
// matches a literal percent sign rather than every row. '!' is the escape
// character because it reads identically in mysql and sqlite string
// literals, which backslash does not.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// scope composes the filter into a conjunctive predicate. The PUBLIC
// visibility constraint is always pinned. A record with no price set fails
// any price bound through plain SQL NULL comparison semantics.
func (f SearchFilter) scope(db *gorm.DB) *gorm.DB {
	q := db.Where("status = ?", model.StatusPublic)
	if f.Prefecture != "" {
		q = q.Where("prefecture LIKE ? ESCAPE '!'", likePattern(f.Prefecture))
	}
	if f.City != "" {
		q = q.Where("city LIKE ? ESCAPE '!'", likePattern(f.City))
	}
	if f.MinArea != nil {
		q = q.Where("area >= ?", *f.MinArea)
	}
	if f.MaxArea != nil {
		q = q.Where("area <= ?", *f.MaxArea)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.Keyword != "" {
		pattern := likePattern(f.Keyword)
		q = q.Where("(name LIKE ? ESCAPE '!' OR description LIKE ? ESCAPE '!')", pattern, pattern)
	}
	for _, key := range f.Facilities {
		if col, ok := model.FacilityColumn(key); ok {
			q = q.Where(col+" = ?", true)
		}
	}
	return q
}

// FarmlandRepository defines farmland persistence operations.
type FarmlandRepository interface {
	Create(ctx context.Context, farmland *model.Farmland) error
	FindByID(ctx context.Context, id uint) (*model.Farmland, error)
	Search(ctx context.Context, filter SearchFilter, skip, take int) ([]model.Farmland, error)
	Count(ctx context.Context, filter SearchFilter) (int64, error)
}

type farmlandRepository struct {
	db *gorm.DB
}

// NewFarmlandRepository builds a GORM-backed repository.
func NewFarmlandRepository(db *gorm.DB) FarmlandRepository {
	return &farmlandRepository{db: db}
}

// Create inserts a new farmland listing.
func (r *farmlandRepository) Create(ctx context.Context, farmland *model.Farmland) error {
	return r.db.WithContext(ctx).Create(farmland).Error
}

// FindByID finds a farmland by ID with its provider loaded.
func (r *farmlandRepository) FindByID(ctx context.Context, id uint) (*model.Farmland, error) {
	var farmland model.Farmland
	if err := r.db.WithContext(ctx).Preload("Provider").First(&farmland, id).Error; err != nil {
		return nil, err
	}
	return &farmland, nil
}

// Search returns the current page of matching public listings, newest first.
// Ordering is by id descending: ids are assigned monotonically, which gives
// most-recently-created-first without a timestamp index.
func (r *farmlandRepository) Search(ctx context.Context, filter SearchFilter, skip, take int) ([]model.Farmland, error) {
	var farmlands []model.Farmland
	err := filter.scope(r.db.WithContext(ctx).Model(&model.Farmland{})).
		Preload("Provider").
		Order("id DESC").
		Offset(skip).
		Limit(take).
		Find(&farmlands).Error
	if err != nil {
		return nil, err
	}
	return farmlands, nil
}

// Count returns the number of listings matching the filter.
func (r *farmlandRepository) Count(ctx context.Context, filter SearchFilter) (int64, error) {
	var total int64
	err := filter.scope(r.db.WithContext(ctx).Model(&model.Farmland{})).Count(&total).Error
	return total, err
}
