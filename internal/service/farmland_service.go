package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "agrimatch/internal/errors"
	"agrimatch/internal/model"
	"agrimatch/internal/repository"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// SearchResult is a single fully formed page of listings plus pagination
// metadata. The endpoint either returns one of these or an error, never a
// partial page.
type SearchResult struct {
	Items []model.Farmland
	Total int64
	Page  int
	Limit int
	Pages int
}

// FarmlandService handles listing operations.
type FarmlandService interface {
	Search(ctx context.Context, filter repository.SearchFilter, page, limit int) (*SearchResult, error)
	GetPublic(ctx context.Context, id uint) (*model.Farmland, error)
	Create(ctx context.Context, providerID uint, role model.Role, farmland *model.Farmland) (*model.Farmland, error)
	SeedSample(ctx context.Context) (int, error)
}

type farmlandService struct {
	repo     repository.FarmlandRepository
	userRepo repository.UserRepository
	sample   SampleData
}

// SampleData supplies the bundled bootstrap dataset for seeding.
type SampleData interface {
	Provider() model.User
	Farmlands() []model.Farmland
}

// NewFarmlandService creates a new farmland service.
func NewFarmlandService(repo repository.FarmlandRepository, userRepo repository.UserRepository, sample SampleData) FarmlandService {
	return &farmlandService{repo: repo, userRepo: userRepo, sample: sample}
}

// Search executes the count and the page fetch concurrently; both reflect the
// same predicate. Page is floored to 1 and limit clamped to [1, 100].
func (s *farmlandService) Search(ctx context.Context, filter repository.SearchFilter, page, limit int) (*SearchResult, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	skip := (page - 1) * limit

	var (
		items []model.Farmland
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.repo.Search(gctx, filter, skip, limit)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.Count(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("search farmlands: %w", err)
	}

	pages := int((total + int64(limit) - 1) / int64(limit))
	return &SearchResult{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: pages,
	}, nil
}

// GetPublic retrieves a single listing. Non-PUBLIC listings are withheld from
// general retrieval.
func (s *farmlandService) GetPublic(ctx context.Context, id uint) (*model.Farmland, error) {
	farmland, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrFarmlandNotFound
		}
		return nil, err
	}
	if farmland.Status != model.StatusPublic {
		return nil, apperrors.ErrFarmlandNotPublic
	}
	return farmland, nil
}

// Create registers a new listing for the authenticated provider. Listings go
// live as PUBLIC immediately.
func (s *farmlandService) Create(ctx context.Context, providerID uint, role model.Role, farmland *model.Farmland) (*model.Farmland, error) {
	if role != model.RoleProvider {
		return nil, apperrors.ErrProviderRequired
	}
	if farmland.AvailableTo != nil && farmland.AvailableTo.Before(farmland.AvailableFrom) {
		return nil, apperrors.ErrInvalidDateRange
	}

	farmland.ProviderID = providerID
	farmland.Status = model.StatusPublic
	if farmland.Images == nil {
		farmland.Images = []string{}
	}

	if err := s.repo.Create(ctx, farmland); err != nil {
		return nil, fmt.Errorf("create farmland: %w", err)
	}

	// Reload with the provider summary attached
	created, err := s.repo.FindByID(ctx, farmland.ID)
	if err != nil {
		return nil, fmt.Errorf("load created farmland: %w", err)
	}
	return created, nil
}

// SeedSample inserts the bundled demo provider and listings. It is a no-op
// when the demo provider already owns listings, so repeated calls stay safe.
func (s *farmlandService) SeedSample(ctx context.Context) (int, error) {
	demo := s.sample.Provider()

	provider, err := s.userRepo.FindByEmail(ctx, demo.Email)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return 0, fmt.Errorf("find demo provider: %w", err)
		}
		if err := s.userRepo.Create(ctx, &demo); err != nil {
			return 0, fmt.Errorf("create demo provider: %w", err)
		}
		provider = &demo
	}

	existing, err := s.repo.Count(ctx, repository.SearchFilter{})
	if err != nil {
		return 0, fmt.Errorf("count listings: %w", err)
	}
	if existing > 0 {
		return 0, nil
	}

	count := 0
	for _, farmland := range s.sample.Farmlands() {
		farmland.ProviderID = provider.ID
		if err := s.repo.Create(ctx, &farmland); err != nil {
			return count, fmt.Errorf("seed farmland: %w", err)
		}
		count++
	}
	return count, nil
}
