package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	apperrors "agrimatch/internal/errors"
	"agrimatch/internal/model"
	"agrimatch/internal/repository"
)

// FavoriteService handles favorite bookkeeping for seekers.
type FavoriteService interface {
	List(ctx context.Context, userID uint) ([]model.Favorite, error)
	Add(ctx context.Context, userID, farmlandID uint) (*model.Favorite, error)
	Status(ctx context.Context, userID, farmlandID uint) (isFavorite bool, favoriteID uint, err error)
	Remove(ctx context.Context, userID, farmlandID uint) error
}

type favoriteService struct {
	repo         repository.FavoriteRepository
	farmlandRepo repository.FarmlandRepository
}

// NewFavoriteService creates a new favorite service.
func NewFavoriteService(repo repository.FavoriteRepository, farmlandRepo repository.FarmlandRepository) FavoriteService {
	return &favoriteService{repo: repo, farmlandRepo: farmlandRepo}
}

// List returns the user's favorites, newest first.
func (s *favoriteService) List(ctx context.Context, userID uint) ([]model.Favorite, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Add favorites a farmland for the user. The farmland must exist; a second
// add for the same pair is a conflict.
func (s *favoriteService) Add(ctx context.Context, userID, farmlandID uint) (*model.Favorite, error) {
	if _, err := s.farmlandRepo.FindByID(ctx, farmlandID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrFarmlandNotFound
		}
		return nil, fmt.Errorf("find farmland: %w", err)
	}

	existing, err := s.repo.FindByUserAndFarmland(ctx, userID, farmlandID)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check favorite: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrFavoriteExists
	}

	favorite := &model.Favorite{UserID: userID, FarmlandID: farmlandID}
	if err := s.repo.Create(ctx, favorite); err != nil {
		return nil, fmt.Errorf("create favorite: %w", err)
	}
	return favorite, nil
}

// Status reports whether the user has favorited the farmland.
func (s *favoriteService) Status(ctx context.Context, userID, farmlandID uint) (bool, uint, error) {
	favorite, err := s.repo.FindByUserAndFarmland(ctx, userID, farmlandID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, 0, nil
		}
		return false, 0, fmt.Errorf("check favorite: %w", err)
	}
	return true, favorite.ID, nil
}

// Remove deletes the user's favorite for the farmland.
func (s *favoriteService) Remove(ctx context.Context, userID, farmlandID uint) error {
	favorite, err := s.repo.FindByUserAndFarmland(ctx, userID, farmlandID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrFavoriteNotFound
		}
		return fmt.Errorf("check favorite: %w", err)
	}
	return s.repo.Delete(ctx, favorite.ID)
}
