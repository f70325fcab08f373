package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"agrimatch/internal/model"
)

func TestFavoriteRepository_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	seeker := model.User{Email: "seeker@example.com", PasswordHash: "x", Role: model.RoleSeeker}
	require.NoError(t, db.Create(&seeker).Error)
	provider := model.User{Email: "owner2@example.com", PasswordHash: "x", Role: model.RoleProvider}
	require.NoError(t, db.Create(&provider).Error)

	farmland := model.Farmland{
		Prefecture: "長野県", City: "松本市", Address: "1-1",
		Area: 1000, Status: model.StatusPublic, ProviderID: provider.ID,
	}
	require.NoError(t, db.Create(&farmland).Error)

	repo := NewFavoriteRepository(db)

	require.NoError(t, repo.Create(ctx, &model.Favorite{UserID: seeker.ID, FarmlandID: farmland.ID}))

	favorites, err := repo.ListByUser(ctx, seeker.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, farmland.ID, favorites[0].Farmland.ID)
	assert.Equal(t, provider.Email, favorites[0].Farmland.Provider.Email)

	found, err := repo.FindByUserAndFarmland(ctx, seeker.ID, farmland.ID)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, found.ID))
	_, err = repo.FindByUserAndFarmland(ctx, seeker.ID, farmland.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFavoriteRepository_UniquePairEnforced(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	seeker := model.User{Email: "seeker2@example.com", PasswordHash: "x", Role: model.RoleSeeker}
	require.NoError(t, db.Create(&seeker).Error)
	farmland := model.Farmland{
		Prefecture: "千葉県", City: "南房総市", Address: "2-2",
		Area: 500, Status: model.StatusPublic, ProviderID: seeker.ID,
	}
	require.NoError(t, db.Create(&farmland).Error)

	repo := NewFavoriteRepository(db)
	require.NoError(t, repo.Create(ctx, &model.Favorite{UserID: seeker.ID, FarmlandID: farmland.ID}))
	assert.Error(t, repo.Create(ctx, &model.Favorite{UserID: seeker.ID, FarmlandID: farmland.ID}))
}
