package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "agrimatch/internal/errors"
	"agrimatch/internal/model"
	"agrimatch/internal/repository"
)

// MockFarmlandRepository is a mock implementation of FarmlandRepository.
type MockFarmlandRepository struct {
	mock.Mock
}

func (m *MockFarmlandRepository) Create(ctx context.Context, farmland *model.Farmland) error {
	args := m.Called(ctx, farmland)
	return args.Error(0)
}

func (m *MockFarmlandRepository) FindByID(ctx context.Context, id uint) (*model.Farmland, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Farmland), args.Error(1)
}

func (m *MockFarmlandRepository) Search(ctx context.Context, filter repository.SearchFilter, skip, take int) ([]model.Farmland, error) {
	args := m.Called(ctx, filter, skip, take)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Farmland), args.Error(1)
}

func (m *MockFarmlandRepository) Count(ctx context.Context, filter repository.SearchFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type stubSample struct{}

func (stubSample) Provider() model.User { return model.User{Email: "demo@example.com"} }
func (stubSample) Farmlands() []model.Farmland {
	return []model.Farmland{{Prefecture: "長野県", City: "松本市", Address: "1-1", Area: 100}}
}

func newTestFarmlandService(repo *MockFarmlandRepository, userRepo *MockUserRepository) FarmlandService {
	return NewFarmlandService(repo, userRepo, stubSample{})
}

func TestFarmlandService_Search_PaginationMath(t *testing.T) {
	tests := []struct {
		name          string
		page, limit   int
		total         int64
		expectedSkip  int
		expectedTake  int
		expectedPage  int
		expectedPages int
	}{
		{name: "defaults", page: 1, limit: 10, total: 5, expectedSkip: 0, expectedTake: 10, expectedPage: 1, expectedPages: 1},
		{name: "page floored to 1", page: 0, limit: 10, total: 5, expectedSkip: 0, expectedTake: 10, expectedPage: 1, expectedPages: 1},
		{name: "limit floored to 1", page: 1, limit: 0, total: 5, expectedSkip: 0, expectedTake: 1, expectedPage: 1, expectedPages: 5},
		{name: "limit capped at 100", page: 1, limit: 500, total: 5, expectedSkip: 0, expectedTake: 100, expectedPage: 1, expectedPages: 1},
		{name: "second page", page: 2, limit: 2, total: 5, expectedSkip: 2, expectedTake: 2, expectedPage: 2, expectedPages: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockFarmlandRepository)
			mockRepo.On("Search", mock.Anything, mock.Anything, tt.expectedSkip, tt.expectedTake).
				Return([]model.Farmland{}, nil)
			mockRepo.On("Count", mock.Anything, mock.Anything).Return(tt.total, nil)

			svc := newTestFarmlandService(mockRepo, new(MockUserRepository))
			result, err := svc.Search(context.Background(), repository.SearchFilter{}, tt.page, tt.limit)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedPage, result.Page)
			assert.Equal(t, tt.expectedTake, result.Limit)
			assert.Equal(t, tt.total, result.Total)
			assert.Equal(t, tt.expectedPages, result.Pages)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestFarmlandService_Search_RejectsUnknownFacility(t *testing.T) {
	mockRepo := new(MockFarmlandRepository)
	svc := newTestFarmlandService(mockRepo, new(MockUserRepository))

	_, err := svc.Search(context.Background(), repository.SearchFilter{Facilities: []string{"helipad"}}, 1, 10)

	assert.ErrorIs(t, err, apperrors.ErrUnknownFacility)
	mockRepo.AssertNotCalled(t, "Search")
	mockRepo.AssertNotCalled(t, "Count")
}

func TestFarmlandService_GetPublic(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*MockFarmlandRepository)
		expectedError error
	}{
		{
			name: "public listing returned",
			setupMock: func(m *MockFarmlandRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.Farmland{ID: 1, Status: model.StatusPublic}, nil)
			},
		},
		{
			name: "missing listing",
			setupMock: func(m *MockFarmlandRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrFarmlandNotFound,
		},
		{
			name: "non-public listing withheld",
			setupMock: func(m *MockFarmlandRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.Farmland{ID: 1, Status: model.StatusPrivate}, nil)
			},
			expectedError: apperrors.ErrFarmlandNotPublic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockFarmlandRepository)
			tt.setupMock(mockRepo)

			svc := newTestFarmlandService(mockRepo, new(MockUserRepository))
			farmland, err := svc.GetPublic(context.Background(), 1)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, farmland)
			} else {
				require.NoError(t, err)
				assert.Equal(t, uint(1), farmland.ID)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestFarmlandService_Create(t *testing.T) {
	from := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	before := from.AddDate(0, -1, 0)

	t.Run("seeker cannot register farmland", func(t *testing.T) {
		svc := newTestFarmlandService(new(MockFarmlandRepository), new(MockUserRepository))
		_, err := svc.Create(context.Background(), 1, model.RoleSeeker, &model.Farmland{AvailableFrom: from})
		assert.ErrorIs(t, err, apperrors.ErrProviderRequired)
	})

	t.Run("availableTo before availableFrom rejected", func(t *testing.T) {
		svc := newTestFarmlandService(new(MockFarmlandRepository), new(MockUserRepository))
		_, err := svc.Create(context.Background(), 1, model.RoleProvider, &model.Farmland{
			AvailableFrom: from,
			AvailableTo:   &before,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidDateRange)
	})

	t.Run("successful create goes live as PUBLIC", func(t *testing.T) {
		mockRepo := new(MockFarmlandRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Farmland")).
			Run(func(args mock.Arguments) {
				f := args.Get(1).(*model.Farmland)
				f.ID = 42
				assert.Equal(t, uint(7), f.ProviderID)
				assert.Equal(t, model.StatusPublic, f.Status)
				assert.NotNil(t, f.Images)
			}).
			Return(nil)
		mockRepo.On("FindByID", mock.Anything, uint(42)).
			Return(&model.Farmland{ID: 42, Status: model.StatusPublic, ProviderID: 7}, nil)

		svc := newTestFarmlandService(mockRepo, new(MockUserRepository))
		created, err := svc.Create(context.Background(), 7, model.RoleProvider, &model.Farmland{
			Prefecture: "長野県", City: "松本市", Address: "1-1",
			Area: 1200, AvailableFrom: from,
		})

		require.NoError(t, err)
		assert.Equal(t, uint(42), created.ID)
		mockRepo.AssertExpectations(t)
	})
}

func TestFarmlandService_SeedSample(t *testing.T) {
	t.Run("seeds when database is empty", func(t *testing.T) {
		mockRepo := new(MockFarmlandRepository)
		mockUsers := new(MockUserRepository)

		mockUsers.On("FindByEmail", mock.Anything, "demo@example.com").Return(nil, gorm.ErrRecordNotFound)
		mockUsers.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
		mockRepo.On("Count", mock.Anything, mock.Anything).Return(int64(0), nil)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Farmland")).Return(nil)

		svc := newTestFarmlandService(mockRepo, mockUsers)
		count, err := svc.SeedSample(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, count)
		mockRepo.AssertExpectations(t)
		mockUsers.AssertExpectations(t)
	})

	t.Run("no-op when listings exist", func(t *testing.T) {
		mockRepo := new(MockFarmlandRepository)
		mockUsers := new(MockUserRepository)

		mockUsers.On("FindByEmail", mock.Anything, "demo@example.com").
			Return(&model.User{ID: 1, Email: "demo@example.com"}, nil)
		mockRepo.On("Count", mock.Anything, mock.Anything).Return(int64(5), nil)

		svc := newTestFarmlandService(mockRepo, mockUsers)
		count, err := svc.SeedSample(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 0, count)
		mockRepo.AssertNotCalled(t, "Create")
	})
}
