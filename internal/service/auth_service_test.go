package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"agrimatch/internal/auth"
	"agrimatch/internal/model"
)

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, data auth.TokenData, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, data, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (auth.TokenData, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(auth.TokenData), args.Error(1)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockTokenStore) BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

const testJWTSecret = "test-secret-key"

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestAuthService_Register(t *testing.T) {
	name := "Taro Yamada"

	tests := []struct {
		name          string
		email         string
		password      string
		role          model.Role
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			email:    "new@example.com",
			password: "Password123",
			role:     model.RoleProvider,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:     "duplicate email",
			email:    "taken@example.com",
			password: "Password123",
			role:     model.RoleSeeker,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "taken@example.com").
					Return(&model.User{ID: 1, Email: "taken@example.com"}, nil)
			},
			expectedError: ErrUserAlreadyExists,
		},
		{
			name:     "repository failure",
			email:    "new@example.com",
			password: "Password123",
			role:     model.RoleSeeker,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, errors.New("db down"))
			},
			expectedError: errors.New("check user existence"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewAuthService(mockRepo, auth.NewJWTService(testJWTSecret), new(MockTokenStore))
			user, err := svc.Register(context.Background(), tt.email, tt.password, &name, nil, tt.role)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, user)
				if errors.Is(tt.expectedError, ErrUserAlreadyExists) {
					assert.ErrorIs(t, err, ErrUserAlreadyExists)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.role, user.Role)
				assert.NotEqual(t, tt.password, user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.password)))
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	password := "Password123"

	tests := []struct {
		name          string
		email         string
		password      string
		setupMocks    func(*testing.T, *MockUserRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "user@example.com",
			password: password,
			setupMocks: func(t *testing.T, users *MockUserRepository, store *MockTokenStore) {
				users.On("FindByEmail", mock.Anything, "user@example.com").Return(&model.User{
					ID:           1,
					Email:        "user@example.com",
					PasswordHash: hashPassword(t, password),
					Role:         model.RoleSeeker,
				}, nil)
				store.On("StoreRefreshToken", mock.Anything, mock.AnythingOfType("string"),
					auth.TokenData{UserID: 1, Email: "user@example.com", Role: string(model.RoleSeeker)},
					auth.RefreshTokenExpiry).Return(nil)
			},
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: password,
			setupMocks: func(t *testing.T, users *MockUserRepository, store *MockTokenStore) {
				users.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "user@example.com",
			password: "WrongPassword1",
			setupMocks: func(t *testing.T, users *MockUserRepository, store *MockTokenStore) {
				users.On("FindByEmail", mock.Anything, "user@example.com").Return(&model.User{
					ID:           1,
					Email:        "user@example.com",
					PasswordHash: hashPassword(t, password),
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockStore := new(MockTokenStore)
			tt.setupMocks(t, mockRepo, mockStore)

			svc := NewAuthService(mockRepo, auth.NewJWTService(testJWTSecret), mockStore)
			accessToken, refreshToken, user, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, accessToken)
				assert.Empty(t, refreshToken)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
				assert.Equal(t, tt.email, user.Email)
			}
			mockRepo.AssertExpectations(t)
			mockStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	jwtService := auth.NewJWTService(testJWTSecret)

	t.Run("valid refresh token", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(1, "user@example.com", string(model.RoleSeeker))
		require.NoError(t, err)

		mockStore := new(MockTokenStore)
		mockStore.On("GetRefreshToken", mock.Anything, tokenID).
			Return(auth.TokenData{UserID: 1, Email: "user@example.com", Role: string(model.RoleSeeker)}, nil)

		svc := NewAuthService(new(MockUserRepository), jwtService, mockStore)
		accessToken, err := svc.RefreshToken(context.Background(), refreshToken)

		require.NoError(t, err)
		assert.NotEmpty(t, accessToken)

		claims, err := jwtService.ValidateToken(accessToken)
		require.NoError(t, err)
		assert.Equal(t, uint(1), claims.UserID)
		mockStore.AssertExpectations(t)
	})

	t.Run("token unknown to store", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(1, "user@example.com", string(model.RoleSeeker))
		require.NoError(t, err)

		mockStore := new(MockTokenStore)
		mockStore.On("GetRefreshToken", mock.Anything, tokenID).
			Return(auth.TokenData{}, errors.New("refresh token not found"))

		svc := NewAuthService(new(MockUserRepository), jwtService, mockStore)
		_, err = svc.RefreshToken(context.Background(), refreshToken)

		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})

	t.Run("malformed token", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepository), jwtService, new(MockTokenStore))
		_, err := svc.RefreshToken(context.Background(), "not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})

	t.Run("stored claims mismatch", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(1, "user@example.com", string(model.RoleSeeker))
		require.NoError(t, err)

		mockStore := new(MockTokenStore)
		mockStore.On("GetRefreshToken", mock.Anything, tokenID).
			Return(auth.TokenData{UserID: 2, Email: "other@example.com", Role: string(model.RoleSeeker)}, nil)

		svc := NewAuthService(new(MockUserRepository), jwtService, mockStore)
		_, err = svc.RefreshToken(context.Background(), refreshToken)

		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	jwtService := auth.NewJWTService(testJWTSecret)

	t.Run("deletes stored refresh token", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(1, "user@example.com", string(model.RoleSeeker))
		require.NoError(t, err)

		mockStore := new(MockTokenStore)
		mockStore.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)

		svc := NewAuthService(new(MockUserRepository), jwtService, mockStore)
		require.NoError(t, svc.Logout(context.Background(), refreshToken))
		mockStore.AssertExpectations(t)
	})

	t.Run("malformed token", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepository), jwtService, new(MockTokenStore))
		assert.ErrorIs(t, svc.Logout(context.Background(), "junk"), ErrInvalidRefreshToken)
	})
}
