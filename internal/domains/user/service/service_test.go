package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lend/config"
	"lend/infras/otel/mocks"
	userMocks "lend/internal/domains/user/mocks"
	"lend/internal/domains/user/model"
	"lend/internal/domains/user/model/dto"
	"lend/internal/domains/user/service"
	cacheMocks "lend/shared/cache/mocks"
	"lend/shared/failure"
)

type userFixture struct {
	repo  *userMocks.MockUser
	cache *cacheMocks.MockRedisCache
	svc   service.User
}

func newUserFixture(t *testing.T) userFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := userMocks.NewMockUser(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return userFixture{
		repo:  repo,
		cache: cache,
		svc:   service.New(repo, cfg, cache, mocks.NewOtel()),
	}
}

// allowInvalidation tolerates the async cache invalidation goroutines.
func (f userFixture) allowInvalidation() {
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestUserService_Create(t *testing.T) {
	req := dto.CreateUserRequest{Name: "Anna", Email: "anna@example.com"}

	tests := []struct {
		name      string
		setupMock func(f userFixture)
		wantErr   func(error) bool
	}{
		{
			name: "successful create",
			setupMock: func(f userFixture) {
				f.repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(int64(1), nil)
			},
		},
		{
			name: "duplicate email yields conflict",
			setupMock: func(f userFixture) {
				f.repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(int64(0), &pq.Error{Code: "23505"})
			},
			wantErr: failure.IsConflict,
		},
		{
			name: "repository error",
			setupMock: func(f userFixture) {
				f.repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantErr: func(err error) bool { return err != nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newUserFixture(t)
			f.allowInvalidation()
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(1), res.ID)
			assert.Equal(t, "Anna", res.Name)
			assert.Equal(t, "anna@example.com", res.Email)
		})
	}
}

func TestUserService_Update(t *testing.T) {
	existing := model.User{ID: 1, Name: "Anna", Email: "anna@example.com"}
	newEmail := "anna@work.example.com"

	tests := []struct {
		name      string
		req       dto.UpdateUserRequest
		setupMock func(f userFixture)
		wantEmail string
		wantErr   func(error) bool
	}{
		{
			name: "partial update keeps untouched fields",
			req:  dto.UpdateUserRequest{Email: &newEmail},
			setupMock: func(f userFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(existing, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, updated map[string]any, _ any) error {
						assert.Equal(t, newEmail, updated[model.FieldEmail])
						assert.NotContains(t, updated, model.FieldName)

						return nil
					})
			},
			wantEmail: newEmail,
		},
		{
			name: "unknown user",
			req:  dto.UpdateUserRequest{Email: &newEmail},
			setupMock: func(f userFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.User{}, nil)
			},
			wantErr: failure.IsNotFound,
		},
		{
			name: "duplicate email yields conflict",
			req:  dto.UpdateUserRequest{Email: &newEmail},
			setupMock: func(f userFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(existing, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23505"})
			},
			wantErr: failure.IsConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newUserFixture(t)
			f.allowInvalidation()
			tt.setupMock(f)

			res, err := f.svc.Update(context.Background(), 1, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantEmail, res.Email)
			assert.Equal(t, "Anna", res.Name)
		})
	}
}

func TestUserService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f userFixture)
		wantErr   func(error) bool
	}{
		{
			name: "cache hit skips the repository",
			setupMock: func(f userFixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						res, ok := value.(*dto.UserResponse)
						require.True(t, ok)
						res.ID = 1
						res.Name = "Anna"

						return nil
					})
			},
		},
		{
			name: "cache miss falls through to the repository",
			setupMock: func(f userFixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.User{ID: 1, Name: "Anna", Email: "anna@example.com"}, nil)

				f.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "unknown user",
			setupMock: func(f userFixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.User{}, nil)
			},
			wantErr: failure.IsNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newUserFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Get(context.Background(), 1)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(1), res.ID)
			assert.Equal(t, "Anna", res.Name)
		})
	}
}

func TestUserService_GetAll(t *testing.T) {
	f := newUserFixture(t)

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.User{
			{ID: 1, Name: "Anna", Email: "anna@example.com"},
			{ID: 2, Name: "Ben", Email: "ben@example.com"},
		}, nil)

	f.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := f.svc.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "Anna", res[0].Name)
	assert.Equal(t, "Ben", res[1].Name)
}

func TestUserService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f userFixture)
		wantErr   func(error) bool
	}{
		{
			name: "successful delete",
			setupMock: func(f userFixture) {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "unknown user",
			setupMock: func(f userFixture) {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: failure.IsNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newUserFixture(t)
			f.allowInvalidation()
			tt.setupMock(f)

			err := f.svc.Delete(context.Background(), 1)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err))

				return
			}

			require.NoError(t, err)
		})
	}
}
