package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lend/infras/otel/mocks"
	bookingMocks "lend/internal/domains/booking/mocks"
	bookingDto "lend/internal/domains/booking/model/dto"
	itemMocks "lend/internal/domains/item/mocks"
	"lend/internal/domains/item/model"
	"lend/internal/domains/item/model/dto"
	"lend/internal/domains/item/service"
	requestMocks "lend/internal/domains/request/mocks"
	userMocks "lend/internal/domains/user/mocks"
	gDto "lend/shared/dto"
	"lend/shared/failure"
)

type itemFixture struct {
	repo     *itemMocks.MockItem
	comments *itemMocks.MockComment
	users    *userMocks.MockUser
	requests *requestMocks.MockRequest
	bookings *bookingMocks.MockBookingService
	svc      service.Item
}

func newItemFixture(t *testing.T) itemFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := itemMocks.NewMockItem(ctrl)
	comments := itemMocks.NewMockComment(ctrl)
	users := userMocks.NewMockUser(ctrl)
	requests := requestMocks.NewMockRequest(ctrl)
	bookings := bookingMocks.NewMockBookingService(ctrl)

	return itemFixture{
		repo:     repo,
		comments: comments,
		users:    users,
		requests: requests,
		bookings: bookings,
		svc:      service.New(repo, comments, users, requests, bookings, mocks.NewOtel()),
	}
}

func TestItemService_Add(t *testing.T) {
	available := true
	requestID := int64(7)

	tests := []struct {
		name      string
		req       dto.AddItemRequest
		setupMock func(f itemFixture)
		wantErr   func(error) bool
	}{
		{
			name: "successful add",
			req:  dto.AddItemRequest{Name: "drill", Description: "cordless", Available: &available},
			setupMock: func(f itemFixture) {
				f.users.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(int64(4), nil)
			},
		},
		{
			name: "add tied to an existing request",
			req:  dto.AddItemRequest{Name: "drill", Description: "cordless", Available: &available, RequestID: &requestID},
			setupMock: func(f itemFixture) {
				f.users.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.requests.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(int64(4), nil)
			},
		},
		{
			name: "unknown owner",
			req:  dto.AddItemRequest{Name: "drill", Description: "cordless", Available: &available},
			setupMock: func(f itemFixture) {
				f.users.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: failure.IsNotFound,
		},
		{
			name: "unknown request",
			req:  dto.AddItemRequest{Name: "drill", Description: "cordless", Available: &available, RequestID: &requestID},
			setupMock: func(f itemFixture) {
				f.users.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.requests.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: failure.IsNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newItemFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Add(context.Background(), 2, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(4), res.ID)
			assert.Equal(t, "drill", res.Name)
		})
	}
}

func TestItemService_Update(t *testing.T) {
	existing := model.Item{ID: 4, OwnerID: 2, Name: "drill", Description: "cordless", Available: true}
	newName := "hammer drill"

	tests := []struct {
		name      string
		ownerID   int64
		setupMock func(f itemFixture)
		wantErr   func(error) bool
	}{
		{
			name:    "owner edits the item",
			ownerID: 2,
			setupMock: func(f itemFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(existing, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, updated map[string]any, _ any) error {
						assert.Equal(t, newName, updated[model.FieldName])
						assert.NotContains(t, updated, model.FieldAvailable)

						return nil
					})
			},
		},
		{
			name:    "non-owner gets not found",
			ownerID: 99,
			setupMock: func(f itemFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(existing, nil)
			},
			wantErr: failure.IsNotFound,
		},
		{
			name:    "missing item",
			ownerID: 2,
			setupMock: func(f itemFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Item{}, nil)
			},
			wantErr: failure.IsNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newItemFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Update(context.Background(), tt.ownerID, 4, dto.UpdateItemRequest{Name: &newName})

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, newName, res.Name)
			assert.Equal(t, "cordless", res.Description)
		})
	}
}

func TestItemService_Get(t *testing.T) {
	item := model.Item{ID: 4, OwnerID: 2, Name: "drill", Description: "cordless", Available: true}

	schedule := bookingDto.ItemSchedule{
		Last: &bookingDto.BookingSlim{ID: 1, RequesterID: 7},
		Next: &bookingDto.BookingSlim{ID: 2, RequesterID: 8},
	}

	t.Run("owner sees the booking schedule", func(t *testing.T) {
		f := newItemFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(item, nil)

		f.comments.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Comment{
				{ID: 1, Text: "works great", ItemID: 4, AuthorID: 7, AuthorName: "Anna"},
			}, nil)

		f.bookings.EXPECT().
			ScheduleForItems(gomock.Any(), []int64{4}).
			Return(map[int64]bookingDto.ItemSchedule{4: schedule}, nil)

		res, err := f.svc.Get(context.Background(), 2, 4)

		require.NoError(t, err)
		assert.Equal(t, int64(4), res.ID)
		require.NotNil(t, res.Last)
		assert.Equal(t, int64(1), res.Last.ID)
		require.NotNil(t, res.Next)
		require.Len(t, res.Comments, 1)
		assert.Equal(t, "Anna", res.Comments[0].AuthorName)
	})

	t.Run("other viewers get no schedule", func(t *testing.T) {
		f := newItemFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(item, nil)

		f.comments.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		res, err := f.svc.Get(context.Background(), 99, 4)

		require.NoError(t, err)
		assert.Nil(t, res.Last)
		assert.Nil(t, res.Next)
		assert.NotNil(t, res.Comments)
		assert.Empty(t, res.Comments)
	})

	t.Run("missing item", func(t *testing.T) {
		f := newItemFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Item{}, nil)

		_, err := f.svc.Get(context.Background(), 2, 4)

		require.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})
}

func TestItemService_ListForOwner(t *testing.T) {
	f := newItemFixture(t)

	f.users.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Item{
			{ID: 4, OwnerID: 2, Name: "drill", Available: true},
			{ID: 5, OwnerID: 2, Name: "ladder", Available: true},
		}, nil)

	f.bookings.EXPECT().
		ScheduleForItems(gomock.Any(), []int64{4, 5}).
		Return(map[int64]bookingDto.ItemSchedule{
			4: {Last: &bookingDto.BookingSlim{ID: 1, RequesterID: 7}},
			5: {},
		}, nil)

	f.comments.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)

	res, err := f.svc.ListForOwner(context.Background(), 2, 0, 10)

	require.NoError(t, err)
	require.Len(t, res, 2)
	require.NotNil(t, res[0].Last)
	assert.Equal(t, int64(1), res[0].Last.ID)
	assert.Nil(t, res[1].Last)
	assert.NotNil(t, res[0].Comments)
	assert.NotNil(t, res[1].Comments)
}

func TestItemService_Search(t *testing.T) {
	t.Run("blank text returns empty without a query", func(t *testing.T) {
		f := newItemFixture(t)

		res, err := f.svc.Search(context.Background(), "   ", 0, 10)

		require.NoError(t, err)
		assert.NotNil(t, res)
		assert.Empty(t, res)
	})

	t.Run("matches available items by name or description", func(t *testing.T) {
		f := newItemFixture(t)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Item, error) {
				where, args := filter.GetWhereClause()

				assert.Contains(t, where, "items.available = :available")
				assert.Contains(t, where, "LOWER(items.name) LIKE LOWER(:name)")
				assert.Contains(t, where, "LOWER(items.description) LIKE LOWER(:description)")
				assert.Equal(t, true, args["available"])
				assert.Equal(t, "%drill%", args["name"])

				return []model.Item{{ID: 4, Name: "drill", Available: true}}, nil
			})

		res, err := f.svc.Search(context.Background(), "drill", 0, 10)

		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "drill", res[0].Name)
	})

	t.Run("invalid page window", func(t *testing.T) {
		f := newItemFixture(t)

		_, err := f.svc.Search(context.Background(), "drill", -1, 10)

		require.Error(t, err)
		assert.True(t, failure.IsValidation(err))
	})
}

func TestItemService_AddComment(t *testing.T) {
	req := dto.AddCommentRequest{Text: "works great"}

	tests := []struct {
		name      string
		setupMock func(f itemFixture)
		wantErr   func(error) bool
	}{
		{
			name: "eligible author comments",
			setupMock: func(f itemFixture) {
				f.users.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.bookings.EXPECT().
					IsEligibleToComment(gomock.Any(), int64(7), int64(4)).
					Return(true, nil)

				f.comments.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, comment model.Comment) (model.Comment, error) {
						comment.ID = 1
						comment.AuthorName = "Anna"

						return comment, nil
					})
			},
		},
		{
			name: "unknown author",
			setupMock: func(f itemFixture) {
				f.users.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: failure.IsNotFound,
		},
		{
			name: "unknown item",
			setupMock: func(f itemFixture) {
				f.users.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: failure.IsNotFound,
		},
		{
			name: "no finished booking",
			setupMock: func(f itemFixture) {
				f.users.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.bookings.EXPECT().
					IsEligibleToComment(gomock.Any(), int64(7), int64(4)).
					Return(false, nil)
			},
			wantErr: failure.IsValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newItemFixture(t)
			tt.setupMock(f)

			res, err := f.svc.AddComment(context.Background(), 7, 4, req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(1), res.ID)
			assert.Equal(t, "works great", res.Text)
			assert.Equal(t, "Anna", res.AuthorName)
		})
	}
}
