package service_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/otel/mocks"
	s3Mocks "hotelier/infras/s3/mocks"
	hotelMocks "hotelier/internal/domains/hotel/mocks"
	roomMocks "hotelier/internal/domains/room/mocks"
	"hotelier/internal/domains/room/model"
	"hotelier/internal/domains/room/model/dto"
	"hotelier/internal/domains/room/service"
	cacheMocks "hotelier/shared/cache/mocks"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
)

const (
	hotelID = "9a7e5c3b-1f2d-4e6a-8b9c-0d1e2f3a4b33"
	roomID  = "3f1b7c2a-2d4e-4d7b-8a51-6c0e9f2b4d22"
)

var errCacheMiss = errors.New("cache miss")

type fixture struct {
	repo      *roomMocks.MockRoom
	hotelRepo *hotelMocks.MockHotel
	cache     *cacheMocks.MockRedisCache
	s3        *s3Mocks.MockS3
	svc       service.Room
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.RoomDirectory = "rooms"

	f := fixture{
		repo:      roomMocks.NewMockRoom(ctrl),
		hotelRepo: hotelMocks.NewMockHotel(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		s3:        s3Mocks.NewMockS3(ctrl),
	}

	f.svc = service.New(f.repo, f.hotelRepo, cfg, f.cache, mocks.NewOtel(), f.s3)

	return f
}

func (f fixture) expectInvalidate() {
	f.cache.EXPECT().Clear(gomock.Any(), "hotel:*").Return(nil)
	f.cache.EXPECT().Clear(gomock.Any(), "room:*").Return(nil)
}

// imageHeader builds a real multipart.FileHeader, the way the HTTP layer receives it.
func imageHeader(t *testing.T, name, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreatePart(map[string][]string{
		"Content-Disposition": {`form-data; name="image"; filename="` + name + `"`},
		"Content-Type":        {contentType},
	})
	require.NoError(t, err)

	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["image"][0]
}

func TestRoomService_Create(t *testing.T) {
	req := dto.CreateRoomRequest{HotelID: hotelID, RoomType: "Deluxe", PricePerNight: "2500"}

	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantErr   string
		wantCode  int
	}{
		{
			name: "successful creation",
			setupMock: func(f fixture) {
				f.hotelRepo.EXPECT().ExistsByID(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) error {
						assert.Equal(t, model.DefaultCapacity, room.Capacity)
						assert.True(t, room.IsAvailable)

						return nil
					})
				f.expectInvalidate()
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: roomID, PricePerNight: "2500"}, nil)
			},
		},
		{
			name: "hotel not found",
			setupMock: func(f fixture) {
				f.hotelRepo.EXPECT().ExistsByID(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  "Hotel not found",
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			setupMock: func(f fixture) {
				f.hotelRepo.EXPECT().ExistsByID(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr:  "Failed to create room",
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), req)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "2,500", res.FormattedPrice)
		})
	}
}

func TestRoomService_GetAll(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Room, error) {
			assert.Equal(t, "rooms.created_at", params.SortBy)

			_, args := filter.GetWhereClause()
			assert.Equal(t, hotelID, args[model.FieldHotelID])

			return []model.Room{{ID: roomID}}, nil
		})
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).Return(nil)

	page, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, service.ListFilter("", hotelID))

	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, 1, page.Pages)
}

func TestRoomService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "cache hit",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "room:get:"+roomID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						value.(*dto.RoomResponse).ID = roomID

						return nil
					})
			},
		},
		{
			name: "not found",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Get(context.Background(), roomID)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, roomID, res.ID)
		})
	}
}

func TestRoomService_Update(t *testing.T) {
	unavailable := false

	tests := []struct {
		name      string
		req       dto.UpdateRoomRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "marks unavailable",
			req:  dto.UpdateRoomRequest{IsAvailable: &unavailable},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, &unavailable, fields[model.FieldIsAvailable])

						return nil
					})
				f.expectInvalidate()
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: roomID}, nil)
			},
		},
		{
			name:      "empty update",
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "not found",
			req:  dto.UpdateRoomRequest{BedType: "Queen"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			_, err := f.svc.Update(context.Background(), tt.req, roomID)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestRoomService_Delete(t *testing.T) {
	imageURL := "https://cdn.example.com/rooms/r1/a.png"

	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "removes images best effort",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldImages).
					Return(model.Room{ID: roomID, Images: pq.StringArray{imageURL}}, nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				f.expectInvalidate()
				f.s3.EXPECT().ObjectKeyFromURL(imageURL).Return("rooms/r1/a.png")
				f.s3.EXPECT().DeleteFile(gomock.Any(), "rooms/r1/a.png").Return(errors.New("s3 down"))
			},
		},
		{
			name: "not found",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Room{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Delete(context.Background(), roomID)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestRoomService_UploadImage(t *testing.T) {
	content := []byte("\x89PNG fake image")
	existing := "https://cdn.example.com/rooms/r1/old.png"
	uploaded := "https://cdn.example.com/rooms/r1/new.png"

	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "appends the url",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Room{ID: roomID, Images: pq.StringArray{existing}}, nil)
				f.s3.EXPECT().UploadFile(gomock.Any(), "rooms/"+roomID, gomock.Any(), "image/png", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, fileName, _ string, file io.Reader) (string, error) {
						assert.Regexp(t, `^[0-9a-f-]{36}\.png$`, fileName)

						body, err := io.ReadAll(file)
						require.NoError(t, err)
						assert.Equal(t, content, body)

						return uploaded, nil
					})
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, pq.StringArray{existing, uploaded}, fields[model.FieldImages])

						return nil
					})
				f.expectInvalidate()
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.Room{ID: roomID, Images: pq.StringArray{existing, uploaded}}, nil)
			},
		},
		{
			name: "update failure removes the object",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Room{ID: roomID}, nil)
				f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(uploaded, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
				f.s3.EXPECT().ObjectKeyFromURL(uploaded).Return("rooms/r1/new.png")
				f.s3.EXPECT().DeleteFile(gomock.Any(), "rooms/r1/new.png").Return(nil)
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "room not found",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Room{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			req := dto.UploadImageRequest{Image: imageHeader(t, "Photo.PNG", "image/png", content)}

			res, err := f.svc.UploadImage(context.Background(), roomID, req)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, []string{existing, uploaded}, res.Images)
		})
	}
}

func TestRoomService_GetAvailableByHotel(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantLen   int
		wantCode  int
	}{
		{
			name: "available rooms",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "room:available:"+hotelID, gomock.Any()).Return(errCacheMiss)
				f.hotelRepo.EXPECT().ExistsByID(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().ListByHotel(gomock.Any(), hotelID, true).
					Return([]model.Room{{ID: roomID, IsAvailable: true}}, nil)
				f.cache.EXPECT().Save(gomock.Any(), "room:available:"+hotelID, gomock.Any(), gomock.Any()).Return(nil)
			},
			wantLen: 1,
		},
		{
			name: "hotel not found",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
				f.hotelRepo.EXPECT().ExistsByID(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.GetAvailableByHotel(context.Background(), hotelID)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Len(t, res, tt.wantLen)
		})
	}
}

func TestRoomService_MalformedID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Get(ctx, "abc")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	_, err = f.svc.Update(ctx, dto.UpdateRoomRequest{BedType: "Queen"}, "abc")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	err = f.svc.Delete(ctx, "abc")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	_, err = f.svc.UploadImage(ctx, "abc", dto.UploadImageRequest{})
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	_, err = f.svc.Create(ctx, dto.CreateRoomRequest{HotelID: "abc", RoomType: "Deluxe", PricePerNight: "2500"})
	assert.EqualError(t, err, "Hotel not found")

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)

	_, err = f.svc.GetAvailableByHotel(ctx, "abc")
	assert.EqualError(t, err, "Hotel not found")
}

func TestListFilter_MalformedHotelID(t *testing.T) {
	filter := service.ListFilter("", "abc")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(FALSE)", where)
	assert.Empty(t, args)
}
