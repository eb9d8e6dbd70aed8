package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"talenthub/internal/apperr"
	"talenthub/internal/config"
	"talenthub/internal/logger"
	"talenthub/internal/models"
)

type mockTalentRepository struct {
	mock.Mock
}

func (m *mockTalentRepository) Create(ctx context.Context, talent *models.Talent) error {
	args := m.Called(ctx, talent)
	return args.Error(0)
}

func (m *mockTalentRepository) GetByID(ctx context.Context, talentID string) (*models.Talent, error) {
	args := m.Called(ctx, talentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Talent), args.Error(1)
}

func (m *mockTalentRepository) List(ctx context.Context, sortKey string) ([]models.Talent, error) {
	args := m.Called(ctx, sortKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Talent), args.Error(1)
}

func (m *mockTalentRepository) Delete(ctx context.Context, talentID string) error {
	args := m.Called(ctx, talentID)
	return args.Error(0)
}

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) Upload(ctx context.Context, ownerID, fileName string, file io.Reader, size int64, contentType string) (string, string, error) {
	args := m.Called(ctx, ownerID, fileName, file, size, contentType)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockStorage) Delete(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}

func (m *mockStorage) PublicURL(objectName string) string {
	args := m.Called(objectName)
	return args.String(0)
}

func testConfig() *config.Config {
	return &config.Config{MaxUploadSize: 10 * 1024 * 1024}
}

func TestTalentService_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("oversized file is rejected before any store call", func(t *testing.T) {
		talents := new(mockTalentRepository)
		store := new(mockStorage)
		svc := NewTalentService(talents, store, testConfig(), logger.NewNop())

		_, err := svc.Upload(ctx, UploadTalentRequest{
			OwnerID:  "owner-1",
			Title:    "My set",
			Category: "music",
			FileName: "set.mp4",
			File:     bytes.NewReader(nil),
			Size:     15 * 1024 * 1024,
		})

		assert.ErrorIs(t, err, apperr.ErrValidation)
		store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		talents.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing title and unknown category are rejected locally", func(t *testing.T) {
		talents := new(mockTalentRepository)
		store := new(mockStorage)
		svc := NewTalentService(talents, store, testConfig(), logger.NewNop())

		_, err := svc.Upload(ctx, UploadTalentRequest{OwnerID: "owner-1", Category: "music"})
		assert.ErrorIs(t, err, apperr.ErrValidation)

		_, err = svc.Upload(ctx, UploadTalentRequest{OwnerID: "owner-1", Title: "x", Category: "juggling"})
		assert.ErrorIs(t, err, apperr.ErrValidation)

		store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("requires an owner", func(t *testing.T) {
		svc := NewTalentService(new(mockTalentRepository), new(mockStorage), testConfig(), logger.NewNop())

		_, err := svc.Upload(ctx, UploadTalentRequest{Title: "x", Category: "music"})

		assert.ErrorIs(t, err, apperr.ErrAuthRequired)
	})

	t.Run("video MIME prefix yields a video talent with one upload and one insert", func(t *testing.T) {
		talents := new(mockTalentRepository)
		store := new(mockStorage)
		svc := NewTalentService(talents, store, testConfig(), logger.NewNop())

		store.On("Upload", ctx, "owner-1", "set.mp4", mock.Anything, int64(2*1024*1024), "video/mp4").
			Return("talents/owner-1/set.mp4", "http://media/talents/owner-1/set.mp4", nil).Once()
		talents.On("Create", ctx, mock.MatchedBy(func(talent *models.Talent) bool {
			return talent.MediaType == models.MediaVideo &&
				talent.MediaURL == "http://media/talents/owner-1/set.mp4" &&
				talent.OwnerID == "owner-1"
		})).Return(nil).Once()

		talent, err := svc.Upload(ctx, UploadTalentRequest{
			OwnerID:     "owner-1",
			Title:       "My set",
			Category:    "music",
			Tags:        []string{"guitar", "acoustic"},
			FileName:    "set.mp4",
			File:        bytes.NewReader(make([]byte, 16)),
			Size:        2 * 1024 * 1024,
			ContentType: "video/mp4",
		})

		require.NoError(t, err)
		assert.Equal(t, models.MediaVideo, talent.MediaType)
		store.AssertExpectations(t)
		talents.AssertExpectations(t)
	})

	t.Run("non-video MIME defaults to image", func(t *testing.T) {
		talents := new(mockTalentRepository)
		store := new(mockStorage)
		svc := NewTalentService(talents, store, testConfig(), logger.NewNop())

		store.On("Upload", ctx, "owner-1", "art.png", mock.Anything, int64(1024), "image/png").
			Return("obj", "http://media/obj", nil).Once()
		talents.On("Create", ctx, mock.MatchedBy(func(talent *models.Talent) bool {
			return talent.MediaType == models.MediaImage
		})).Return(nil).Once()

		talent, err := svc.Upload(ctx, UploadTalentRequest{
			OwnerID:     "owner-1",
			Title:       "Sketch",
			Category:    "art",
			FileName:    "art.png",
			File:        bytes.NewReader(make([]byte, 16)),
			Size:        1024,
			ContentType: "image/png",
		})

		require.NoError(t, err)
		assert.Equal(t, models.MediaImage, talent.MediaType)
	})

	t.Run("failed insert removes the uploaded object", func(t *testing.T) {
		talents := new(mockTalentRepository)
		store := new(mockStorage)
		svc := NewTalentService(talents, store, testConfig(), logger.NewNop())

		store.On("Upload", ctx, "owner-1", "art.png", mock.Anything, int64(1024), "image/png").
			Return("orphan-obj", "http://media/orphan-obj", nil).Once()
		talents.On("Create", ctx, mock.Anything).
			Return(apperr.Store("creating talent", errors.New("duplicate key"))).Once()
		store.On("Delete", ctx, "orphan-obj").Return(nil).Once()

		_, err := svc.Upload(ctx, UploadTalentRequest{
			OwnerID:     "owner-1",
			Title:       "Sketch",
			Category:    "art",
			FileName:    "art.png",
			File:        bytes.NewReader(make([]byte, 16)),
			Size:        1024,
			ContentType: "image/png",
		})

		assert.ErrorIs(t, err, apperr.ErrStore)
		store.AssertExpectations(t)
	})
}

func TestTalentService_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the media object and the row", func(t *testing.T) {
		talents := new(mockTalentRepository)
		store := new(mockStorage)
		svc := NewTalentService(talents, store, testConfig(), logger.NewNop())

		talents.On("GetByID", ctx, "t1").Return(&models.Talent{
			TalentID:   "t1",
			ObjectName: "talents/owner-1/obj",
		}, nil).Once()
		store.On("Delete", ctx, "talents/owner-1/obj").Return(nil).Once()
		talents.On("Delete", ctx, "t1").Return(nil).Once()

		require.NoError(t, svc.Remove(ctx, "t1"))
		store.AssertExpectations(t)
		talents.AssertExpectations(t)
	})

	t.Run("row removal proceeds when the object delete fails", func(t *testing.T) {
		talents := new(mockTalentRepository)
		store := new(mockStorage)
		svc := NewTalentService(talents, store, testConfig(), logger.NewNop())

		talents.On("GetByID", ctx, "t1").Return(&models.Talent{
			TalentID:   "t1",
			ObjectName: "obj",
		}, nil).Once()
		store.On("Delete", ctx, "obj").Return(errors.New("object store down")).Once()
		talents.On("Delete", ctx, "t1").Return(nil).Once()

		require.NoError(t, svc.Remove(ctx, "t1"))
		talents.AssertExpectations(t)
	})
}
