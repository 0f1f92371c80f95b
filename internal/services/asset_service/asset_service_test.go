package services

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"testing"
	"testing/fstest"

	"photobooth_gallery/internal/domain/models"
	"photobooth_gallery/internal/metrics"
	"photobooth_gallery/internal/storage"
	filestorage "photobooth_gallery/internal/storage/filestorage"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLayouter struct {
	mock.Mock
}

func (m *MockLayouter) Layout(asset models.ImageAsset, mode models.ViewingMode) (int, int, error) {
	args := m.Called(asset, mode)
	return args.Int(0), args.Int(1), args.Error(2)
}

const sessionDir = "booth1_19-Oct-2026_A"

var loc = models.GalleryLocation{Code: sessionDir, Dir: sessionDir}

func newAssetService(t *testing.T, layout Layouter) *AssetService {
	t.Helper()

	fsys := fstest.MapFS{
		sessionDir + "/photo1.jpg": {Data: []byte("jpeg")},
		sessionDir + "/photo2.jpg": {Data: []byte("jpeg")},
		sessionDir + "/photo2.gif": {Data: []byte("gif")},
		sessionDir + "/photo3.gif": {Mode: fs.ModeDir | 0755},
	}

	return NewAssetService(slog.Default(), filestorage.NewFSStorage(fsys, "/media"), layout, ".gif")
}

func TestAssetService_Pair_Continuous(t *testing.T) {
	ctx := context.Background()
	layout := new(MockLayouter)
	service := newAssetService(t, layout)

	photo := models.ImageAsset{Stem: "photo1", Path: "photo1.jpg", Width: 800, Height: 600}
	layout.On("Layout", photo, models.ModeContinuous).Return(200, 150, nil).Once()

	desc, err := service.Pair(ctx, loc, photo, models.ModeContinuous)
	require.NoError(t, err)

	assert.Equal(t, photo.Path, desc.FullAssetPath)
	assert.True(t, desc.FullAssetExists)
	assert.Equal(t, 200, desc.DisplayWidth)
	assert.Equal(t, 150, desc.DisplayHeight)
	assert.Equal(t, photo, desc.Image)
	assert.Equal(t, models.ModeContinuous, desc.Mode)

	layout.AssertExpectations(t)
}

func TestAssetService_Pair_ContinuousRoundTrip(t *testing.T) {
	layout := new(MockLayouter)
	layout.On("Layout", mock.Anything, models.ModeContinuous).Return(200, 100, nil)
	service := newAssetService(t, layout)

	for _, stem := range []string{"photo1", "photo2", "not-on-disk", "a.b.c"} {
		photo := models.ImageAsset{Stem: stem, Path: stem + ".jpg", Width: 2, Height: 1}

		desc, err := service.Pair(context.Background(), loc, photo, models.ModeContinuous)
		require.NoError(t, err)
		assert.Equal(t, photo.Path, desc.FullAssetPath)
		assert.True(t, desc.FullAssetExists)
	}
}

func TestAssetService_Pair_Animated(t *testing.T) {
	ctx := context.Background()
	layout := new(MockLayouter)
	layout.On("Layout", mock.Anything, models.ModeAnimated).Return(800, 600, nil)
	service := newAssetService(t, layout)

	t.Run("companion present", func(t *testing.T) {
		photo := models.ImageAsset{Stem: "photo2", Path: "photo2.jpg", Width: 800, Height: 600}

		desc, err := service.Pair(ctx, loc, photo, models.ModeAnimated)
		require.NoError(t, err)
		assert.Equal(t, "photo2.gif", desc.FullAssetPath)
		assert.True(t, desc.FullAssetExists)
	})

	t.Run("companion missing", func(t *testing.T) {
		before := testutil.ToFloat64(metrics.CompanionMissing)
		photo := models.ImageAsset{Stem: "photo1", Path: "photo1.jpg", Width: 800, Height: 600}

		desc, err := service.Pair(ctx, loc, photo, models.ModeAnimated)
		require.NoError(t, err)
		assert.Equal(t, "photo1.gif", desc.FullAssetPath)
		assert.False(t, desc.FullAssetExists)
		assert.Equal(t, 800, desc.DisplayWidth)
		assert.Equal(t, 600, desc.DisplayHeight)
		assert.Equal(t, before+1, testutil.ToFloat64(metrics.CompanionMissing))
	})

	t.Run("directory with companion name", func(t *testing.T) {
		photo := models.ImageAsset{Stem: "photo3", Path: "photo3.jpg", Width: 800, Height: 600}

		desc, err := service.Pair(ctx, loc, photo, models.ModeAnimated)
		require.NoError(t, err)
		assert.False(t, desc.FullAssetExists)
	})
}

func TestAssetService_Pair_LayoutError(t *testing.T) {
	layout := new(MockLayouter)
	layout.On("Layout", mock.Anything, mock.Anything).Return(0, 0, storage.ErrInvalidDimensions)
	service := newAssetService(t, layout)

	_, err := service.Pair(context.Background(), loc, models.ImageAsset{Stem: "x", Path: "x.jpg"}, models.ModeAnimated)
	assert.True(t, errors.Is(err, storage.ErrInvalidDimensions))
}

func TestAssetService_Pair_CancelledContext(t *testing.T) {
	layout := new(MockLayouter)
	layout.On("Layout", mock.Anything, models.ModeAnimated).Return(800, 600, nil)
	service := newAssetService(t, layout)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	desc, err := service.Pair(ctx, loc, models.ImageAsset{Stem: "photo2", Path: "photo2.jpg", Width: 800, Height: 600}, models.ModeAnimated)
	require.NoError(t, err)
	assert.False(t, desc.FullAssetExists)
	assert.Equal(t, 800, desc.DisplayWidth)
}
