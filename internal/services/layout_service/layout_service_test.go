package services

import (
	"math"
	"testing"

	"photobooth_gallery/internal/domain/models"
	"photobooth_gallery/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asset(w, h int) models.ImageAsset {
	return models.ImageAsset{Stem: "photo1", Path: "photo1.jpg", Width: w, Height: h}
}

func TestLayoutService_Layout(t *testing.T) {
	service := NewLayoutService(200)

	tests := []struct {
		name         string
		asset        models.ImageAsset
		mode         models.ViewingMode
		wantW, wantH int
	}{
		{name: "continuous scales 800x600", asset: asset(800, 600), mode: models.ModeContinuous, wantW: 200, wantH: 150},
		{name: "continuous scales portrait", asset: asset(600, 800), mode: models.ModeContinuous, wantW: 200, wantH: 267},
		{name: "continuous upscales small", asset: asset(100, 50), mode: models.ModeContinuous, wantW: 200, wantH: 100},
		{name: "continuous rounds half away from zero", asset: asset(400, 1), mode: models.ModeContinuous, wantW: 200, wantH: 1},
		{name: "continuous rounds down", asset: asset(600, 1), mode: models.ModeContinuous, wantW: 200, wantH: 0},
		{name: "animated keeps natural size", asset: asset(800, 600), mode: models.ModeAnimated, wantW: 800, wantH: 600},
		{name: "animated keeps odd size", asset: asset(1023, 77), mode: models.ModeAnimated, wantW: 1023, wantH: 77},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := service.Layout(tt.asset, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestLayoutService_Layout_InvalidDimensions(t *testing.T) {
	service := NewLayoutService(200)

	for _, a := range []models.ImageAsset{asset(0, 600), asset(800, 0), asset(-1, 5)} {
		for _, mode := range []models.ViewingMode{models.ModeContinuous, models.ModeAnimated} {
			_, _, err := service.Layout(a, mode)
			assert.ErrorIs(t, err, storage.ErrInvalidDimensions)
		}
	}
}

func TestLayoutService_AspectRatioWithinOnePixel(t *testing.T) {
	for _, thumbWidth := range []int{120, 200, 333} {
		service := NewLayoutService(thumbWidth)

		for w := 1; w <= 2048; w += 37 {
			for h := 1; h <= 2048; h += 53 {
				dw, dh, err := service.Layout(asset(w, h), models.ModeContinuous)
				require.NoError(t, err)

				require.Equal(t, thumbWidth, dw)
				exact := float64(h) * float64(dw) / float64(w)
				require.LessOrEqual(t, math.Abs(float64(dh)-exact), 0.5+1e-9, "%dx%d", w, h)
			}
		}
	}
}

func TestNewLayoutService_DefaultWidth(t *testing.T) {
	w, h, err := NewLayoutService(0).Layout(asset(800, 600), models.ModeContinuous)
	require.NoError(t, err)
	assert.Equal(t, DefaultThumbWidth, w)
	assert.Equal(t, 150, h)

	w, h, err = NewLayoutService(320).Layout(asset(800, 600), models.ModeContinuous)
	require.NoError(t, err)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestFixedWidth(t *testing.T) {
	w, h, err := FixedWidth(200, 800, 600)
	require.NoError(t, err)
	assert.Equal(t, 200, w)
	assert.Equal(t, 150, h)

	_, _, err = FixedWidth(0, 800, 600)
	assert.ErrorIs(t, err, storage.ErrInvalidDimensions)
}
