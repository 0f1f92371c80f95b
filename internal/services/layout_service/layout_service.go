package services

import (
	"fmt"
	"math"

	"photobooth_gallery/internal/domain/models"
	"photobooth_gallery/internal/storage"
)

const DefaultThumbWidth = 200

// LayoutService вычисляет размер рамки миниатюры, чтобы lazy-load клиент
// мог зарезервировать место на странице до загрузки изображения.
type LayoutService struct {
	thumbWidth int
}

func NewLayoutService(thumbWidth int) *LayoutService {
	if thumbWidth <= 0 {
		thumbWidth = DefaultThumbWidth
	}

	return &LayoutService{
		thumbWidth: thumbWidth,
	}
}

// Layout возвращает рамку миниатюры для режима просмотра.
// Continuous масштабируется до заданной ширины, Animated остается натуральным.
func (s *LayoutService) Layout(asset models.ImageAsset, mode models.ViewingMode) (int, int, error) {
	const op = "service.LayoutService.Layout"

	if asset.Width <= 0 || asset.Height <= 0 {
		return 0, 0, fmt.Errorf("%s: %w: %dx%d", op, storage.ErrInvalidDimensions, asset.Width, asset.Height)
	}

	if !mode.ScalesThumbnail() {
		return asset.Width, asset.Height, nil
	}

	w, h, err := FixedWidth(s.thumbWidth, asset.Width, asset.Height)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", op, err)
	}

	return w, h, nil
}

// FixedWidth масштабирует width x height до ширины thumbWidth.
// Высота считается как round(thumbWidth / width * height), округление
// половины от нуля. Для очень широких снимков высота может округлиться
// до 0 (600x1 при ширине 200): рамка тогда нулевой высоты, это не ошибка.
func FixedWidth(thumbWidth, width, height int) (int, int, error) {
	if thumbWidth <= 0 || width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("%w: thumb %d, image %dx%d", storage.ErrInvalidDimensions, thumbWidth, width, height)
	}

	h := int(math.Round(float64(thumbWidth) / float64(width) * float64(height)))

	return thumbWidth, h, nil
}
