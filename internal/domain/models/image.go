package models

import (
	"errors"
	"fmt"
	"strings"
)

// ImageAsset представляет один снимок фотобудки
type ImageAsset struct {
	Stem   string `json:"stem"`   // Имя файла без расширения, уникально внутри каталога
	Path   string `json:"path"`   // Путь относительно каталога сессии
	Width  int    `json:"width"`  // Натуральная ширина в пикселях
	Height int    `json:"height"` // Натуральная высота в пикселях
}

// ThumbnailDescriptor вычисляется на каждый запрос и нигде не хранится
type ThumbnailDescriptor struct {
	Image           ImageAsset  `json:"image"`
	Mode            ViewingMode `json:"mode"`
	DisplayWidth    int         `json:"display_width"`
	DisplayHeight   int         `json:"display_height"`
	FullAssetPath   string      `json:"full_asset_path"`
	FullAssetExists bool        `json:"full_asset_exists"`
}

// Validate проверяет, что снимок можно пускать в галерею
func (a ImageAsset) Validate() error {
	var validationErrors []string

	if a.Stem == "" {
		validationErrors = append(validationErrors, "stem is required")
	}
	if a.Path == "" {
		validationErrors = append(validationErrors, "path is required")
	}
	if a.Width <= 0 || a.Height <= 0 {
		validationErrors = append(validationErrors,
			fmt.Sprintf("width and height must be positive values, got %dx%d", a.Width, a.Height))
	}

	if len(validationErrors) > 0 {
		return &ImageValidationError{
			Path:   a.Path,
			Errors: validationErrors,
		}
	}

	return nil
}

// ImageValidationError кастомный тип ошибки для валидации
type ImageValidationError struct {
	Path   string
	Errors []string
}

func (e *ImageValidationError) Error() string {
	return fmt.Sprintf("image %q validation failed: %s", e.Path, strings.Join(e.Errors, "; "))
}

// IsImageValidationError проверяет, является ли ошибка ошибкой валидации
func IsImageValidationError(err error) bool {
	var target *ImageValidationError
	return errors.As(err, &target)
}
