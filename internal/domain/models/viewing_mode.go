package models

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownViewingMode = errors.New("unknown viewing mode")

// ViewingMode определяет, как миниатюра связана с полноразмерным файлом.
//
// Continuous: миниатюра и полный просмотр это один и тот же снимок,
// миниатюра масштабируется до фиксированной ширины.
// Animated: полный просмотр это анимация с тем же stem, миниатюра
// показывается в натуральном размере.
//
// Связка "режим -> политика размера" повторяет уже опубликованные страницы,
// переименование требует подтверждения владельца продукта.
type ViewingMode string

const (
	ModeContinuous ViewingMode = "continuous"
	ModeAnimated   ViewingMode = "animated"
)

func ParseViewingMode(s string) (ViewingMode, error) {
	switch ViewingMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeContinuous:
		return ModeContinuous, nil
	case ModeAnimated:
		return ModeAnimated, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownViewingMode, s)
	}
}

func (m ViewingMode) String() string {
	return string(m)
}

// ScalesThumbnail reports whether thumbnails in this mode are scaled to a fixed width.
func (m ViewingMode) ScalesThumbnail() bool {
	return m == ModeContinuous
}
