package models

import "strings"

// GalleryLocation указывает на каталог одной фотосессии внутри корня галерей.
// Создается только резолвером сессий и дальше используется только на чтение.
type GalleryLocation struct {
	Code string `json:"code"` // Код, который ввел посетитель (после нормализации)
	Dir  string `json:"dir"`  // Имя каталога относительно корня галерей
}

// Фотобудка выгружает анимированные сессии в каталоги с суффиксом "_A",
// обычные с суффиксом "_C".
const animatedDirSuffix = "_A"

// DefaultMode возвращает режим просмотра, под который фотобудка выгружала каталог.
func (l GalleryLocation) DefaultMode() ViewingMode {
	if strings.HasSuffix(l.Dir, animatedDirSuffix) {
		return ModeAnimated
	}

	return ModeContinuous
}
