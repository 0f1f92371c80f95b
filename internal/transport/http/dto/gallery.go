package dto

// SessionCodeRequest код, введенный посетителем на киоске
type SessionCodeRequest struct {
	Code string `query:"photo_code" validate:"required,max=64"`
}

type SessionRequest struct {
	Code string `param:"code" validate:"required,max=64"`
}

type GalleryRequest struct {
	Code string `param:"code" validate:"required,max=64"`
	Mode string `param:"mode" validate:"omitempty,oneof=continuous animated"`
}

type ImageRequest struct {
	Code string `param:"code" validate:"required,max=64"`
	Mode string `param:"mode" validate:"required,oneof=continuous animated"`
	Stem string `param:"stem" validate:"required,max=255"`
}

// SessionResponse результат разрешения кода сессии
type SessionResponse struct {
	Code       string `json:"code"`        // Код в нормализованном виде
	Dir        string `json:"dir"`         // Каталог сессии внутри корня галерей
	Mode       string `json:"mode"`        // Режим просмотра по умолчанию для каталога
	GalleryURL string `json:"gallery_url"` // Куда отправлять посетителя
}

// ThumbnailResponse данные одной миниатюры для презентационного слоя.
// Разметку и lazy-load атрибуты строит клиент.
type ThumbnailResponse struct {
	Stem            string `json:"stem"`
	ThumbnailSrc    string `json:"thumbnail_src"`            // Адрес снимка для data-original
	Width           int    `json:"width"`                    // Натуральная ширина
	Height          int    `json:"height"`                   // Натуральная высота
	DisplayWidth    int    `json:"display_width"`            // Ширина зарезервированной рамки
	DisplayHeight   int    `json:"display_height"`           // Высота зарезервированной рамки
	FullAssetPath   string `json:"full_asset_path"`          // Путь полного файла внутри каталога
	FullAssetSrc    string `json:"full_asset_src,omitempty"` // Пусто, пока полный файл не появился
	FullAssetExists bool   `json:"full_asset_exists"`
}

// GalleryResponse представляет собой DTO для ответа с данными о галерее
type GalleryResponse struct {
	Code   string              `json:"code"`
	Dir    string              `json:"dir"`
	Mode   string              `json:"mode"`
	Total  int                 `json:"total"`
	Images []ThumbnailResponse `json:"images"`
}

// ImageResponse данные страницы полного просмотра одного снимка
type ImageResponse struct {
	Code  string            `json:"code"`
	Mode  string            `json:"mode"`
	Image ThumbnailResponse `json:"image"`
}
