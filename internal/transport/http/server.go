package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"photobooth_gallery/internal/domain/models"
	"photobooth_gallery/internal/lib/logger/sl"
	"photobooth_gallery/internal/storage"
	"photobooth_gallery/internal/transport/http/dto"
	"photobooth_gallery/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"

	_ "photobooth_gallery/docs"
)

type GalleryService interface {
	ResolveSession(ctx context.Context, code string) (*dto.SessionResponse, error)
	GetGallery(ctx context.Context, code string, mode *models.ViewingMode) (*dto.GalleryResponse, error)
	GetImage(ctx context.Context, code string, mode models.ViewingMode, stem string) (*dto.ImageResponse, error)
}

type Routers struct {
	log            *slog.Logger
	GalleryService GalleryService
}

func NewRouter(log *slog.Logger, galleryService GalleryService) *Routers {
	return &Routers{
		log:            log,
		GalleryService: galleryService,
	}
}

// EnterCode godoc
// @Summary Вход в галерею по коду фотобудки
// @Description Проверяет код сессии и перенаправляет на галерею найденного каталога
// @Tags Сессии
// @Produce json
// @Param photo_code query string true "Код сессии, напечатанный фотобудкой"
// @Success 302 "Редирект на галерею"
// @Failure 400 {object} response.ErrorResponse "Код не указан или недопустим"
// @Failure 404 {object} response.ErrorResponse "Сессия не найдена"
// @Failure 429 {object} response.ErrorResponse "Слишком много попыток"
// @Failure 500 {object} response.ErrorResponse "Каталог галерей недоступен"
// @Router /session [get]
func (r *Routers) EnterCode(c echo.Context) error {
	const op = "http.routers.EnterCode"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.SessionCodeRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid format request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(
			response.ErrInvalidRequestFormat.Error, err.Error(),
		))
	}

	session, err := r.GalleryService.ResolveSession(c.Request().Context(), req.Code)
	if err != nil {
		return r.writeError(c, log, err)
	}

	log.Info("session resolved", slog.String("dir", session.Dir))

	return c.Redirect(http.StatusFound, session.GalleryURL)
}

// GetSession godoc
// @Summary Проверка кода сессии
// @Description Возвращает каталог сессии, режим просмотра по умолчанию и адрес галереи
// @Tags Сессии
// @Produce json
// @Param code path string true "Код сессии"
// @Success 200 {object} response.Response{data=dto.SessionResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 429 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/sessions/{code} [get]
func (r *Routers) GetSession(c echo.Context) error {
	const op = "http.routers.GetSession"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.SessionRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid format request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidSessionCode)
	}

	session, err := r.GalleryService.ResolveSession(c.Request().Context(), req.Code)
	if err != nil {
		return r.writeError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(session))
}

// GetGallery godoc
// @Summary Миниатюры сессии
// @Description Возвращает все снимки сессии с размерами отображения и ссылками на полные файлы.
// @Description Без режима он определяется по имени каталога.
// @Tags Галереи
// @Produce json
// @Param code path string true "Код сессии"
// @Param mode path string false "Режим просмотра" Enums(continuous, animated)
// @Success 200 {object} response.Response{data=dto.GalleryResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 429 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/galleries/{code}/{mode} [get]
func (r *Routers) GetGallery(c echo.Context) error {
	const op = "http.routers.GetGallery"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.GalleryRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid format request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(
			response.ErrInvalidRequestFormat.Error, err.Error(),
		))
	}

	var mode *models.ViewingMode
	if req.Mode != "" {
		m, err := models.ParseViewingMode(req.Mode)
		if err != nil {
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(
				response.ErrInvalidRequestFormat.Error, err.Error(),
			))
		}
		mode = &m
	}

	gallery, err := r.GalleryService.GetGallery(c.Request().Context(), req.Code, mode)
	if err != nil {
		return r.writeError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(gallery))
}

// GetImage godoc
// @Summary Полный просмотр снимка
// @Description Возвращает снимок и ссылку на полный файл (для animated это анимация).
// @Description Если анимация еще не готова, отвечает 404 asset_unavailable.
// @Tags Галереи
// @Produce json
// @Param code path string true "Код сессии"
// @Param mode path string true "Режим просмотра" Enums(continuous, animated)
// @Param stem path string true "Имя снимка без расширения"
// @Success 200 {object} response.Response{data=dto.ImageResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 429 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/galleries/{code}/{mode}/images/{stem} [get]
func (r *Routers) GetImage(c echo.Context) error {
	const op = "http.routers.GetImage"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.ImageRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid format request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(
			response.ErrInvalidRequestFormat.Error, err.Error(),
		))
	}

	mode, err := models.ParseViewingMode(req.Mode)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(
			response.ErrInvalidRequestFormat.Error, err.Error(),
		))
	}

	image, err := r.GalleryService.GetImage(c.Request().Context(), req.Code, mode, req.Stem)
	if err != nil {
		return r.writeError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(image))
}

// Health godoc
// @Summary Проверка доступности сервиса
// @Tags Служебные
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (r *Routers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// writeError переводит ошибки сервисов в HTTP-ответ. Наружу уходят только
// коды ошибок, пути на диске и исходный ввод не возвращаются.
func (r *Routers) writeError(c echo.Context, log *slog.Logger, err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		// клиент ушел, отвечать некому
		log.Debug("request canceled", sl.Err(err))
		return nil
	case errors.Is(err, storage.ErrInvalidSessionCode):
		log.Info("invalid session code")
		return c.JSON(http.StatusBadRequest, response.ErrInvalidSessionCode)
	case errors.Is(err, storage.ErrSessionNotFound):
		log.Info("session not found")
		return c.JSON(http.StatusNotFound, response.ErrSessionNotFound)
	case errors.Is(err, storage.ErrInvalidFileName),
		errors.Is(err, storage.ErrImageNotFound):
		log.Info("image not found", sl.Err(err))
		return c.JSON(http.StatusNotFound, response.ErrImageNotFound)
	case errors.Is(err, storage.ErrAssetUnavailable):
		return c.JSON(http.StatusNotFound, response.ErrAssetUnavailable)
	case errors.Is(err, storage.ErrLocationUnreadable):
		log.Error("gallery unavailable", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrGalleryUnavailable)
	default:
		log.Error("internal error", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Status: "error",
			Error:  "internal_error",
		})
	}
}
