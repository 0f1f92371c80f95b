package services

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"strings"

	"photobooth_gallery/internal/domain/models"
	"photobooth_gallery/internal/lib/logger/sl"
	"photobooth_gallery/internal/metrics"
	"photobooth_gallery/internal/storage"
	filestorage "photobooth_gallery/internal/storage/filestorage"
)

type IndexService struct {
	log            *slog.Logger
	fileStorage    filestorage.FileStorage
	stillExtension string
}

func NewIndexService(log *slog.Logger, fileStorage filestorage.FileStorage, stillExtension string) *IndexService {
	return &IndexService{
		log:            log,
		fileStorage:    fileStorage,
		stillExtension: stillExtension,
	}
}

// ListImages перечисляет снимки каталога сессии в порядке имен файлов.
// Порядок ReadDir не гарантирован, поэтому сортируем сами.
// Файл, который не удалось прочитать как изображение, пропускается.
func (s *IndexService) ListImages(ctx context.Context, loc models.GalleryLocation) ([]models.ImageAsset, error) {
	const op = "service.IndexService.ListImages"

	log := s.log.With(
		slog.String("op", op),
		slog.String("dir", loc.Dir),
	)

	entries, err := s.fileStorage.ReadDir(ctx, loc.Dir)
	if err != nil {
		log.Error("failed to read gallery directory", sl.Err(err))

		return nil, fmt.Errorf("%s: %w: %w", op, storage.ErrLocationUnreadable, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !s.isStill(entry.Name()) {
			continue
		}

		names = append(names, entry.Name())
	}

	slices.Sort(names)

	images := make([]models.ImageAsset, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		asset, err := s.probe(ctx, loc, name)
		if err != nil {
			metrics.ImagesSkipped.Inc()
			reason := "undecodable"
			if models.IsImageValidationError(err) {
				reason = "invalid_dimensions"
			}

			log.Warn("skipping image",
				slog.String("file", s.fileStorage.GetFullPath(path.Join(loc.Dir, name))),
				slog.String("reason", reason),
				sl.Err(err),
			)

			continue
		}

		images = append(images, asset)
	}

	metrics.ImagesIndexed.Add(float64(len(images)))
	log.Debug("gallery indexed", slog.Int("images", len(images)), slog.Int("candidates", len(names)))

	return images, nil
}

// Probe читает один снимок по stem. Используется страницей полного просмотра,
// которой не нужен весь каталог.
func (s *IndexService) Probe(ctx context.Context, loc models.GalleryLocation, stem string) (models.ImageAsset, error) {
	const op = "service.IndexService.Probe"

	if stem == "" || strings.ContainsAny(stem, `/\`) || !fs.ValidPath(stem) {
		return models.ImageAsset{}, fmt.Errorf("%s: %w", op, storage.ErrInvalidFileName)
	}

	asset, err := s.probe(ctx, loc, stem+s.stillExtension)
	if err != nil {
		// битый снимок не попадает в листинг, значит и отдельно его нет
		if ctx.Err() == nil && !errors.Is(err, storage.ErrImageNotFound) {
			err = fmt.Errorf("%w: %w", storage.ErrImageNotFound, err)
		}

		return models.ImageAsset{}, fmt.Errorf("%s: %w", op, err)
	}

	return asset, nil
}

func (s *IndexService) isStill(name string) bool {
	return len(name) > len(s.stillExtension) && strings.HasSuffix(name, s.stillExtension)
}

func (s *IndexService) probe(ctx context.Context, loc models.GalleryLocation, name string) (models.ImageAsset, error) {
	f, err := s.fileStorage.Open(ctx, path.Join(loc.Dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.ImageAsset{}, fmt.Errorf("%w: %s", storage.ErrImageNotFound, name)
		}

		return models.ImageAsset{}, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return models.ImageAsset{}, fmt.Errorf("decode %s: %w", name, err)
	}

	asset := models.ImageAsset{
		Stem:   strings.TrimSuffix(name, s.stillExtension),
		Path:   name,
		Width:  cfg.Width,
		Height: cfg.Height,
	}

	if err := asset.Validate(); err != nil {
		return models.ImageAsset{}, fmt.Errorf("%w: %w", storage.ErrInvalidDimensions, err)
	}

	return asset, nil
}
