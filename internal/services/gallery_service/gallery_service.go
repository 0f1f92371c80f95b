package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path"

	"photobooth_gallery/internal/domain/models"
	"photobooth_gallery/internal/lib/logger/sl"
	"photobooth_gallery/internal/storage"
	"photobooth_gallery/internal/transport/http/dto"
)

type SessionResolver interface {
	Resolve(ctx context.Context, code string) (models.GalleryLocation, error)
}

type ImageIndexer interface {
	ListImages(ctx context.Context, loc models.GalleryLocation) ([]models.ImageAsset, error)
	Probe(ctx context.Context, loc models.GalleryLocation, stem string) (models.ImageAsset, error)
}

type AssetPairer interface {
	Pair(ctx context.Context, loc models.GalleryLocation, asset models.ImageAsset, mode models.ViewingMode) (models.ThumbnailDescriptor, error)
}

type URLBuilder interface {
	URL(elem ...string) (string, error)
}

// GalleryService прогоняет запрос через резолвер, индексатор, связывание
// и раскладку. Ничего не хранит между запросами.
type GalleryService struct {
	log        *slog.Logger
	resolver   SessionResolver
	indexer    ImageIndexer
	pairer     AssetPairer
	media      URLBuilder
	galleryURL string
}

func NewGalleryService(
	log *slog.Logger,
	resolver SessionResolver,
	indexer ImageIndexer,
	pairer AssetPairer,
	media URLBuilder,
	galleryURL string,
) *GalleryService {
	return &GalleryService{
		log:        log,
		resolver:   resolver,
		indexer:    indexer,
		pairer:     pairer,
		media:      media,
		galleryURL: galleryURL,
	}
}

// ResolveSession возвращает каталог сессии и адрес галереи для редиректа
func (s *GalleryService) ResolveSession(ctx context.Context, code string) (*dto.SessionResponse, error) {
	const op = "service.GalleryService.ResolveSession"

	loc, err := s.resolver.Resolve(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// адрес строится из имени найденного каталога, а не из ввода посетителя
	galleryURL, err := url.JoinPath(s.galleryURL, loc.Dir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &dto.SessionResponse{
		Code:       loc.Code,
		Dir:        loc.Dir,
		Mode:       loc.DefaultMode().String(),
		GalleryURL: galleryURL,
	}, nil
}

// GetGallery возвращает все миниатюры сессии. Если mode == nil, режим
// берется из имени каталога.
func (s *GalleryService) GetGallery(ctx context.Context, code string, mode *models.ViewingMode) (*dto.GalleryResponse, error) {
	const op = "service.GalleryService.GetGallery"

	log := s.log.With(
		slog.String("op", op),
	)

	loc, err := s.resolver.Resolve(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	m := loc.DefaultMode()
	if mode != nil {
		m = *mode
	}

	log = log.With(
		slog.String("dir", loc.Dir),
		slog.String("mode", m.String()),
	)

	images, err := s.indexer.ListImages(ctx, loc)
	if err != nil {
		log.Error("failed to list images", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	thumbs := make([]dto.ThumbnailResponse, 0, len(images))
	for _, img := range images {
		desc, err := s.pairer.Pair(ctx, loc, img, m)
		if err != nil {
			log.Warn("skipping image", slog.String("file", img.Path), sl.Err(err))
			continue
		}

		thumb, err := s.mapToThumbnailResponse(loc, desc)
		if err != nil {
			log.Warn("skipping image", slog.String("file", img.Path), sl.Err(err))
			continue
		}

		thumbs = append(thumbs, thumb)
	}

	log.Info("gallery retrieved successfully", slog.Int("total", len(thumbs)))

	return &dto.GalleryResponse{
		Code:   loc.Code,
		Dir:    loc.Dir,
		Mode:   m.String(),
		Total:  len(thumbs),
		Images: thumbs,
	}, nil
}

// GetImage отдает данные для страницы полного просмотра. Если полного
// файла еще нет, возвращается storage.ErrAssetUnavailable.
func (s *GalleryService) GetImage(ctx context.Context, code string, mode models.ViewingMode, stem string) (*dto.ImageResponse, error) {
	const op = "service.GalleryService.GetImage"

	log := s.log.With(
		slog.String("op", op),
		slog.String("stem", stem),
		slog.String("mode", mode.String()),
	)

	loc, err := s.resolver.Resolve(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	img, err := s.indexer.Probe(ctx, loc, stem)
	if err != nil {
		log.Info("image not available", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	desc, err := s.pairer.Pair(ctx, loc, img, mode)
	if err != nil {
		log.Error("failed to pair image", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !desc.FullAssetExists {
		log.Info("full asset not produced yet", slog.String("full_asset", desc.FullAssetPath))
		return nil, fmt.Errorf("%s: %w", op, storage.ErrAssetUnavailable)
	}

	thumb, err := s.mapToThumbnailResponse(loc, desc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &dto.ImageResponse{
		Code:  loc.Code,
		Mode:  mode.String(),
		Image: thumb,
	}, nil
}

// mapToThumbnailResponse преобразует дескриптор в DTO с публичными адресами
func (s *GalleryService) mapToThumbnailResponse(loc models.GalleryLocation, desc models.ThumbnailDescriptor) (dto.ThumbnailResponse, error) {
	thumbSrc, err := s.media.URL(loc.Dir, desc.Image.Path)
	if err != nil {
		return dto.ThumbnailResponse{}, err
	}

	resp := dto.ThumbnailResponse{
		Stem:            desc.Image.Stem,
		ThumbnailSrc:    thumbSrc,
		Width:           desc.Image.Width,
		Height:          desc.Image.Height,
		DisplayWidth:    desc.DisplayWidth,
		DisplayHeight:   desc.DisplayHeight,
		FullAssetPath:   desc.FullAssetPath,
		FullAssetExists: desc.FullAssetExists,
	}

	if desc.FullAssetExists {
		if path.Clean(desc.FullAssetPath) == path.Clean(desc.Image.Path) {
			resp.FullAssetSrc = thumbSrc
		} else if resp.FullAssetSrc, err = s.media.URL(loc.Dir, desc.FullAssetPath); err != nil {
			return dto.ThumbnailResponse{}, err
		}
	}

	return resp, nil
}
