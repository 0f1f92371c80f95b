package services

import (
	"context"
	"fmt"
	"log/slog"
	"path"

	"photobooth_gallery/internal/domain/models"
	"photobooth_gallery/internal/lib/logger/sl"
	"photobooth_gallery/internal/metrics"
	filestorage "photobooth_gallery/internal/storage/filestorage"
)

type Layouter interface {
	Layout(asset models.ImageAsset, mode models.ViewingMode) (int, int, error)
}

type AssetService struct {
	log                *slog.Logger
	fileStorage        filestorage.FileStorage
	layout             Layouter
	animationExtension string
}

func NewAssetService(log *slog.Logger, fileStorage filestorage.FileStorage, layout Layouter, animationExtension string) *AssetService {
	return &AssetService{
		log:                log,
		fileStorage:        fileStorage,
		layout:             layout,
		animationExtension: animationExtension,
	}
}

// Pair связывает снимок с полноразмерным файлом для режима просмотра.
//
// В Continuous полный просмотр это сам снимок. В Animated это файл с тем же
// stem и расширением анимации; фотобудка выгружает его асинхронно, поэтому
// наличие проверяется на каждый запрос. Размеры миниатюры заполняются
// всегда, даже если анимации еще нет.
func (s *AssetService) Pair(ctx context.Context, loc models.GalleryLocation, asset models.ImageAsset, mode models.ViewingMode) (models.ThumbnailDescriptor, error) {
	const op = "service.AssetService.Pair"

	w, h, err := s.layout.Layout(asset, mode)
	if err != nil {
		return models.ThumbnailDescriptor{}, fmt.Errorf("%s: %w", op, err)
	}

	desc := models.ThumbnailDescriptor{
		Image:         asset,
		Mode:          mode,
		DisplayWidth:  w,
		DisplayHeight: h,
	}

	switch mode {
	case models.ModeAnimated:
		desc.FullAssetPath = s.CompanionPath(asset)
		desc.FullAssetExists = s.exists(ctx, loc, desc.FullAssetPath)
	default:
		desc.FullAssetPath = asset.Path
		desc.FullAssetExists = true
	}

	return desc, nil
}

// CompanionPath возвращает путь анимации для снимка относительно каталога сессии
func (s *AssetService) CompanionPath(asset models.ImageAsset) string {
	return asset.Stem + s.animationExtension
}

func (s *AssetService) exists(ctx context.Context, loc models.GalleryLocation, name string) bool {
	ok, err := s.fileStorage.Exists(ctx, path.Join(loc.Dir, name))
	if err != nil {
		s.log.Warn("failed to check companion asset",
			slog.String("dir", loc.Dir),
			slog.String("file", name),
			sl.Err(err),
		)

		ok = false
	}

	if !ok {
		metrics.CompanionMissing.Inc()
	}

	return ok
}
