package app

import (
	"io/fs"
	"log/slog"

	httpapp "photobooth_gallery/internal/app/http"
	"photobooth_gallery/internal/config"
	"photobooth_gallery/internal/middleware"
	assets "photobooth_gallery/internal/services/asset_service"
	gallery "photobooth_gallery/internal/services/gallery_service"
	index "photobooth_gallery/internal/services/index_service"
	layout "photobooth_gallery/internal/services/layout_service"
	session "photobooth_gallery/internal/services/session_service"
	filestorage "photobooth_gallery/internal/storage/filestorage"
	httprouters "photobooth_gallery/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server
	Storage    *filestorage.LocalFileStorage
}

// New собирает приложение поверх каталога галерей cfg.Gallery.RootDir
func New(log *slog.Logger, cfg *config.Config) *App {
	storage, err := filestorage.NewLocalFileStorage(cfg.Gallery.RootDir, cfg.Gallery.MediaURL)
	if err != nil {
		panic(err)
	}

	log.Info("gallery root opened",
		slog.String("root_dir", storage.GetBaseDir()),
		slog.String("media_url", storage.BaseURL()),
	)

	return &App{
		HTTPServer: newHTTPServer(log, cfg, storage),
		Storage:    storage,
	}
}

// NewWithFS собирает то же приложение поверх произвольной fs.FS
func NewWithFS(log *slog.Logger, cfg *config.Config, fsys fs.FS) *App {
	storage := filestorage.NewFSStorage(fsys, cfg.Gallery.MediaURL)

	return &App{
		HTTPServer: newHTTPServer(log, cfg, storage),
		Storage:    storage,
	}
}

func newHTTPServer(log *slog.Logger, cfg *config.Config, storage *filestorage.LocalFileStorage) *httpapp.Server {
	sessionService := session.NewSessionService(log, storage, cfg.Gallery.CaseInsensitiveCodes)
	indexService := index.NewIndexService(log, storage, cfg.Gallery.StillExtension)
	layoutService := layout.NewLayoutService(cfg.Gallery.ThumbWidth)
	assetService := assets.NewAssetService(log, storage, layoutService, cfg.Gallery.AnimationExtension)

	galleryService := gallery.NewGalleryService(
		log,
		sessionService,
		indexService,
		assetService,
		storage,
		cfg.Gallery.GalleryURL,
	)

	routers := httprouters.NewRouter(log, galleryService)
	limiter := middleware.NewAttemptStore(cfg.RateLimit.Attempts, cfg.RateLimit.Window)

	var media fs.FS
	if cfg.Gallery.ServeMedia {
		media = storage.FS()
	}

	server := httpapp.New(log, cfg.HTTP, routers, limiter, cfg.Gallery.MediaURL, media)
	server.BuildRouters()

	return server
}
