package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"photobooth_gallery/internal/storage"
)

// FileStorage интерфейс для чтения каталога галерей.
// Все пути задаются относительно корня и используют "/" как разделитель.
type FileStorage interface {
	ReadDir(ctx context.Context, dir string) ([]fs.DirEntry, error)
	Open(ctx context.Context, filePath string) (fs.File, error)
	Stat(ctx context.Context, filePath string) (fs.FileInfo, error)
	Exists(ctx context.Context, filePath string) (bool, error)
	URL(elem ...string) (string, error)
	GetFullPath(relativePath string) string
	BaseURL() string
	GetBaseDir() string
}

// LocalFileStorage реализация поверх fs.FS, по умолчанию поверх os.Root,
// из которого нельзя выйти ни через "..", ни через симлинки
type LocalFileStorage struct {
	baseDir string // Корень галерей на диске (например: "/srv/photobooth")
	baseURL string // Базовый URL, по которому веб-сервер раздает файлы (например: "/media")
	fsys    fs.FS
	closer  io.Closer
}

func NewLocalFileStorage(baseDir, baseURL string) (*LocalFileStorage, error) {
	const op = "storage.filestorage.NewLocalFileStorage"

	root, err := os.OpenRoot(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &LocalFileStorage{
		baseDir: baseDir,
		baseURL: baseURL,
		fsys:    root.FS(),
		closer:  root,
	}, nil
}

// NewFSStorage оборачивает произвольную fs.FS (например fstest.MapFS)
func NewFSStorage(fsys fs.FS, baseURL string) *LocalFileStorage {
	return &LocalFileStorage{
		baseURL: baseURL,
		fsys:    fsys,
	}
}

func (s *LocalFileStorage) ReadDir(ctx context.Context, dir string) ([]fs.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !fs.ValidPath(dir) {
		return nil, storage.ErrInvalidFileName
	}

	return fs.ReadDir(s.fsys, dir)
}

func (s *LocalFileStorage) Open(ctx context.Context, filePath string) (fs.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !fs.ValidPath(filePath) {
		return nil, storage.ErrInvalidFileName
	}

	return s.fsys.Open(filePath)
}

func (s *LocalFileStorage) Stat(ctx context.Context, filePath string) (fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !fs.ValidPath(filePath) {
		return nil, storage.ErrInvalidFileName
	}

	return fs.Stat(s.fsys, filePath)
}

// Exists сообщает, лежит ли по пути обычный файл прямо сейчас
func (s *LocalFileStorage) Exists(ctx context.Context, filePath string) (bool, error) {
	info, err := s.Stat(ctx, filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, err
	}

	return info.Mode().IsRegular(), nil
}

// URL собирает публичный адрес файла из сегментов пути, экранируя каждый.
// Имена файлов берутся как есть: "100%.jpg" превращается в "100%25.jpg".
func (s *LocalFileStorage) URL(elem ...string) (string, error) {
	escaped := make([]string, 0, len(elem))
	for _, e := range elem {
		if !fs.ValidPath(e) {
			return "", storage.ErrInvalidFileName
		}

		for _, segment := range strings.Split(e, "/") {
			escaped = append(escaped, url.PathEscape(segment))
		}
	}

	return url.JoinPath(s.baseURL, escaped...)
}

// GetFullPath возвращает полный путь к файлу на диске
func (s *LocalFileStorage) GetFullPath(relativePath string) string {
	return filepath.Join(s.baseDir, filepath.FromSlash(path.Clean(relativePath)))
}

// BaseURL возвращает базовый URL для доступа к файлам
func (s *LocalFileStorage) BaseURL() string {
	return s.baseURL
}

func (s *LocalFileStorage) GetBaseDir() string {
	return s.baseDir
}

// FS отдает корень как fs.FS для раздачи файлов статикой
func (s *LocalFileStorage) FS() fs.FS {
	return s.fsys
}

func (s *LocalFileStorage) Close() error {
	if s.closer == nil {
		return nil
	}

	return s.closer.Close()
}
