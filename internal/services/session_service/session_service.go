package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"photobooth_gallery/internal/domain/models"
	"photobooth_gallery/internal/lib/logger/sl"
	"photobooth_gallery/internal/metrics"
	"photobooth_gallery/internal/storage"
	filestorage "photobooth_gallery/internal/storage/filestorage"
)

const MaxCodeLength = 64

type SessionService struct {
	log             *slog.Logger
	fileStorage     filestorage.FileStorage
	caseInsensitive bool
}

func NewSessionService(log *slog.Logger, fileStorage filestorage.FileStorage, caseInsensitive bool) *SessionService {
	return &SessionService{
		log:             log,
		fileStorage:     fileStorage,
		caseInsensitive: caseInsensitive,
	}
}

// Resolve сопоставляет код сессии с каталогом внутри корня галерей.
// Код никогда не используется как путь напрямую: он только сравнивается
// с именами уже существующих каталогов.
func (s *SessionService) Resolve(ctx context.Context, code string) (models.GalleryLocation, error) {
	const op = "service.SessionService.Resolve"

	log := s.log.With(
		slog.String("op", op),
	)

	code, err := NormalizeCode(code)
	if err != nil {
		metrics.SessionResolutions.WithLabelValues(metrics.ResultInvalid).Inc()
		log.Warn("rejected session code", sl.Err(err))

		return models.GalleryLocation{}, fmt.Errorf("%s: %w", op, err)
	}

	log = log.With(slog.String("code", code))

	entries, err := s.fileStorage.ReadDir(ctx, ".")
	if err != nil {
		log.Error("failed to list gallery root", sl.Err(err))

		return models.GalleryLocation{}, fmt.Errorf("%s: %w: %w", op, storage.ErrLocationUnreadable, err)
	}

	var folded []string

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		if entry.Name() == code {
			metrics.SessionResolutions.WithLabelValues(metrics.ResultOK).Inc()
			log.Debug("session resolved")

			return models.GalleryLocation{Code: code, Dir: entry.Name()}, nil
		}

		if s.caseInsensitive && strings.EqualFold(entry.Name(), code) {
			folded = append(folded, entry.Name())
		}
	}

	// Посетители часто вводят код не в том регистре. Принимаем такое
	// совпадение, только если оно однозначное.
	if len(folded) == 1 {
		metrics.SessionResolutions.WithLabelValues(metrics.ResultOK).Inc()
		log.Debug("session resolved ignoring case", slog.String("dir", folded[0]))

		return models.GalleryLocation{Code: code, Dir: folded[0]}, nil
	}

	metrics.SessionResolutions.WithLabelValues(metrics.ResultNotFound).Inc()
	log.Info("session not found", slog.Int("candidates", len(folded)))

	return models.GalleryLocation{}, fmt.Errorf("%s: %w", op, storage.ErrSessionNotFound)
}

// NormalizeCode обрезает пробелы и отклоняет все, что похоже на путь,
// схему или хост. Вызывается до любого обращения к файловой системе.
func NormalizeCode(code string) (string, error) {
	code = strings.TrimSpace(code)

	switch {
	case code == "":
		return "", fmt.Errorf("%w: empty", storage.ErrInvalidSessionCode)
	case len(code) > MaxCodeLength:
		return "", fmt.Errorf("%w: longer than %d bytes", storage.ErrInvalidSessionCode, MaxCodeLength)
	case strings.Contains(code, ".."):
		return "", fmt.Errorf("%w: path traversal", storage.ErrInvalidSessionCode)
	case strings.HasPrefix(code, "."):
		return "", fmt.Errorf("%w: leading dot", storage.ErrInvalidSessionCode)
	}

	for i := 0; i < len(code); i++ {
		if !isCodeChar(code[i]) {
			return "", fmt.Errorf("%w: unexpected character %q", storage.ErrInvalidSessionCode, code[i])
		}
	}

	return code, nil
}

func isCodeChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '-', c == '.':
		return true
	}

	return false
}
