package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"photobooth_gallery/internal/domain/models"
	"photobooth_gallery/internal/storage"
	httprouters "photobooth_gallery/internal/transport/http"
	"photobooth_gallery/internal/transport/http/dto"
	"photobooth_gallery/internal/transport/http/dto/response"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGalleryService struct {
	mock.Mock
}

func (m *MockGalleryService) ResolveSession(ctx context.Context, code string) (*dto.SessionResponse, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SessionResponse), args.Error(1)
}

func (m *MockGalleryService) GetGallery(ctx context.Context, code string, mode *models.ViewingMode) (*dto.GalleryResponse, error) {
	args := m.Called(ctx, code, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GalleryResponse), args.Error(1)
}

func (m *MockGalleryService) GetImage(ctx context.Context, code string, mode models.ViewingMode, stem string) (*dto.ImageResponse, error) {
	args := m.Called(ctx, code, mode, stem)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ImageResponse), args.Error(1)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestEcho(service *MockGalleryService) *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	r := httprouters.NewRouter(slog.Default(), service)

	e.GET("/health", r.Health)
	e.GET("/session", r.EnterCode)
	e.GET("/api/v1/sessions/:code", r.GetSession)
	e.GET("/api/v1/galleries/:code", r.GetGallery)
	e.GET("/api/v1/galleries/:code/:mode", r.GetGallery)
	e.GET("/api/v1/galleries/:code/:mode/images/:stem", r.GetImage)

	return e
}

func do(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestRouters_EnterCode(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		mockSetup  func(m *MockGalleryService)
		wantStatus int
		wantError  string
		wantLoc    string
		wantEmpty  bool
	}{
		{
			name:   "redirects to resolved dir",
			target: "/session?photo_code=booth1",
			mockSetup: func(m *MockGalleryService) {
				m.On("ResolveSession", mock.Anything, "booth1").Return(&dto.SessionResponse{
					Code:       "booth1",
					Dir:        "BOOTH1",
					Mode:       "continuous",
					GalleryURL: "/api/v1/galleries/BOOTH1",
				}, nil)
			},
			wantStatus: http.StatusFound,
			wantLoc:    "/api/v1/galleries/BOOTH1",
		},
		{
			name:       "missing code",
			target:     "/session",
			mockSetup:  func(m *MockGalleryService) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid_request",
		},
		{
			name:   "invalid code",
			target: "/session?photo_code=..%2Fetc",
			mockSetup: func(m *MockGalleryService) {
				m.On("ResolveSession", mock.Anything, "../etc").
					Return(nil, fmt.Errorf("wrapped: %w", storage.ErrInvalidSessionCode))
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid_session_code",
		},
		{
			name:   "unknown code",
			target: "/session?photo_code=nope",
			mockSetup: func(m *MockGalleryService) {
				m.On("ResolveSession", mock.Anything, "nope").
					Return(nil, fmt.Errorf("wrapped: %w", storage.ErrSessionNotFound))
			},
			wantStatus: http.StatusNotFound,
			wantError:  "session_not_found",
		},
		{
			name:   "client went away while reading root",
			target: "/session?photo_code=booth1",
			mockSetup: func(m *MockGalleryService) {
				m.On("ResolveSession", mock.Anything, "booth1").
					Return(nil, fmt.Errorf("wrapped: %w: %w", storage.ErrLocationUnreadable, context.Canceled))
			},
			wantStatus: http.StatusOK,
			wantEmpty:  true,
		},
		{
			name:   "unreadable root",
			target: "/session?photo_code=booth1",
			mockSetup: func(m *MockGalleryService) {
				m.On("ResolveSession", mock.Anything, "booth1").
					Return(nil, fmt.Errorf("wrapped: %w", storage.ErrLocationUnreadable))
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "gallery_unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockGalleryService)
			tt.mockSetup(service)

			rec := do(newTestEcho(service), tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantLoc != "" {
				assert.Equal(t, tt.wantLoc, rec.Header().Get(echo.HeaderLocation))
			} else {
				assert.Empty(t, rec.Header().Get(echo.HeaderLocation))
			}
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, rec).Error)
			}
			if tt.wantEmpty {
				assert.Empty(t, rec.Body.String())
			}

			service.AssertExpectations(t)
		})
	}
}

func TestRouters_GetSession(t *testing.T) {
	service := new(MockGalleryService)
	service.On("ResolveSession", mock.Anything, "booth1_A").Return(&dto.SessionResponse{
		Code:       "booth1_A",
		Dir:        "booth1_A",
		Mode:       "animated",
		GalleryURL: "/api/v1/galleries/booth1_A",
	}, nil)

	rec := do(newTestEcho(service), "/api/v1/sessions/booth1_A")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string              `json:"status"`
		Data   dto.SessionResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, "animated", body.Data.Mode)
	assert.Equal(t, "/api/v1/galleries/booth1_A", body.Data.GalleryURL)
}

func TestRouters_GetGallery(t *testing.T) {
	animated := models.ModeAnimated

	tests := []struct {
		name       string
		target     string
		mockSetup  func(m *MockGalleryService)
		wantStatus int
		wantError  string
	}{
		{
			name:   "default mode",
			target: "/api/v1/galleries/booth1",
			mockSetup: func(m *MockGalleryService) {
				m.On("GetGallery", mock.Anything, "booth1", (*models.ViewingMode)(nil)).
					Return(&dto.GalleryResponse{Code: "booth1", Mode: "continuous", Images: []dto.ThumbnailResponse{}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "explicit mode",
			target: "/api/v1/galleries/booth1/animated",
			mockSetup: func(m *MockGalleryService) {
				m.On("GetGallery", mock.Anything, "booth1", &animated).
					Return(&dto.GalleryResponse{Code: "booth1", Mode: "animated", Images: []dto.ThumbnailResponse{}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown mode",
			target:     "/api/v1/galleries/booth1/sepia",
			mockSetup:  func(m *MockGalleryService) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid_request",
		},
		{
			name:   "session not found",
			target: "/api/v1/galleries/missing",
			mockSetup: func(m *MockGalleryService) {
				m.On("GetGallery", mock.Anything, "missing", (*models.ViewingMode)(nil)).
					Return(nil, storage.ErrSessionNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantError:  "session_not_found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockGalleryService)
			tt.mockSetup(service)

			rec := do(newTestEcho(service), tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, rec).Error)
			}

			service.AssertExpectations(t)
		})
	}
}

func TestRouters_GetImage(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		mockSetup  func(m *MockGalleryService)
		wantStatus int
		wantError  string
	}{
		{
			name:   "ok",
			target: "/api/v1/galleries/booth1/continuous/images/photo1",
			mockSetup: func(m *MockGalleryService) {
				m.On("GetImage", mock.Anything, "booth1", models.ModeContinuous, "photo1").
					Return(&dto.ImageResponse{Code: "booth1", Mode: "continuous"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "animation not ready",
			target: "/api/v1/galleries/booth1/animated/images/photo1",
			mockSetup: func(m *MockGalleryService) {
				m.On("GetImage", mock.Anything, "booth1", models.ModeAnimated, "photo1").
					Return(nil, fmt.Errorf("wrapped: %w", storage.ErrAssetUnavailable))
			},
			wantStatus: http.StatusNotFound,
			wantError:  "asset_unavailable",
		},
		{
			name:   "missing image",
			target: "/api/v1/galleries/booth1/continuous/images/nope",
			mockSetup: func(m *MockGalleryService) {
				m.On("GetImage", mock.Anything, "booth1", models.ModeContinuous, "nope").
					Return(nil, fmt.Errorf("wrapped: %w", storage.ErrImageNotFound))
			},
			wantStatus: http.StatusNotFound,
			wantError:  "image_not_found",
		},
		{
			name:       "unknown mode",
			target:     "/api/v1/galleries/booth1/sepia/images/photo1",
			mockSetup:  func(m *MockGalleryService) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid_request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockGalleryService)
			tt.mockSetup(service)

			rec := do(newTestEcho(service), tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, rec).Error)
			}

			service.AssertExpectations(t)
		})
	}
}

func TestRouters_Health(t *testing.T) {
	rec := do(newTestEcho(new(MockGalleryService)), "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
