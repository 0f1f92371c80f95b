package httpapp

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"path"
	"strings"
	"time"

	"photobooth_gallery/internal/config"
	"photobooth_gallery/internal/lib/logger/sl"
	appmiddleware "photobooth_gallery/internal/middleware"
	httprouters "photobooth_gallery/internal/transport/http"
	"photobooth_gallery/internal/transport/http/dto/response"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

var errClientUnidentified = errors.New("client address unavailable")

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type Server struct {
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	limiter middleware.RateLimiterStore
	cfg     config.HTTPConfig

	mediaURL string
	media    fs.FS // nil, если файлы раздает внешний веб-сервер
}

func New(
	log *slog.Logger,
	cfg config.HTTPConfig,
	routers *httprouters.Routers,
	limiter middleware.RateLimiterStore,
	mediaURL string,
	media fs.FS,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	// адрес клиента нужен лимитеру попыток, заголовкам верим только за прокси
	if cfg.TrustProxy {
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	} else {
		e.IPExtractor = echo.ExtractIPDirect()
	}

	validate := validator.New()
	e.Validator = &CustomValidator{validator: validate}

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodHead},
	}))

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogRemoteIP:  true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			)

			return nil
		},
	}))

	e.Use(appmiddleware.PrometheusMetrics)

	return &Server{
		log:      log,
		e:        e,
		routers:  routers,
		limiter:  limiter,
		cfg:      cfg,
		mediaURL: mediaURL,
		media:    media,
	}
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"), slog.String("addr", s.addr()))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(s.addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	optCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.log.Info("stopping", slog.String("op", op))

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

// ServeHTTP позволяет гонять сервер через httptest без сети
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.e.ServeHTTP(w, r)
}

func (s *Server) addr() string {
	return net.JoinHostPort(s.cfg.Host, s.cfg.Port)
}

// rateLimit ограничивает перебор кодов сессий с одного адреса
func (s *Server) rateLimit() echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: s.limiter,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			ip := c.RealIP()
			if ip == "" {
				return "", errClientUnidentified
			}

			return ip, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			s.log.Warn("rate limiter rejected request", sl.Err(err))
			return c.JSON(http.StatusBadRequest, response.ErrClientUnidentified)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			s.log.Warn("too many attempts", slog.String("remote ip", identifier))
			return c.JSON(http.StatusTooManyRequests, response.ErrTooManyAttempts)
		},
	})
}

func (s *Server) BuildRouters() {
	s.e.GET("/health", s.routers.Health)
	s.e.GET("/metrics", echoprometheus.NewHandler())

	swagger := s.e.Group("/swag")
	{
		swagger.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	limit := s.rateLimit()

	s.e.GET("/", s.routers.EnterCode, limit)
	s.e.GET("/session", s.routers.EnterCode, limit)

	api := s.e.Group("/api/v1", limit)
	{
		api.GET("/sessions/:code", s.routers.GetSession)

		galleries := api.Group("/galleries")
		{
			galleries.GET("/:code", s.routers.GetGallery)
			galleries.GET("/:code/:mode", s.routers.GetGallery)
			galleries.GET("/:code/:mode/images/:stem", s.routers.GetImage)
		}
	}

	if s.media != nil {
		s.e.GET(strings.TrimSuffix(s.mediaURL, "/")+"/*", s.serveMedia)
	}
}

// serveMedia отдает файл из корня галерей. Имя берется из уже
// раскодированного URL.Path, чтобы "100%25.jpg" открывал "100%.jpg".
// Списки каталогов не отдаются.
func (s *Server) serveMedia(c echo.Context) error {
	name := strings.TrimPrefix(c.Request().URL.Path, strings.TrimSuffix(s.mediaURL, "/"))
	name = strings.TrimPrefix(path.Clean("/"+name), "/")

	if name == "" || !fs.ValidPath(name) {
		return echo.ErrNotFound
	}

	return c.FileFS(name, s.media)
}
