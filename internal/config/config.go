package config

import (
	"flag"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env       string          `yaml:"env" env:"ENV" env-default:"local" validate:"oneof=local dev prod"`
	HTTP      HTTPConfig      `yaml:"http"`
	Gallery   GalleryConfig   `yaml:"gallery"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

type HTTPConfig struct {
	Host            string        `yaml:"host" env:"HTTP_HOST"`
	Port            string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
	// TrustProxy включает разбор X-Forwarded-For; только за своим прокси
	TrustProxy bool `yaml:"trust_proxy" env:"HTTP_TRUST_PROXY" env-default:"false"`
}

// GalleryConfig описывает корень галерей и соглашения об именах файлов,
// которые использует фотобудка при выгрузке.
type GalleryConfig struct {
	RootDir              string `yaml:"root_dir" env:"GALLERY_ROOT_DIR" validate:"required"`
	MediaURL             string `yaml:"media_url" env-default:"/media"`
	GalleryURL           string `yaml:"gallery_url" env-default:"/api/v1/galleries"`
	StillExtension       string `yaml:"still_extension" env-default:".jpg" validate:"startswith=.,min=2"`
	AnimationExtension   string `yaml:"animation_extension" env-default:".gif" validate:"startswith=.,min=2"`
	ThumbWidth           int    `yaml:"thumb_width" env-default:"200" validate:"gt=0"`
	ServeMedia           bool   `yaml:"serve_media" env-default:"false"`
	CaseInsensitiveCodes bool   `yaml:"case_insensitive_codes" env-default:"true"`
}

// RateLimitConfig ограничивает число попыток ввода кода с одного IP.
type RateLimitConfig struct {
	Attempts int           `yaml:"attempts" env-default:"60" validate:"gte=0"`
	Window   time.Duration `yaml:"window" env-default:"1m"`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	cfg, err := LoadPath(configPath)
	if err != nil {
		panic(err.Error())
	}

	return cfg
}

func LoadPath(configPath string) (*Config, error) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, &Error{Reason: "config file does not exist: " + configPath}
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, &Error{Reason: "cannot read config: " + err.Error()}
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, &Error{Reason: "invalid config: " + err.Error()}
	}

	return &cfg, nil
}

type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
