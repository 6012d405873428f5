package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"      default:"4000"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"   default:"10"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"mountmix-api"`
		Timezone string `envconfig:"TIMEZONE" default:"UTC"`
		CORS     struct {
			AllowedHeaders []string `envconfig:"ALLOWED_HEADERS" default:"Accept,Authorization,Content-Type"`
			AllowedMethods []string `envconfig:"ALLOWED_METHODS" default:"GET,POST,PATCH,OPTIONS"`
			AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS"`
			MaxAgeSeconds  int      `envconfig:"MAX_AGE_SECONDS" default:"300"`
		} `envconfig:"CORS"`
	} `envconfig:"APP"`

	JWT struct {
		Secret      string `envconfig:"SECRET"`
		ExpireHours int    `envconfig:"EXPIRE_HOURS" default:"12"`
	} `envconfig:"JWT"`

	DB struct {
		SQLite struct {
			Path        string `envconfig:"PATH"         default:"data/app.db"`
			AutoMigrate bool   `envconfig:"AUTO_MIGRATE" default:"true"`
		} `envconfig:"SQLITE"`
	} `envconfig:"DB"`

	Seed struct {
		Admin struct {
			Name     string `envconfig:"NAME"     default:"Site Administrator"`
			Email    string `envconfig:"EMAIL"    default:"admin@mountainmixology.com"`
			Password string `envconfig:"PASSWORD" default:"changeme123"`
		} `envconfig:"ADMIN"`
	} `envconfig:"SEED"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

// DefaultAllowedOrigins are the local dev hosts of the client application.
// Configured origins are merged on top of these, never replacing them.
var DefaultAllowedOrigins = []string{
	"http://localhost:5173",
	"http://127.0.0.1:5173",
	"http://localhost:4173",
	"http://127.0.0.1:4173",
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}

// AllowedOrigins merges the configured origins with the built-in dev hosts.
func (c *Config) AllowedOrigins() []string {
	merged := append(append([]string{}, DefaultAllowedOrigins...), c.App.CORS.AllowedOrigins...)

	origins := make([]string, 0, len(merged))
	seen := map[string]bool{}

	for _, origin := range merged {
		if origin == "" || seen[origin] {
			continue
		}

		seen[origin] = true
		origins = append(origins, origin)
	}

	return origins
}
