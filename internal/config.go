package internal

import (
	"fmt"
	"time"

	"tauthy/auth"

	"github.com/Netflix/go-env"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL,default=INFO"`
	Host     string `env:"HOST,default=localhost"`
	Port     int    `env:"PORT,default=8080" validate:"min=1,max=65535"`
	// DebugPort serves /debug/stats and /debug/recent when set
	DebugPort int `env:"DEBUG_PORT,default=0" validate:"min=0,max=65535"`

	StorageDriver string `env:"STORAGE_DRIVER,default=badger" validate:"oneof=badger sqlite"`
	StoragePath   string `env:"STORAGE_PATH,required=true" validate:"required"`
	BlugeFilepath string `env:"BLUGE_FILEPATH,required=true" validate:"required"`

	ModelPath          string `env:"MODEL_PATH,required=true" validate:"required"`
	ThaiDictionaryPath string `env:"THAI_DICTIONARY_PATH"`
	MinTokens          int    `env:"MIN_TOKENS,default=5" validate:"min=1"`

	JWTSecret         string        `env:"JWT_SECRET,required=true" validate:"min=32"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h" validate:"gt=0"`

	OllamaURL       string        `env:"OLLAMA_URL" validate:"omitempty,url"`
	OllamaModel     string        `env:"OLLAMA_MODEL,default=llama3"`
	OllamaTimeout   time.Duration `env:"OLLAMA_TIMEOUT,default=60s" validate:"gt=0"`
	OpinionOnSubmit bool          `env:"OPINION_ON_SUBMIT,default=false"`

	HistoryLimit   int           `env:"HISTORY_LIMIT,default=100" validate:"min=1"`
	SearchPageSize int           `env:"SEARCH_PAGE_SIZE,default=20" validate:"min=1,max=200"`
	MetricInterval time.Duration `env:"METRIC_INTERVAL,default=30s" validate:"gt=0"`
}

// LoadConfig reads the server configuration from the environment and validates it.
func LoadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if err := auth.ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// OpinionEnabled is true when an Ollama endpoint is configured.
func (c Config) OpinionEnabled() bool { return c.OllamaURL != "" }

func (c Config) Address() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }
