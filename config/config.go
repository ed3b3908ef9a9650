package config

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// Config defines the app configuration.
type Config struct {
	Server struct {
		Port int    `yaml:"port" env:"PORT" env-description:"API server port"`
		Env  string `yaml:"env" env:"APP_ENV" env-description:"Environment (development|staging|production)"`
	} `yaml:"server"`
	Log struct {
		Level string `yaml:"level" env:"LOG_LEVEL" env-description:"Minimum log level (debug|info|error|fatal|off)"`
	} `yaml:"log"`
	Limiter struct {
		RPS     float64 `yaml:"rps" env:"LIMITER_RPS" env-description:"Rate limiter maximum requests per second"`
		Burst   int     `yaml:"burst" env:"LIMITER_BURST" env-description:"Rate limiter maximum burst"`
		Enabled bool    `yaml:"enabled" env:"LIMITER_ENABLED" env-description:"Enable rate limiter"`
	} `yaml:"limiter"`
	Cors struct {
		TrustedOrigins []string `yaml:"trusted_origins" env:"CORS_TRUSTED_ORIGINS" env-separator:"," env-description:"Trusted CORS origins (comma separated)"`
	} `yaml:"cors"`
	Metrics struct {
		Enabled bool `yaml:"enabled" env:"METRICS_ENABLED" env-description:"Expose expvar metrics on /debug/vars"`
	} `yaml:"metrics"`
	BasicAuth struct {
		Username string `yaml:"username" env:"BASIC_AUTH_USERNAME" env-description:"Username for /debug/vars"`
		Password string `yaml:"password" env:"BASIC_AUTH_PASSWORD" env-description:"Password for /debug/vars"`
	} `yaml:"basic_auth"`
	OpenAPI struct {
		Validate bool `yaml:"validate" env:"OPENAPI_VALIDATE" env-description:"Validate requests against the OpenAPI document"`
	} `yaml:"openapi"`
}

// Default returns the configuration used when neither a file nor the
// environment sets a value.
func Default() Config {
	var cfg Config
	cfg.Server.Port = 8080
	cfg.Server.Env = "development"
	cfg.Log.Level = "info"
	cfg.Limiter.RPS = 4
	cfg.Limiter.Burst = 8
	cfg.Limiter.Enabled = true
	cfg.OpenAPI.Validate = true
	return cfg
}

// Decode builds the configuration from the defaults, the YAML file at path
// (skipped when path is empty) and finally the environment. Unknown keys in
// the file are an error.
func Decode(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := decodeYAML(b, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeYAML(b []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Usage returns a flag.Usage function that also lists the environment
// variables Decode reads.
func Usage(fs *flag.FlagSet) func() {
	cfg := Default()
	return cleanenv.FUsage(fs.Output(), &cfg, nil, fs.Usage)
}
