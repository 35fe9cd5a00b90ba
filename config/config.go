package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"xpclaim/pkg/nullifier"
)

// EnvPrefix prefixes every environment override, e.g. XPCLAIM_MASTER_SECRET.
const EnvPrefix = "XPCLAIM"

type Config struct {
	// MasterSecret keys player secret derivation. Operator-only.
	MasterSecret string `mapstructure:"master_secret" json:"-"`
	HashScheme   string `mapstructure:"hash_scheme" json:"hash_scheme"`
	LogLevel     string `mapstructure:"log_level" json:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		HashScheme: nullifier.SchemeDoubleSHA256,
		LogLevel:   zerolog.LevelInfoValue,
	}
}

// Load reads configuration from path, if set, then applies environment
// overrides on top of the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	def := DefaultConfig()
	v.SetDefault("master_secret", def.MasterSecret)
	v.SetDefault("hash_scheme", def.HashScheme)
	v.SetDefault("log_level", def.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration can serve claims.
func (cfg *Config) Validate() error {
	var errs []error
	if len(cfg.MasterSecret) < nullifier.MinSecretLength {
		errs = append(errs, fmt.Errorf("invalid `master_secret`; expected: >= %d characters, given: %d", nullifier.MinSecretLength, len(cfg.MasterSecret)))
	}
	if _, err := nullifier.HasherByName(cfg.HashScheme); err != nil {
		errs = append(errs, fmt.Errorf("invalid `hash_scheme`: %w", err))
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("invalid `log_level`: %w", err))
	}
	return errors.Join(errs...)
}

// Hasher resolves the configured hash scheme.
func (cfg *Config) Hasher() (nullifier.Hasher, error) {
	return nullifier.HasherByName(cfg.HashScheme)
}

// Level resolves the configured log level.
func (cfg *Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(cfg.LogLevel)
}
