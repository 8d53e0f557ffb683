// Package config loads pagelet settings with Viper from defaults, an
// optional YAML file, PAGELET_ environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	pageerrors "github.com/alexisbeaulieu97/pagelet/pkg/errors"
)

// EnvPrefix namespaces environment overrides, e.g. PAGELET_LOG_LEVEL.
const EnvPrefix = "PAGELET"

// Config is the resolved runtime configuration.
type Config struct {
	Log  LogConfig  `mapstructure:"log"`
	Page PageConfig `mapstructure:"page"`
	UI   UIConfig   `mapstructure:"ui"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=trace debug info warn error disabled"`
	// File receives log output. Empty discards logs while the terminal UI runs.
	File  string `mapstructure:"file"`
	Human bool   `mapstructure:"human"`
}

type PageConfig struct {
	// Path to a page document. Empty selects the embedded page.
	Path     string        `mapstructure:"path"`
	Watch    bool          `mapstructure:"watch"`
	Debounce time.Duration `mapstructure:"debounce"`
}

type UIConfig struct {
	AltScreen bool `mapstructure:"alt_screen"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// New returns a Viper instance carrying defaults and environment bindings.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.human", true)
	v.SetDefault("page.path", "")
	v.SetDefault("page.watch", false)
	v.SetDefault("page.debounce", 100*time.Millisecond)
	v.SetDefault("ui.alt_screen", true)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// BindFlag ties a config key to a command-line flag when the flag exists.
func BindFlag(v *viper.Viper, key string, flag *pflag.Flag) error {
	if flag == nil {
		return nil
	}
	if err := v.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("bind flag %s: %w", flag.Name, err)
	}
	return nil
}

// Load reads the optional config file into v and returns the validated Config.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, pageerrors.NewParseError(path, 0, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, pageerrors.NewParseError(configName(path), 0, err)
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints that Viper cannot express.
func Validate(cfg *Config) error {
	if cfg == nil {
		return pageerrors.NewValidationError("config", "configuration is nil", nil)
	}
	if err := validatorInstance().Struct(cfg); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) && len(ves) > 0 {
			field := strings.ToLower(ves[0].Namespace())
			return pageerrors.NewValidationError(field, fmt.Sprintf("%q failed validation for tag '%s'", ves[0].Value(), ves[0].Tag()), err)
		}
		return pageerrors.NewValidationError("config", err.Error(), err)
	}
	if cfg.Page.Debounce < 0 {
		return pageerrors.NewValidationError("page.debounce", "must not be negative", nil)
	}
	return nil
}

func configName(path string) string {
	if path == "" {
		return "<config>"
	}
	return path
}
