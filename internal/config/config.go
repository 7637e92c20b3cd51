package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
)

const Version = "v1.0.0"

const (
	configName = ".uhuru"
	envPrefix  = "UHURU"
)

var Languages = []string{"English", "Spanish", "French", "German", "Japanese"}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type Config struct {
	NoticeDuration time.Duration `mapstructure:"notice_duration"`
	ConfirmPhrase  string        `mapstructure:"confirm_phrase"`
	DarkMode       bool          `mapstructure:"dark_mode"`
	Language       string        `mapstructure:"language"`
	UserName       string        `mapstructure:"user_name"`
	UserEmail      string        `mapstructure:"user_email"`
	Log            LogConfig     `mapstructure:"log"`
}

func (c *Config) Validate() error {
	langs := make([]interface{}, len(Languages))
	for i, l := range Languages {
		langs[i] = l
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.NoticeDuration, validation.Required, validation.Min(100*time.Millisecond)),
		validation.Field(&c.ConfirmPhrase, validation.Required),
		validation.Field(&c.Language, validation.In(langs...)),
	); err != nil {
		return err
	}
	return validation.ValidateStruct(&c.Log,
		validation.Field(&c.Log.Level, validation.In("debug", "info", "warn", "error")),
	)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("notice_duration", "3s")
	v.SetDefault("confirm_phrase", "DELETE")
	v.SetDefault("dark_mode", true)
	v.SetDefault("language", "English")
	v.SetDefault("user_name", "Demo User")
	v.SetDefault("user_email", "demo@uhuru.ai")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", defaultLogFile())
}

func defaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "uhuru.log")
	}
	return filepath.Join(home, ".uhuru", "uhuru.log")
}

// LoadConfig reads ~/.uhuru.yaml, or path when it is not empty, on top of the
// defaults. A missing file is not an error. UHURU_* environment variables
// override file values.
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(configName)
		viper.SetConfigType("yaml")
	}

	setDefaults(viper.GetViper())
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !(path != "" && errors.Is(err, fs.ErrNotExist)) {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Default returns the built-in configuration without reading any file.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	_ = v.Unmarshal(&config)
	return &config
}

// Write stores the current settings at path, or ~/.uhuru.yaml.
func Write(path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, configName+".yaml")
	}
	return viper.WriteConfigAs(path)
}

// Path reports the file the configuration was read from, if any.
func Path() string {
	return viper.ConfigFileUsed()
}

func Set(key string, value interface{}) {
	viper.Set(key, value)
}
