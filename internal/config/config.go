package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	EnvPrefix      = "PASSGEN"
	DefaultEnvFile = ".env"
	MaxSaltBytes   = 64
)

// Config holds the settings read from the environment and the dotenv file.
type Config struct {
	Env           string
	LogLevel      zapcore.Level
	DefaultPreset string
	SaltBytes     int

	// EnvFile is the dotenv file that was loaded, if any.
	EnvFile string
}

// Development reports whether the tool runs with development logging.
func (c Config) Development() bool { return c.Env == "development" }

// Load reads configuration from the environment after applying envFile.
// A missing DefaultEnvFile is ignored; any other missing file is an error.
func Load(envFile string) (Config, error) {
	loaded, err := loadEnvFile(envFile)
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("env", "production")
	v.SetDefault("log_level", "warn")
	v.SetDefault("default_preset", "strong")
	v.SetDefault("salt_bytes", 8)

	level, err := zapcore.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return Config{}, errors.Wrapf(err, "%s_LOG_LEVEL", EnvPrefix)
	}

	cfg := Config{
		Env:           v.GetString("env"),
		LogLevel:      level,
		DefaultPreset: v.GetString("default_preset"),
		SaltBytes:     v.GetInt("salt_bytes"),
		EnvFile:       loaded,
	}

	if cfg.SaltBytes < 1 || cfg.SaltBytes > MaxSaltBytes {
		return Config{}, errors.Newf("%s_SALT_BYTES must be between 1 and %d, got %d", EnvPrefix, MaxSaltBytes, cfg.SaltBytes)
	}

	return cfg, nil
}

func loadEnvFile(path string) (string, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}

	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", errors.Wrapf(err, "env file %s", path)
	}

	if err := godotenv.Load(path); err != nil {
		return "", errors.Wrapf(err, "loading env file %s", path)
	}
	return path, nil
}
