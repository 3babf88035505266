package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config selects and locates the storage backend.
type Config interface {
	BasePath() string
	Backend() string
	SQLitePath() string
	Redis() RedisConfig
}

// RedisConfig addresses a redis server.
type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
	Prefix   string `json:"prefix"`
}

// FileConfig is the configuration read from .nomilog.yaml and NOMILOG_* env.
type FileConfig struct {
	Path        string      `json:"path"`
	StoreKind   string      `json:"backend"`
	SQLite      string      `json:"sqlitePath"`
	RedisConn   RedisConfig `json:"redis"`
	LogLevel    string      `json:"logLevel"`
	LogFormat   string      `json:"logFormat"`
	AdFrequency int         `json:"adFrequency"`
	// File is the config file in use, empty when none was found.
	File string `json:"file,omitempty"`
}

// LoadConfig reads .nomilog.yaml from $NOMILOG_CONFIG_PATH, the working
// directory or the home directory, overlaid by NOMILOG_* environment variables.
func LoadConfig() (*FileConfig, error) {
	v := viper.New()
	v.SetDefault("path", "~/.nomilog")
	v.SetDefault("backend", BackendDisk)
	v.SetDefault("sqlite.path", "")
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "nomilog:")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("ads.frequency", 3)

	v.SetConfigName(".nomilog") // .yaml is implicit
	v.SetEnvPrefix("NOMILOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("NOMILOG_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	base, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	sqlitePath := v.GetString("sqlite.path")
	if sqlitePath == "" {
		sqlitePath = filepath.Join(base, "nomilog.db")
	}
	if sqlitePath, err = homedir.Expand(sqlitePath); err != nil {
		return nil, fmt.Errorf("store: expand sqlite path: %w", err)
	}

	return &FileConfig{
		Path:      base,
		StoreKind: v.GetString("backend"),
		SQLite:    sqlitePath,
		RedisConn: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			Prefix:   v.GetString("redis.prefix"),
		},
		LogLevel:    v.GetString("log.level"),
		LogFormat:   v.GetString("log.format"),
		AdFrequency: v.GetInt("ads.frequency"),
		File:        v.ConfigFileUsed(),
	}, nil
}

func (f *FileConfig) BasePath() string {
	return f.Path
}

func (f *FileConfig) Backend() string {
	return f.StoreKind
}

func (f *FileConfig) SQLitePath() string {
	return f.SQLite
}

func (f *FileConfig) Redis() RedisConfig {
	return f.RedisConn
}
