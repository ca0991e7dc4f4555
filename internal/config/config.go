// Package config loads and validates the application configuration.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Database  DatabaseConfig  `mapstructure:"database"`
	Schedule  ScheduleConfig  `mapstructure:"schedule"`
	Webhook   WebhookConfig   `mapstructure:"webhook"`
	Reports   ReportsConfig   `mapstructure:"reports"`
	Wordbooks WordbooksConfig `mapstructure:"wordbooks"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

// ScheduleConfig holds schedule resolution and scoring settings. Timezone
// names the academy's civil calendar; every date is interpreted in it.
type ScheduleConfig struct {
	Timezone          string `mapstructure:"timezone"`
	FallbackWordCount int    `mapstructure:"fallback_word_count" validate:"gt=0"`
	PassingScore      int    `mapstructure:"passing_score" validate:"gte=0,lte=100"`
	PassReward        int    `mapstructure:"pass_reward" validate:"gte=0"`
}

// Location resolves the configured timezone name.
func (c ScheduleConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("time.LoadLocation(%s) > %w", c.Timezone, err)
	}
	return loc, nil
}

type WebhookConfig struct {
	URL           string `mapstructure:"url" validate:"omitempty,url"`
	RetryAttempts uint   `mapstructure:"retry_attempts"`
}

type ReportsConfig struct {
	OutputDirectory string `mapstructure:"output_directory"`
	Template        string `mapstructure:"template" validate:"omitempty,file"`
}

type WordbooksConfig struct {
	SourcesDirectory string `mapstructure:"sources_directory"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/wordplan")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "local")
	v.SetDefault("database.username", "user")
	v.SetDefault("schedule.timezone", "Asia/Seoul")
	v.SetDefault("schedule.fallback_word_count", 30)
	v.SetDefault("schedule.passing_score", 80)
	v.SetDefault("schedule.pass_reward", 2)
	v.SetDefault("webhook.retry_attempts", 3)
	v.SetDefault("reports.output_directory", filepath.Join("outputs", "reports"))
	// Template is optional - if not specified, will use embedded fallback template
	v.SetDefault("reports.template", "")
	v.SetDefault("wordbooks.sources_directory", "wordbooks")

	// Bind secrets to environment variables only (not from config file)
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("webhook.url", "WEBHOOK_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind WEBHOOK_URL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
