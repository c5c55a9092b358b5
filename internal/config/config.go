package config

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// DefaultUserAgent is the default User-Agent string sent with all HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:147.0) Gecko/20100101 Firefox/147.0"

// DefaultAppleTVAPIBaseURL is the UTS movie endpoint queried for AppleTV URLs.
const DefaultAppleTVAPIBaseURL = "https://tv.apple.com/api/uts/v3/movies/"

type Config struct {
	UserAgent         string `mapstructure:"user_agent"`
	ClientTimeout     string `mapstructure:"client_timeout"` // Go duration string like "30s", "1h", etc.
	LogLevel          string `mapstructure:"log_level"`
	StorefrontsPath   string `mapstructure:"storefronts_path"`
	AppleTVAPIBaseURL string `mapstructure:"appletv_api_base_url"`
	Output            struct {
		Dir    string `mapstructure:"dir"`
		Format string `mapstructure:"format"` // "vtt" or "srt"
	} `mapstructure:"output"`
	Languages []string `mapstructure:"languages"` // subtitle language filter, empty means all
	Cache     struct {
		Provider string `mapstructure:"provider"` // "memory" or "redis"
		Size     int    `mapstructure:"size"`
		TTL      string `mapstructure:"ttl"` // Go duration string like "1h", "24h", etc.
	} `mapstructure:"cache"`
	Redis struct {
		Address  string `mapstructure:"address"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`
}

var (
	globalConfig *Config
	logger       zerolog.Logger
)

func init() {
	// Initialize zerolog with console writer for human-readable output
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stdout,
		NoColor: false,
	}).With().Timestamp().Logger()

	config, err := LoadConfig()
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to load config, continuing with defaults")
		config = &Config{UserAgent: DefaultUserAgent, AppleTVAPIBaseURL: DefaultAppleTVAPIBaseURL}
	}

	// Parse and set log level from config
	level := zerolog.InfoLevel // default
	if config.LogLevel != "" {
		if parsedLevel, err := zerolog.ParseLevel(config.LogLevel); err == nil {
			level = parsedLevel
		} else {
			logger.Warn().Str("invalid_level", config.LogLevel).Msg("Invalid log level, using default 'info'")
		}
	}

	// Set the global log level
	zerolog.SetGlobalLevel(level)

	// Update logger with the configured level
	logger = logger.Level(level)

	globalConfig = config
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Environment variable support
	viper.AutomaticEnv()
	viper.SetEnvPrefix("SUBRIP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Add specific environment variable for log level
	_ = viper.BindEnv("log_level", "LOG_LEVEL")

	viper.SetDefault("output.dir", ".")
	viper.SetDefault("output.format", "vtt")
	viper.SetDefault("cache.provider", "memory")
	viper.SetDefault("cache.size", 128)
	viper.SetDefault("cache.ttl", "15m")

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}
	if config.AppleTVAPIBaseURL == "" {
		config.AppleTVAPIBaseURL = DefaultAppleTVAPIBaseURL
	}

	return &config, nil
}

func GetConfig() *Config {
	return globalConfig
}

func GetUserAgent() string {
	if globalConfig != nil && globalConfig.UserAgent != "" {
		return globalConfig.UserAgent
	}

	return DefaultUserAgent
}

func GetLogger() zerolog.Logger {
	return logger
}
