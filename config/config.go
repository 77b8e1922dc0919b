package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Chat and storage
	Line      LineConfig
	AppScript AppScriptConfig

	// Behaviour
	App AppConfig

	// Optional calendar mirror
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// LineConfig holds the Messaging API channel. AccessToken may be left empty
// when ChannelID and ChannelSecret can issue tokens.
type LineConfig struct {
	ChannelID     string
	ChannelSecret string
	AccessToken   string
	APIURL        string
	Timeout       time.Duration
}

type AppScriptConfig struct {
	ExecURL string
	AppKey  string
	Timeout time.Duration
}

type AppConfig struct {
	Timezone        string
	PublicURL       string // base URL the service is reachable at, used for the export link
	CronKey         string
	DraftTTL        time.Duration // 0 keeps drafts until replaced
	UserCacheTTL    time.Duration
	RateLimitPerMin int
	JobTimeout      time.Duration
	Concurrency     int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
	EventDuration   time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// LINE
	cfg.Line.ChannelID = viper.GetString("line.channel_id")
	cfg.Line.ChannelSecret = expandEnvVar(viper.GetString("line.channel_secret"))
	cfg.Line.AccessToken = expandEnvVar(viper.GetString("line.access_token"))
	cfg.Line.APIURL = viper.GetString("line.api_url")
	cfg.Line.Timeout = viper.GetDuration("line.timeout")
	if secret := viper.GetString("line_channel_secret"); secret != "" {
		cfg.Line.ChannelSecret = secret
	}
	if token := viper.GetString("line_access_token"); token != "" {
		cfg.Line.AccessToken = token
	}

	// Apps Script store
	cfg.AppScript.ExecURL = viper.GetString("appscript.exec_url")
	cfg.AppScript.AppKey = expandEnvVar(viper.GetString("appscript.app_key"))
	cfg.AppScript.Timeout = viper.GetDuration("appscript.timeout")
	if execURL := viper.GetString("appscript_exec_url"); execURL != "" {
		cfg.AppScript.ExecURL = execURL
	}
	if appKey := viper.GetString("appscript_app_key"); appKey != "" {
		cfg.AppScript.AppKey = appKey
	}

	// App
	cfg.App.Timezone = viper.GetString("app.timezone")
	cfg.App.PublicURL = strings.TrimRight(viper.GetString("app.public_url"), "/")
	cfg.App.CronKey = expandEnvVar(viper.GetString("app.cron_key"))
	cfg.App.DraftTTL = viper.GetDuration("app.draft_ttl")
	cfg.App.UserCacheTTL = viper.GetDuration("app.user_cache_ttl")
	cfg.App.RateLimitPerMin = viper.GetInt("app.rate_limit_per_min")
	cfg.App.JobTimeout = viper.GetDuration("app.job_timeout")
	cfg.App.Concurrency = viper.GetInt("app.concurrency")
	if cronKey := viper.GetString("cron_key"); cronKey != "" {
		cfg.App.CronKey = cronKey
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.EventDuration = viper.GetDuration("google_calendar.event_duration")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("line.timeout", "10s")
	viper.SetDefault("appscript.timeout", "20s")

	viper.SetDefault("app.timezone", "Asia/Bangkok")
	viper.SetDefault("app.draft_ttl", "0s")
	viper.SetDefault("app.user_cache_ttl", "60s")
	viper.SetDefault("app.rate_limit_per_min", 120)
	viper.SetDefault("app.job_timeout", "5m")
	viper.SetDefault("app.concurrency", 4)

	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.event_duration", "30m")
}

// validate checks the settings the service cannot start without.
func validate(cfg *Config) error {
	if cfg.Line.ChannelSecret == "" {
		return errors.New("line.channel_secret is required")
	}
	if cfg.Line.AccessToken == "" && cfg.Line.ChannelID == "" {
		return errors.New("either line.access_token or line.channel_id is required")
	}
	if cfg.AppScript.ExecURL == "" {
		return errors.New("appscript.exec_url is required")
	}
	if cfg.App.Concurrency < 0 {
		return fmt.Errorf("app.concurrency must not be negative, got %d", cfg.App.Concurrency)
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
	}

	return value
}
