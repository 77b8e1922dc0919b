package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnv(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("LINE_CHANNEL_SECRET", "secret")
	t.Setenv("LINE_ACCESS_TOKEN", "token")
	t.Setenv("APPSCRIPT_EXEC_URL", "https://script.google.com/macros/s/x/exec")
	t.Setenv("APP_PUBLIC_URL", "https://bot.example.com/")
	t.Setenv("CRON_KEY", "k1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Line.ChannelSecret)
	assert.Equal(t, "token", cfg.Line.AccessToken)
	assert.Equal(t, "https://bot.example.com", cfg.App.PublicURL)
	assert.Equal(t, "k1", cfg.App.CronKey)
	assert.Equal(t, "Asia/Bangkok", cfg.App.Timezone)
	assert.Equal(t, 5*time.Minute, cfg.App.JobTimeout)
	assert.Equal(t, 30*time.Minute, cfg.GoogleCalendar.EventDuration)
	assert.Equal(t, 8080, cfg.HTTPServer.Port)
}

func TestLoad_MissingRequired(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("APPSCRIPT_EXEC_URL", "https://script.google.com/macros/s/x/exec")

	_, err := Load()
	assert.ErrorContains(t, err, "line.channel_secret")
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("MY_SECRET", "shh")

	tests := []struct {
		in   string
		want string
	}{
		{in: "${MY_SECRET}", want: "shh"},
		{in: "plain", want: "plain"},
		{in: "", want: ""},
		{in: "${UNSET_SECRET_FOR_TEST}", want: "${UNSET_SECRET_FOR_TEST}"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, expandEnvVar(tt.in), tt.in)
	}
}
