package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	pkgLine "line-task-tracker/pkg/line"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func TestLineSignature(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const secret = "channel-secret"
	body := `{"events":[]}`

	mw := New(&mockLogger{}, Config{ChannelSecret: secret})
	r := gin.New()
	r.POST("/webhook/line", mw.LineSignature(), func(c *gin.Context) {
		if _, ok := c.Get(pkgLine.WebhookContextKey); !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		got, _ := io.ReadAll(c.Request.Body)
		c.String(http.StatusOK, string(got))
	})

	tests := []struct {
		name      string
		body      string
		signature string
		wantCode  int
	}{
		{name: "valid", body: body, signature: pkgLine.Sign(secret, []byte(body)), wantCode: http.StatusOK},
		{name: "wrong secret", body: body, signature: pkgLine.Sign("other", []byte(body)), wantCode: http.StatusUnauthorized},
		{name: "missing", body: body, signature: "", wantCode: http.StatusUnauthorized},
		{name: "not base64", body: body, signature: "%%%", wantCode: http.StatusUnauthorized},
		{name: "signed but not json", body: "{", signature: pkgLine.Sign(secret, []byte("{")), wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/webhook/line", strings.NewReader(tt.body))
			if tt.signature != "" {
				req.Header.Set(pkgLine.SignatureHeader, tt.signature)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, body, w.Body.String(), "body must reach the handler intact")
			}
		})
	}
}

func TestCronKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(key string) *gin.Engine {
		mw := New(&mockLogger{}, Config{CronKey: key})
		r := gin.New()
		r.GET("/api/cron", mw.CronKey(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
		return r
	}

	tests := []struct {
		name     string
		key      string
		query    string
		wantCode int
	}{
		{name: "key param", key: "s3cret", query: "?key=s3cret", wantCode: http.StatusNoContent},
		{name: "k param", key: "s3cret", query: "?k=s3cret", wantCode: http.StatusNoContent},
		{name: "wrong key", key: "s3cret", query: "?key=nope", wantCode: http.StatusForbidden},
		{name: "missing key", key: "s3cret", query: "", wantCode: http.StatusForbidden},
		{name: "unconfigured", key: "", query: "?key=", wantCode: http.StatusForbidden},
		{name: "prefix of key", key: "s3cret", query: "?key=s3cr", wantCode: http.StatusForbidden},
		{name: "key with suffix", key: "s3cret", query: "?k=s3cret2", wantCode: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newRouter(tt.key).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cron"+tt.query, nil))
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// 60/min gives a burst of 6 and refills one token per second.
	mw := New(&mockLogger{}, Config{RateLimitPerMin: 60})
	r := gin.New()
	r.GET("/", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	call := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 6; i++ {
		assert.Equal(t, http.StatusOK, call("1.1.1.1"), "request %d", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, call("1.1.1.1"))
	assert.Equal(t, http.StatusOK, call("2.2.2.2"), "other clients keep their own bucket")
}

func TestRateLimit_Disabled(t *testing.T) {
	mw := New(&mockLogger{}, Config{})
	r := gin.New()
	r.GET("/", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestExtractIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", extractIP(req))

	req.Header.Set("X-Real-IP", "198.51.100.2")
	assert.Equal(t, "198.51.100.2", extractIP(req))

	req.Header.Set("X-Forwarded-For", " 203.0.113.9 , 10.0.0.1")
	assert.Equal(t, "203.0.113.9", extractIP(req))
}
