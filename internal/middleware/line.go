package middleware

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	pkgLine "line-task-tracker/pkg/line"
	pkgResponse "line-task-tracker/pkg/response"
)

// LineSignature rejects webhook calls whose X-Line-Signature does not match
// the body. The decoded request is stored under pkgLine.WebhookContextKey
// and the body is restored for the next handler.
func (m Middleware) LineSignature() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			m.l.Errorf(ctx, "middleware.LineSignature: failed to read body: %v", err)
			pkgResponse.Error(c, err, nil)
			c.Abort()
			return
		}

		req, err := pkgLine.ParseWebhook(m.cfg.ChannelSecret, body, c.GetHeader(pkgLine.SignatureHeader))
		if errors.Is(err, pkgLine.ErrInvalidSignature) {
			m.l.Warnf(ctx, "middleware.LineSignature: %v", err)
			pkgResponse.Unauthorized(c)
			c.Abort()
			return
		}
		if err != nil {
			m.l.Warnf(ctx, "middleware.LineSignature: %v", err)
			pkgResponse.Error(c, err, nil)
			c.Abort()
			return
		}

		c.Set(pkgLine.WebhookContextKey, req)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		c.Next()
	}
}

// CronKey guards the scheduler and export endpoints with the shared key
// passed as ?key= or ?k=.
func (m Middleware) CronKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Query("key")
		if key == "" {
			key = c.Query("k")
		}
		if m.cfg.CronKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.cfg.CronKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.CronKey: rejected %s %s", c.Request.Method, c.FullPath())
			pkgResponse.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
