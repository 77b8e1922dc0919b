package log

// ZapConfig configures the zap backed logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // debug or production
	Encoding     string // console or json
	ColorEnabled bool
}

type ctxKey string

const (
	ctxKeyRequestID ctxKey = "request_id"
	ctxKeyUserID    ctxKey = "user_id"
)

const (
	ModeProduction   = "production"
	EncodingConsole  = "console"
	EncodingJSON     = "json"
	defaultTimestamp = "2006-01-02T15:04:05.000Z0700"
)
