package line

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sourcegraph/conc/panics"

	"line-task-tracker/internal/model"
	pkgLine "line-task-tracker/pkg/line"
	pkgLog "line-task-tracker/pkg/log"
	pkgResponse "line-task-tracker/pkg/response"
)

const (
	requestIDHeader = "X-Request-ID"
	presetPrefix    = "preset="
)

// HandleWebhook acknowledges the delivery at once and processes its events
// in order in a background goroutine. The signature is checked by the
// middleware in front of this handler.
// @Summary LINE webhook
// @Tags webhook
// @Accept json
// @Produce json
// @Param X-Line-Signature header string true "HMAC-SHA256 of the body"
// @Success 200 {object} pkgResponse.Resp
// @Failure 400 {object} pkgResponse.Resp
// @Router /webhook/line [post]
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	req, ok := verifiedRequest(c)
	if !ok {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.l.Errorf(ctx, "line handler: failed to parse webhook: %v", err)
			pkgResponse.Error(c, err, nil)
			return
		}
	}

	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	events := req.Events
	go func() {
		// Detached from the request context, which ends with the response.
		bgCtx := pkgLog.WithRequestID(context.Background(), requestID)
		h.processEvents(bgCtx, events)
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// verifiedRequest returns the request decoded by the signature middleware.
func verifiedRequest(c *gin.Context) (pkgLine.WebhookRequest, bool) {
	v, ok := c.Get(pkgLine.WebhookContextKey)
	if !ok {
		return pkgLine.WebhookRequest{}, false
	}
	req, ok := v.(pkgLine.WebhookRequest)
	return req, ok
}

func (h *handler) processEvents(ctx context.Context, events []pkgLine.Event) {
	for _, ev := range events {
		h.safeHandle(ctx, ev)
	}
}

// safeHandle runs one event; a panic is logged and reported to the sender
// without stopping the batch.
func (h *handler) safeHandle(ctx context.Context, ev pkgLine.Event) {
	ctx = pkgLog.WithUserID(ctx, ev.Source.UserID)

	var pc panics.Catcher
	pc.Try(func() { h.handleEvent(ctx, ev) })
	if r := pc.Recovered(); r != nil {
		h.l.Errorf(ctx, "line handler: panic while handling %s event: %v\n%s", ev.Type, r.Value, r.Stack)
		h.reply(ctx, ev.ReplyToken, pkgLine.NewText(textGenericError))
	}
}

func (h *handler) handleEvent(ctx context.Context, ev pkgLine.Event) {
	sc := model.Scope{UserID: ev.Source.UserID}
	if sc.UserID == "" {
		return
	}

	switch ev.Type {
	case pkgLine.EventTypeFollow:
		h.reply(ctx, ev.ReplyToken, pkgLine.NewText(textWelcome))
	case pkgLine.EventTypePostback:
		if ev.Postback == nil {
			return
		}
		h.handlePostback(ctx, sc, ev.ReplyToken, ev.Postback.Data)
	case pkgLine.EventTypeMessage:
		if ev.Message == nil || ev.Message.Type != pkgLine.MessageTypeText {
			return
		}
		text := strings.TrimSpace(ev.Message.Text)
		if text == "" {
			return
		}
		h.dispatch(ctx, sc, ev.ReplyToken, h.parser.ParseAt(text, h.now()))
	}
}

func (h *handler) handlePostback(ctx context.Context, sc model.Scope, replyToken, data string) {
	key, ok := strings.CutPrefix(data, presetPrefix)
	if !ok {
		return
	}
	p, err := h.draftUC.SetPreset(ctx, sc, key)
	if err != nil {
		h.replyError(ctx, replyToken, err)
		return
	}

	text := textPresetUrgent
	if p.Due != "" {
		text = presetDueText(key)
	}
	h.reply(ctx, replyToken, pkgLine.NewText(text))
}

func (h *handler) reply(ctx context.Context, replyToken string, msgs ...pkgLine.Message) {
	if replyToken == "" {
		return
	}
	if err := h.bot.Reply(ctx, replyToken, msgs...); err != nil {
		h.l.Errorf(ctx, "line handler: failed to reply: %v", err)
	}
}

func (h *handler) push(ctx context.Context, sc model.Scope, to string, msgs ...pkgLine.Message) {
	if to == "" || to == sc.UserID {
		return
	}
	if err := h.bot.Push(ctx, to, msgs...); err != nil {
		h.l.Warnf(ctx, "line handler: failed to push to %s: %v", to, err)
	}
}

func (h *handler) replyError(ctx context.Context, replyToken string, err error) {
	msg := errorMessage(err)
	if msg == textGenericError {
		h.l.Errorf(ctx, "line handler: %v", err)
	} else {
		h.l.Infof(ctx, "line handler: %v", err)
	}
	h.reply(ctx, replyToken, pkgLine.NewText(msg))
}

// withProfileName fills the sender's LINE display name, used when they have
// no user record.
func (h *handler) withProfileName(ctx context.Context, sc model.Scope) model.Scope {
	p, err := h.bot.Profile(ctx, sc.UserID)
	if err != nil {
		h.l.Warnf(ctx, "line handler: failed to get profile of %s: %v", sc.UserID, err)
		return sc
	}
	sc.DisplayName = p.DisplayName
	return sc
}
