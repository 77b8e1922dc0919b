package line

// NewText builds a text message.
func NewText(text string) Message {
	return Message{Type: "text", Text: text}
}

// NewFlex builds a flex message from bubbles: a single bubble is sent as is,
// more become a carousel of at most MaxCarousel bubbles.
func NewFlex(altText string, bubbles ...Bubble) Message {
	m := Message{Type: "flex", AltText: altText}
	switch len(bubbles) {
	case 0:
		return NewText(altText)
	case 1:
		m.Contents = bubbles[0]
	default:
		if len(bubbles) > MaxCarousel {
			bubbles = bubbles[:MaxCarousel]
		}
		m.Contents = Carousel{Type: "carousel", Contents: bubbles}
	}
	return m
}

// WithQuickReply attaches quick reply buttons. No actions leaves m unchanged.
func (m Message) WithQuickReply(actions ...Action) Message {
	if len(actions) == 0 {
		return m
	}
	items := make([]QuickReplyItem, len(actions))
	for i, a := range actions {
		items[i] = QuickReplyItem{Type: "action", Action: a}
	}
	m.QuickReply = &QuickReply{Items: items}
	return m
}

// MessageAction sends text as if the user typed it.
func MessageAction(label, text string) Action {
	return Action{Type: "message", Label: clipLabel(label), Text: text}
}

// URIAction opens uri.
func URIAction(label, uri string) Action {
	return Action{Type: "uri", Label: clipLabel(label), URI: uri}
}

// PostbackAction posts data back to the webhook.
func PostbackAction(label, data string) Action {
	return Action{Type: "postback", Label: clipLabel(label), Data: data}
}

// LINE rejects action labels longer than 20 characters.
func clipLabel(s string) string {
	r := []rune(s)
	if len(r) <= 20 {
		return s
	}
	return string(r[:19]) + "…"
}
