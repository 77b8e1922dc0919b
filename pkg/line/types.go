package line

// WebhookRequest is the body LINE posts to the webhook.
type WebhookRequest struct {
	Destination string  `json:"destination"`
	Events      []Event `json:"events"`
}

// Event types handled by the bot.
const (
	EventTypeMessage  = "message"
	EventTypePostback = "postback"
	EventTypeFollow   = "follow"

	MessageTypeText = "text"
)

// Event is a single webhook event.
type Event struct {
	Type           string        `json:"type"`
	WebhookEventID string        `json:"webhookEventId,omitempty"`
	ReplyToken     string        `json:"replyToken,omitempty"`
	Timestamp      int64         `json:"timestamp"`
	Source         Source        `json:"source"`
	Message        *EventMessage `json:"message,omitempty"`
	Postback       *Postback     `json:"postback,omitempty"`
}

// Source identifies who sent the event.
type Source struct {
	Type    string `json:"type"`
	UserID  string `json:"userId,omitempty"`
	GroupID string `json:"groupId,omitempty"`
	RoomID  string `json:"roomId,omitempty"`
}

// EventMessage is the message carried by a message event.
type EventMessage struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// Postback carries the data of a pressed postback button.
type Postback struct {
	Data string `json:"data"`
}

// Profile is a user's public LINE profile.
type Profile struct {
	UserID        string `json:"userId"`
	DisplayName   string `json:"displayName"`
	PictureURL    string `json:"pictureUrl,omitempty"`
	StatusMessage string `json:"statusMessage,omitempty"`
}

// Message is an outgoing message. Text messages set Text; flex messages set
// AltText and Contents.
type Message struct {
	Type       string      `json:"type"`
	Text       string      `json:"text,omitempty"`
	AltText    string      `json:"altText,omitempty"`
	Contents   any         `json:"contents,omitempty"`
	QuickReply *QuickReply `json:"quickReply,omitempty"`
}

// QuickReply is the row of buttons shown under a message.
type QuickReply struct {
	Items []QuickReplyItem `json:"items"`
}

type QuickReplyItem struct {
	Type   string `json:"type"`
	Action Action `json:"action"`
}

// Action is what a button does when pressed.
type Action struct {
	Type  string `json:"type"`
	Label string `json:"label,omitempty"`
	Text  string `json:"text,omitempty"`
	URI   string `json:"uri,omitempty"`
	Data  string `json:"data,omitempty"`
}

// Bubble is a single flex card.
type Bubble struct {
	Type   string     `json:"type"`
	Header *Component `json:"header,omitempty"`
	Body   *Component `json:"body,omitempty"`
	Footer *Component `json:"footer,omitempty"`
}

// Carousel is a horizontally scrolling set of bubbles.
type Carousel struct {
	Type     string   `json:"type"`
	Contents []Bubble `json:"contents"`
}

// Component is a flex box, text, button, separator or filler.
type Component struct {
	Type            string      `json:"type"`
	Layout          string      `json:"layout,omitempty"`
	Contents        []Component `json:"contents,omitempty"`
	Text            string      `json:"text,omitempty"`
	Size            string      `json:"size,omitempty"`
	Weight          string      `json:"weight,omitempty"`
	Color           string      `json:"color,omitempty"`
	Align           string      `json:"align,omitempty"`
	Wrap            bool        `json:"wrap,omitempty"`
	Flex            int         `json:"flex,omitempty"`
	Spacing         string      `json:"spacing,omitempty"`
	Margin          string      `json:"margin,omitempty"`
	BackgroundColor string      `json:"backgroundColor,omitempty"`
	PaddingAll      string      `json:"paddingAll,omitempty"`
	Style           string      `json:"style,omitempty"`
	Height          string      `json:"height,omitempty"`
	Action          *Action     `json:"action,omitempty"`
}

type replyRequest struct {
	ReplyToken string    `json:"replyToken"`
	Messages   []Message `json:"messages"`
}

type pushRequest struct {
	To       string    `json:"to"`
	Messages []Message `json:"messages"`
}

// MaxCarousel is the most bubbles LINE accepts in one carousel.
const MaxCarousel = 10

// MaxMessages is the most messages one reply or push may carry.
const MaxMessages = 5
