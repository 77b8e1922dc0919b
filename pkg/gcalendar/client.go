package gcalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a service
// account JSON key file.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a Calendar client from a service
// account JSON key. The calendar must be shared with the account's email.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}
	return newClient(ctx, option.WithTokenSource(config.TokenSource(ctx)))
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	return newClient(ctx, option.WithHTTPClient(httpClient))
}

func newClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// UpsertEvent updates the event with req.ID, inserting it when the calendar
// does not have it yet.
func (c *Client) UpsertEvent(ctx context.Context, req EventRequest) (*Event, error) {
	if req.ID == "" {
		return nil, errors.New("event id is required")
	}
	calendarID := calendarOrPrimary(req.CalendarID)
	event := toEvent(req)

	_, err := c.service.Events.Get(calendarID, req.ID).Context(ctx).Do()
	switch {
	case err == nil:
		updated, err := c.service.Events.Update(calendarID, req.ID, event).Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("failed to update calendar event: %w", err)
		}
		return fromEvent(updated, req), nil
	case !isNotFound(err):
		return nil, fmt.Errorf("failed to get calendar event: %w", err)
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}
	return fromEvent(created, req), nil
}

func toEvent(req EventRequest) *calendar.Event {
	return &calendar.Event{
		Id:          req.ID,
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}
}

func fromEvent(e *calendar.Event, req EventRequest) *Event {
	return &Event{
		ID:          e.Id,
		Summary:     e.Summary,
		Description: e.Description,
		HtmlLink:    e.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}
}

func calendarOrPrimary(id string) string {
	if id == "" {
		return "primary"
	}
	return id
}

func isNotFound(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && (apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone)
}
