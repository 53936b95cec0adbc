package calendar

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/medbook/internal/booking/domain"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client inserts events into an external calendar.
type Client interface {
	InsertEvent(ctx context.Context, ev Event) error
}

// ErrNotConfigured is returned when there is nothing to build a client from.
var ErrNotConfigured = errors.New("calendar: credentials not configured")

// GoogleConfig configures the Google Calendar client.
type GoogleConfig struct {
	// CredentialsFile is a service-account JSON key.
	CredentialsFile string

	// Endpoint overrides the API base URL, for emulators and tests. With no
	// credentials file requests are sent unauthenticated.
	Endpoint string
}

// GoogleClient is a Client backed by the Google Calendar v3 API.
type GoogleClient struct {
	svc *gcal.Service
}

var _ Client = (*GoogleClient)(nil)

func NewGoogleClient(ctx context.Context, cfg GoogleConfig) (*GoogleClient, error) {
	var opts []option.ClientOption

	switch {
	case cfg.CredentialsFile != "":
		opts = append(opts,
			option.WithCredentialsFile(cfg.CredentialsFile),
			option.WithScopes(gcal.CalendarScope),
		)
	case cfg.Endpoint != "":
		opts = append(opts, option.WithoutAuthentication())
	default:
		return nil, ErrNotConfigured
	}

	if cfg.Endpoint != "" {
		endpoint := cfg.Endpoint
		if !strings.HasSuffix(endpoint, "/") {
			endpoint += "/"
		}
		opts = append(opts, option.WithEndpoint(endpoint))
	}

	svc, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("calendar: create service: %w", err)
	}
	return &GoogleClient{svc: svc}, nil
}

// InsertEvent creates ev on ev.CalendarID. No request id is sent, so a
// retried call may create a duplicate.
func (c *GoogleClient) InsertEvent(ctx context.Context, ev Event) error {
	overrides := make([]*gcal.EventReminder, 0, len(ev.Reminders))
	for _, r := range ev.Reminders {
		overrides = append(overrides, &gcal.EventReminder{Method: r.Method, Minutes: r.Minutes})
	}

	body := &gcal.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Start:       &gcal.EventDateTime{DateTime: domain.FormatTime(ev.Start), TimeZone: ev.TimeZone},
		End:         &gcal.EventDateTime{DateTime: domain.FormatTime(ev.End), TimeZone: ev.TimeZone},
		Reminders: &gcal.EventReminders{
			UseDefault: false,
			Overrides:  overrides,
			// false is the zero value and would otherwise be omitted.
			ForceSendFields: []string{"UseDefault"},
		},
	}

	if _, err := c.svc.Events.Insert(ev.CalendarID, body).Context(ctx).Do(); err != nil {
		return fmt.Errorf("calendar: insert event: %w", err)
	}
	return nil
}
