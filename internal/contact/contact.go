// Package contact delivers contact form messages to a form-collection endpoint.
package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"folio/internal/domain"
)

var (
	// ErrInvalidMessage wraps field validation failures
	ErrInvalidMessage = errors.New("invalid message")
	// ErrRejected is returned when the endpoint answers with a non-2xx status
	ErrRejected = errors.New("message rejected")
	// ErrNoEndpoint is returned when no endpoint is configured
	ErrNoEndpoint = errors.New("no contact endpoint configured")
)

// Publisher receives submission outcomes
type Publisher interface {
	Publish(event domain.DomainEvent)
}

// Client posts ContactMessage values as JSON
type Client struct {
	endpoint string
	http     *http.Client
	validate *validator.Validate
	pub      Publisher
}

// NewClient creates a client for endpoint. A zero timeout means 10s.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
		validate: validator.New(),
	}
}

// SetPublisher attaches an event sink; nil detaches it
func (c *Client) SetPublisher(p Publisher) {
	c.pub = p
}

// Normalize trims surrounding whitespace from every field
func Normalize(msg domain.ContactMessage) domain.ContactMessage {
	return domain.ContactMessage{
		Name:    strings.TrimSpace(msg.Name),
		Email:   strings.TrimSpace(msg.Email),
		Subject: strings.TrimSpace(msg.Subject),
		Message: strings.TrimSpace(msg.Message),
	}
}

// Validate checks msg without sending it
func (c *Client) Validate(msg domain.ContactMessage) error {
	if err := c.validate.Struct(Normalize(msg)); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s %s", ErrInvalidMessage, strings.ToLower(verrs[0].Field()), describe(verrs[0].Tag()))
		}
		return fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	return nil
}

// Submit validates and posts msg
func (c *Client) Submit(ctx context.Context, msg domain.ContactMessage) error {
	err := c.submit(ctx, Normalize(msg))
	if err != nil {
		log.Printf("contact: submission failed: %v", err)
		c.publish(domain.ContactFailedEvent{Err: err})
		return err
	}
	log.Printf("contact: message from %s delivered", msg.Email)
	c.publish(domain.ContactSubmittedEvent{Email: msg.Email})
	return nil
}

func (c *Client) submit(ctx context.Context, msg domain.ContactMessage) error {
	if c.endpoint == "" {
		return ErrNoEndpoint
	}
	if err := c.Validate(msg); err != nil {
		return err
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s", ErrRejected, resp.Status)
	}
	return nil
}

func (c *Client) publish(e domain.DomainEvent) {
	if c.pub != nil {
		c.pub.Publish(e)
	}
}

func describe(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "email":
		return "is not a valid address"
	case "max":
		return "is too long"
	default:
		return "is invalid"
	}
}
