package discord

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
)

var (
	ErrUnauthorized = errors.New("authentication failed, check the bot token")
	ErrForbidden    = errors.New("missing permissions")
	ErrNotFound     = errors.New("not found")
	ErrRateLimited  = errors.New("rate limited")
	ErrAPI          = errors.New("discord API error")
)

// APIError is a classified REST failure. It unwraps to one of the Err*
// sentinels above.
type APIError struct {
	Kind    error
	Status  int
	Code    int
	Message string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if e.Code != 0 {
		return fmt.Sprintf("%v (HTTP %d, code %d): %s", e.Kind, e.Status, e.Code, msg)
	}
	return fmt.Sprintf("%v (HTTP %d): %s", e.Kind, e.Status, msg)
}

func (e *APIError) Unwrap() error { return e.Kind }

// Describe turns discordgo errors into *APIError. Anything that is not a
// REST error (network failures, context cancellation) is returned as is.
func Describe(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, discordgo.ErrUnauthorized) {
		return &APIError{Kind: ErrUnauthorized, Status: http.StatusUnauthorized}
	}

	var rest *discordgo.RESTError
	if !errors.As(err, &rest) || rest.Response == nil {
		return err
	}

	out := &APIError{Status: rest.Response.StatusCode}
	if rest.Message != nil {
		out.Code = rest.Message.Code
		out.Message = rest.Message.Message
	}

	switch out.Status {
	case http.StatusUnauthorized:
		out.Kind = ErrUnauthorized
	case http.StatusForbidden:
		out.Kind = ErrForbidden
	case http.StatusNotFound:
		out.Kind = ErrNotFound
	case http.StatusTooManyRequests:
		out.Kind = ErrRateLimited
	default:
		out.Kind = ErrAPI
	}

	return out
}
