package discord

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
)

func restError(status, code int, msg string) error {
	return &discordgo.RESTError{
		Response: &http.Response{StatusCode: status},
		Message:  &discordgo.APIErrorMessage{Code: code, Message: msg},
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		in   error
		kind error
	}{
		{"unauthorized", restError(http.StatusUnauthorized, 0, "401: Unauthorized"), ErrUnauthorized},
		{"library unauthorized", discordgo.ErrUnauthorized, ErrUnauthorized},
		{"forbidden", restError(http.StatusForbidden, 50013, "Missing Permissions"), ErrForbidden},
		{"unknown guild", restError(http.StatusNotFound, 10004, "Unknown Guild"), ErrNotFound},
		{"rate limited", restError(http.StatusTooManyRequests, 0, "You are being rate limited."), ErrRateLimited},
		{"bad request", restError(http.StatusBadRequest, 50035, "Invalid Form Body"), ErrAPI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Describe(tt.in)
			if !errors.Is(err, tt.kind) {
				t.Fatalf("Describe() = %v, want %v", err, tt.kind)
			}
		})
	}
}

func TestDescribeKeepsDetails(t *testing.T) {
	err := Describe(restError(http.StatusBadRequest, 50035, "Invalid Form Body"))

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("got %T", err)
	}
	if apiErr.Status != 400 || apiErr.Code != 50035 {
		t.Fatalf("got %+v", apiErr)
	}
	if !strings.Contains(err.Error(), "Invalid Form Body") {
		t.Fatalf("message lost: %v", err)
	}
}

func TestDescribePassesThrough(t *testing.T) {
	if Describe(nil) != nil {
		t.Fatal("nil should stay nil")
	}
	if err := Describe(context.Canceled); err != context.Canceled {
		t.Fatalf("got %v", err)
	}
}

func TestNewSession(t *testing.T) {
	s, err := NewSession(SessionOptions{Token: "Bot abc"})
	if err != nil {
		t.Fatal(err)
	}
	if s.Token != "Bot abc" {
		t.Fatalf("token = %q", s.Token)
	}
	if s.MaxRestRetries != 0 {
		t.Fatalf("MaxRestRetries = %d", s.MaxRestRetries)
	}
	if s.Client == nil || s.Client.Timeout <= 0 {
		t.Fatal("http client not configured")
	}

	if _, err := NewSession(SessionOptions{Token: "  "}); err == nil {
		t.Fatal("expected error for empty token")
	}
}
