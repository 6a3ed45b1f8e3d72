package web

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/Belphemur/ShowSearch/internal/apperrors"
)

// parseShowID accepts only positive decimal ids.
func parseShowID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, &apperrors.ErrInvalidShowID{Value: raw}
	}
	return id, nil
}

// statusForError maps a fetch failure to the status code returned to the browser.
func statusForError(err error) int {
	var netErr net.Error
	switch {
	case errors.Is(err, &apperrors.ErrInvalidShowID{}):
		return http.StatusBadRequest
	case errors.Is(err, &apperrors.ErrNotFound{}):
		return http.StatusNotFound
	case errors.Is(err, &apperrors.ErrUpstreamUnavailable{}):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

// messageForStatus is the text shown in the error banner.
func messageForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "That is not a valid show ID."
	case http.StatusNotFound:
		return "That show could not be found."
	case http.StatusServiceUnavailable:
		return "The show directory is temporarily unavailable. Please try again later."
	case http.StatusGatewayTimeout:
		return "The show directory took too long to answer."
	case http.StatusBadGateway:
		return "The show directory returned an error."
	default:
		if text := http.StatusText(status); text != "" {
			return text
		}
		return "Something went wrong."
	}
}
