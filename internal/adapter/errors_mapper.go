package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-meet/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := errorMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, message)
	case http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %s", ErrPayloadTooLarge, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
	}
}

// errorMessage prefers the "error" field of a JSON body and falls back to
// the raw body, then to the status text.
func errorMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var payload models.ErrorResponse
	if err := json.Unmarshal([]byte(body), &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	return body
}
