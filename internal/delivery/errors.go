package delivery

import (
	"errors"
	"net/http"

	"backoffice/internal/clients"
	"backoffice/internal/domain"
)

// statusFor maps a use case error to the status of the rendered page.
func statusFor(err error) int {
	var verrs domain.ValidationErrors
	var apiErr *clients.APIError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &verrs):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest
	case errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

func validationErrors(err error) (domain.ValidationErrors, bool) {
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}

// apiMessage prefers the message sent back by the API.
func apiMessage(err error, fallback string) string {
	var apiErr *clients.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return "Erreur: " + apiErr.Message
	}
	return fallback
}

func isNotFound(err error) bool {
	var apiErr *clients.APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
