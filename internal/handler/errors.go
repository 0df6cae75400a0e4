package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"studypilot/internal/domain"
	"studypilot/internal/httputil"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, err error) {
	var fieldErrs validation.Errors
	var invalid *domain.ValidationError
	var httpErr domain.HTTPError

	switch {
	case errors.As(err, &fieldErrs):
		httputil.RespondFieldErrors(w, "invalid preference change", fieldErrors(fieldErrs))
	case errors.As(err, &invalid) && invalid.Field != "":
		httputil.RespondFieldErrors(w, invalid.Error(), map[string]string{invalid.Field: invalid.Message})
	case errors.As(err, &httpErr):
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		httputil.RespondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrUnavailable):
		httputil.RespondError(w, http.StatusServiceUnavailable, "service unavailable")
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// fieldErrors flattens ozzo field errors into field -> message
func fieldErrors(errs validation.Errors) map[string]string {
	out := make(map[string]string, len(errs))
	for field, err := range errs {
		out[field] = err.Error()
	}
	return out
}
