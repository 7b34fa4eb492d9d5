package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"dealership/internal/generated/servers"
	"dealership/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := classify(err)
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		s.logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", err)
	}
}

// classify maps an error to its HTTP status and response body.
func classify(err error) (int, servers.Error) {
	var (
		httpErr       *echo.HTTPError
		validationErr validator.ValidationErrors
		requestErr    *openapi3filter.RequestError
	)

	switch {
	case errors.As(err, &requestErr):
		return http.StatusBadRequest, servers.Error{Code: servers.ErrorCodeValidationError, Message: requestErr.Error()}
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, servers.Error{Code: servers.ErrorCodeValidationError, Message: describe(validationErr)}
	case errors.As(err, &httpErr):
		return httpErr.Code, servers.Error{Code: codeForStatus(httpErr.Code), Message: fmt.Sprint(httpErr.Message)}
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, servers.Error{Code: servers.ErrorCodeNotFound, Message: err.Error()}
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict, servers.Error{Code: servers.ErrorCodeConflict, Message: err.Error()}
	case errors.Is(err, errs.ErrPreconditionFailed):
		return http.StatusPreconditionFailed, servers.Error{Code: servers.ErrorCodePreconditionFailed, Message: err.Error()}
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, servers.Error{Code: servers.ErrorCodeValidationError, Message: err.Error()}
	case errors.Is(err, errs.ErrTransient):
		return http.StatusServiceUnavailable, servers.Error{
			Code:    servers.ErrorCodeRetryLater,
			Message: "the request collided with a concurrent change, retry later",
		}
	default:
		return http.StatusInternalServerError, servers.Error{Code: servers.ErrorCodeInternal, Message: "internal server error"}
	}
}

func describe(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		// Drop the request struct name.
		_, field, _ := strings.Cut(fe.Namespace(), ".")
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", field, fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", field, fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

func codeForStatus(status int) servers.ErrorCode {
	switch status {
	case http.StatusBadRequest:
		return servers.ErrorCodeValidationError
	case http.StatusNotFound:
		return servers.ErrorCodeNotFound
	case http.StatusConflict:
		return servers.ErrorCodeConflict
	case http.StatusPreconditionFailed:
		return servers.ErrorCodePreconditionFailed
	case http.StatusServiceUnavailable:
		return servers.ErrorCodeRetryLater
	default:
		if status >= http.StatusInternalServerError {
			return servers.ErrorCodeInternal
		}
		return servers.ErrorCode(strings.ToLower(strings.ReplaceAll(http.StatusText(status), " ", "_")))
	}
}
