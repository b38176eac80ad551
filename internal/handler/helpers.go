package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"biblio/internal/errors"
)

// bindAndValidate decodes the JSON body into req and runs the validator.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		if he, ok := err.(*echo.HTTPError); ok && he.Code == http.StatusUnsupportedMediaType {
			return err
		}
		return validationError(err)
	}
	if err := c.Validate(req); err != nil {
		return validationError(err)
	}
	return nil
}

func validationError(err error) error {
	httpErr := errors.NewValidationError(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// pathID parses the ":id" path parameter as a positive integer.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		httpErr := errors.NewInvalidParamError("id", "must be a positive integer")
		return 0, echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return uint(id), nil
}

// serviceError renders a service-layer error.
func serviceError(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
