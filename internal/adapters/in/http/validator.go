package http

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator plugs go-playground/validator into echo. Field names in
// errors use the json tag.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{validate: v}
}

func (rv *RequestValidator) Validate(i any) error {
	return rv.validate.Struct(i)
}

// bindAndValidate decodes the body into req and validates it. On failure it
// writes the response itself and returns false.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	err := c.Validate(req)
	if err == nil {
		return true, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false, c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}

	var fields map[string][]string
	for _, ferr := range verrs {
		addFieldError(&fields, ferr.Field(), ferr.Tag())
	}
	return false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:  "validation failed",
		Fields: fields,
	})
}

func addFieldError(fields *map[string][]string, name string, msgs ...string) {
	if *fields == nil {
		*fields = make(map[string][]string)
	}
	(*fields)[name] = append((*fields)[name], msgs...)
}
