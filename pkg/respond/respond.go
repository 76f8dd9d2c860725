// Package respond provides the JSON status envelope used by the API:
// {status: "success"|"error", message?, data?, errors?}.
package respond

import (
	"github.com/labstack/echo/v4"
)

// Envelope is the uniform response body.
type Envelope struct {
	Status  string      `json:"status"`
	Message interface{} `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// Success writes a success envelope with data only.
func Success(c echo.Context, code int, data interface{}) error {
	return c.JSON(code, Envelope{Status: "success", Data: data})
}

// SuccessMessage writes a success envelope with message and data.
func SuccessMessage(c echo.Context, code int, message string, data interface{}) error {
	return c.JSON(code, Envelope{Status: "success", Message: message, Data: data})
}

// Message writes a success envelope carrying only a message.
func Message(c echo.Context, code int, message string) error {
	return c.JSON(code, Envelope{Status: "success", Message: message})
}

// Error writes an error envelope with a plain message.
func Error(c echo.Context, code int, message string) error {
	return c.JSON(code, Envelope{Status: "error", Message: message})
}

// ValidationFailed writes the standard validation-failure envelope:
// a 422 with a field -> messages map under "errors".
func ValidationFailed(c echo.Context, errs map[string][]string) error {
	return c.JSON(422, Envelope{Status: "error", Message: "Validation failed", Errors: errs})
}

// ErrorPayload writes an error envelope whose message is an arbitrary
// value. A couple of endpoints put the validation error map directly in
// "message" rather than "errors"; this preserves that wire shape.
func ErrorPayload(c echo.Context, code int, message interface{}) error {
	return c.JSON(code, Envelope{Status: "error", Message: message})
}
