// Package dto defines one validated command struct per operation. Bodies
// are decoded strictly: unknown fields and missing required fields are
// rejected at the boundary, before any service runs.
package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"uniadmin_backend/internal/apperr"
)

var validate = validator.New()

// ParseStrict decodes the request body into dst, refusing unknown fields,
// then runs the validator tags. fiber's BodyParser cannot reject unknown
// fields, which is why this goes through encoding/json directly.
func ParseStrict(c *fiber.Ctx, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperr.BadRequest("invalid body: " + err.Error())
	}
	if err := validate.Struct(dst); err != nil {
		return apperr.BadRequest(validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed on %q", fe.Field(), fe.Tag()))
	}
	return "validation: " + strings.Join(parts, ", ")
}

type ErrorResponse struct {
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
