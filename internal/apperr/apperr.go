// Package apperr is the error taxonomy shared by services and controllers.
// Services return typed errors; controllers map them to HTTP statuses and
// never surface partially-applied results.
package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type Kind int

const (
	KindBadRequest Kind = iota
	KindNotFound
	KindConflict
	KindInternal
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error // optional cause
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func BadRequest(msg string) *Error { return &Error{Kind: KindBadRequest, Msg: msg} }
func NotFound(msg string) *Error   { return &Error{Kind: KindNotFound, Msg: msg} }
func Conflict(msg string) *Error   { return &Error{Kind: KindConflict, Msg: msg} }

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Msg: "Server error", Err: err}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}

// StatusCode maps an error to its HTTP status. Unknown errors are 500.
func StatusCode(err error) int {
	var ae *Error
	if !errors.As(err, &ae) {
		return fiber.StatusInternalServerError
	}
	switch ae.Kind {
	case KindBadRequest:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// Respond writes the fiber error response for err.
func Respond(c *fiber.Ctx, err error) error {
	var ae *Error
	if !errors.As(err, &ae) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
	}
	if ae.Kind == KindInternal && ae.Err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": ae.Msg, "error": ae.Err.Error()})
	}
	return c.Status(StatusCode(err)).JSON(fiber.Map{"message": ae.Msg})
}
