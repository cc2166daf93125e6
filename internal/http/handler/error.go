package handler

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"filedepot/internal/http/middleware"
)

// errorPayload is the uniform error response body: {"error": "..."}.
// Status codes: 400 validation, 404 read miss, 500 collaborator failure.
type errorPayload struct {
	Error string `json:"error"`
}

// writeError writes the standardized JSON error response.
func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorPayload{Error: message})
}

// logError emits one JSON line for a collaborator failure. Validation errors
// are client faults and are never logged through here.
func logError(c *fiber.Ctx, op string, err error) {
	rid, _ := c.Locals(middleware.RequestIDLocalKey).(string)
	entry := map[string]any{
		"ts":         time.Now().UTC().Format(time.RFC3339Nano),
		"level":      "error",
		"request_id": rid,
		"op":         op,
		"error":      err.Error(),
	}
	if b, err := json.Marshal(entry); err == nil {
		log.Println(string(b))
	}
}

// ErrorHandler returns a Fiber global error handler that keeps unmatched
// routes and panics on the same {"error": ...} contract as the handlers.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "method not allowed")
		default:
			return writeError(c, status, "internal server error")
		}
	}
}
