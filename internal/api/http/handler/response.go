package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"
)

// envelope is the body shape shared by every endpoint. The transport status
// always equals StatusCode, and Success is derived from it.
type envelope struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
	Timestamp  string `json:"timestamp"`
}

func respond(c fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(envelope{
		Success:    status < 400,
		StatusCode: status,
		Message:    message,
		Data:       data,
		Timestamp:  time.Now().Format(time.RFC3339),
	})
}

func ok(c fiber.Ctx, message string, data any) error {
	return respond(c, fiber.StatusOK, message, data)
}

func created(c fiber.Ctx, message string, data any) error {
	return respond(c, fiber.StatusCreated, message, data)
}

func badRequest(c fiber.Ctx, msg string) error {
	return respond(c, fiber.StatusBadRequest, msg, nil)
}

func unauthorized(c fiber.Ctx, msg string) error {
	if msg == "" {
		msg = "unauthorized"
	}
	return respond(c, fiber.StatusUnauthorized, msg, nil)
}

func forbidden(c fiber.Ctx) error {
	return respond(c, fiber.StatusForbidden, "forbidden", nil)
}

func notFound(c fiber.Ctx, msg string) error {
	return respond(c, fiber.StatusNotFound, msg, nil)
}

func conflict(c fiber.Ctx, msg string) error {
	return respond(c, fiber.StatusConflict, msg, nil)
}

func internalError(c fiber.Ctx) error {
	return respond(c, fiber.StatusInternalServerError, "internal server error", nil)
}
