package response

import "github.com/gofiber/fiber/v3"

// Envelope is the JSON body every endpoint returns, success or failure.
// Handlers place their DTO in Data; the error middleware fills Message and
// leaves Data nil unless an AppError carries detail.
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

const (
	MessageOK                  = "ok"
	MessageBadRequest          = "bad request"
	MessageUnauthorized        = "unauthorized"
	MessageNotFound            = "not found"
	MessageConflict            = "conflict"
	MessageInternalServerError = "internal server error"
	MessageError               = "error"
)

// statusMessages covers the statuses this API emits: bind/parse failures,
// auth rejections, unknown resumes, duplicate registrations, degraded
// health, and internal faults.
var statusMessages = map[int]string{
	fiber.StatusOK:                  MessageOK,
	fiber.StatusCreated:             MessageOK,
	fiber.StatusBadRequest:          MessageBadRequest,
	fiber.StatusUnauthorized:        MessageUnauthorized,
	fiber.StatusNotFound:            MessageNotFound,
	fiber.StatusConflict:            MessageConflict,
	fiber.StatusServiceUnavailable:  "service unavailable",
	fiber.StatusInternalServerError: MessageInternalServerError,
}

func Success(c fiber.Ctx, status int, message string, data any) error {
	return send(c, status, message, data)
}

func Error(c fiber.Ctx, status int, message string, data any) error {
	return send(c, status, message, data)
}

// MessageFor returns the default message for a status. Statuses outside
// the table fall back to a generic message rather than leaking detail.
func MessageFor(status int) string {
	if m, ok := statusMessages[status]; ok {
		return m
	}
	if status >= 500 {
		return MessageInternalServerError
	}
	return MessageError
}

func send(c fiber.Ctx, status int, message string, data any) error {
	if status < 100 || status > 599 {
		status = fiber.StatusInternalServerError
	}
	if message == "" {
		message = MessageFor(status)
	}
	return c.Status(status).JSON(Envelope{Status: status, Message: message, Data: data})
}
