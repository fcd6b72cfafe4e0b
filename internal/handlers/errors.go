package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ats-scorer/internal/models"
)

// failureView is how a pipeline error is presented, both on the page and in
// the JSON API.
type failureView struct {
	Status  int
	Kind    string
	Message string
	Hint    string
	Field   string
}

func describeError(err error) failureView {
	var (
		inputErr *models.InputError
		failure  *models.CallFailure
		parseErr *models.ParseError
	)

	switch {
	case errors.As(err, &inputErr):
		return failureView{
			Status:  fiber.StatusBadRequest,
			Kind:    "input",
			Message: inputErr.Message,
			Field:   inputErr.Field,
		}
	case errors.As(err, &failure):
		return failureView{
			Status:  callFailureStatus(failure.Kind),
			Kind:    string(failure.Kind),
			Message: "Error: " + failure.Message,
			Hint:    failure.Kind.Hint(),
		}
	case errors.As(err, &parseErr):
		return failureView{
			Status:  fiber.StatusBadGateway,
			Kind:    "parse",
			Message: "Error parsing the analysis result. Please try again.",
			Hint:    "The model responded, but its answer could not be interpreted: " + parseErr.Error(),
			Field:   parseErr.Field,
		}
	default:
		return failureView{
			Status:  fiber.StatusInternalServerError,
			Kind:    string(models.KindUnknown),
			Message: err.Error(),
			Hint:    models.KindUnknown.Hint(),
		}
	}
}

func callFailureStatus(kind models.ErrorKind) int {
	switch kind {
	case models.KindAuthentication:
		return fiber.StatusUnauthorized
	case models.KindTimeout:
		return fiber.StatusGatewayTimeout
	default:
		return fiber.StatusBadGateway
	}
}

func (f failureView) response() models.ErrorResponse {
	return models.ErrorResponse{
		Error: f.Message,
		Kind:  f.Kind,
		Hint:  f.Hint,
		Field: f.Field,
	}
}

// ErrorHandler answers errors no handler turned into a response.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
