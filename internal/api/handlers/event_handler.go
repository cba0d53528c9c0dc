package handlers

import (
	"errors"
	"mealbridge-backend/domain"
	"mealbridge-backend/internal/api/presenters"
	"mealbridge-backend/pkg/event"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	EventHandler interface {
		CreateEvent(c *fiber.Ctx) error
		GetEvents(c *fiber.Ctx) error
		GetEventDetails(c *fiber.Ctx) error
		DeleteEvent(c *fiber.Ctx) error
	}

	eventHandler struct {
		eventService event.EventService
		validator    *validator.Validate
	}
)

func NewEventHandler(eventService event.EventService, validator *validator.Validate) EventHandler {
	return &eventHandler{
		eventService: eventService,
		validator:    validator,
	}
}

func (h *eventHandler) CreateEvent(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateEventRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateEvent, err)
	}

	res, err := h.eventService.CreateEvent(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateEvent, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateEvent)
}

func (h *eventHandler) GetEvents(c *fiber.Ctx) error {
	events, err := h.eventService.GetEvents(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEvents, err)
	}

	return presenters.SuccessResponse(c, events, fiber.StatusOK, domain.MessageSuccessGetEvents)
}

func (h *eventHandler) GetEventDetails(c *fiber.Ctx) error {
	eventID := c.Params("id")

	res, err := h.eventService.GetEventByID(c.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetEvents, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEvents, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetEvents)
}

func (h *eventHandler) DeleteEvent(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role, _ := c.Locals("role").(string)
	eventID := c.Params("id")

	if err := h.eventService.DeleteEvent(c.Context(), eventID, userID, role); err != nil {
		switch {
		case errors.Is(err, domain.ErrEventNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteEvent, err)
		case errors.Is(err, domain.ErrNotEventOwner):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedDeleteEvent, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteEvent, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteEvent)
}
