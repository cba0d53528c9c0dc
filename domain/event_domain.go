package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateEvent = "event created successfully"
	MessageSuccessGetEvents   = "events retrieved successfully"
	MessageSuccessDeleteEvent = "event deleted successfully"

	MessageFailedCreateEvent = "failed to create event"
	MessageFailedGetEvents   = "failed to retrieve events"
	MessageFailedDeleteEvent = "failed to delete event"

	ErrEventNotFound = errors.New("event not found")
	ErrInvalidDate   = errors.New("invalid event date")
	ErrNotEventOwner = errors.New("not authorized to delete this event")
)

type (
	CreateEventRequest struct {
		Title       string `json:"title" validate:"required"`
		Description string `json:"description" validate:"omitempty"`
		Date        string `json:"date" validate:"required"`
		Time        string `json:"time" validate:"required"`
		Venue       string `json:"venue" validate:"required"`
	}

	EventResponse struct {
		ID          string        `json:"id"`
		Title       string        `json:"title"`
		Description string        `json:"description,omitempty"`
		Date        time.Time     `json:"date"`
		Time        string        `json:"time"`
		Venue       string        `json:"venue"`
		Creator     *UserResponse `json:"creator,omitempty"`
		CreatedAt   time.Time     `json:"created_at"`
	}
)
