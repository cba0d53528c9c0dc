package event

import (
	"context"
	"errors"
	"mealbridge-backend/domain"
	"mealbridge-backend/entities"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	EventService interface {
		CreateEvent(ctx context.Context, req domain.CreateEventRequest, userID string) (domain.EventResponse, error)
		GetEvents(ctx context.Context) ([]domain.EventResponse, error)
		GetEventByID(ctx context.Context, id string) (domain.EventResponse, error)
		DeleteEvent(ctx context.Context, id string, userID string, role string) error
	}

	eventService struct {
		eventRepository EventRepository
	}
)

func NewEventService(eventRepository EventRepository) EventService {
	return &eventService{eventRepository: eventRepository}
}

func (s *eventService) CreateEvent(ctx context.Context, req domain.CreateEventRequest, userID string) (domain.EventResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.EventResponse{}, domain.ErrParseUUID
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.EventResponse{}, domain.ErrInvalidDate
	}

	event := &entities.Event{
		ID:          uuid.New(),
		CreatedBy:   userUUID,
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Time:        req.Time,
		Venue:       req.Venue,
	}

	if err := s.eventRepository.CreateEvent(ctx, event); err != nil {
		return domain.EventResponse{}, err
	}

	return toEventResponse(event), nil
}

func (s *eventService) GetEvents(ctx context.Context) ([]domain.EventResponse, error) {
	events, err := s.eventRepository.GetEvents(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.EventResponse, 0, len(events))
	for _, event := range events {
		response = append(response, toEventResponse(event))
	}

	return response, nil
}

func (s *eventService) GetEventByID(ctx context.Context, id string) (domain.EventResponse, error) {
	event, err := s.eventRepository.GetEventByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.EventResponse{}, domain.ErrEventNotFound
		}
		return domain.EventResponse{}, err
	}

	return toEventResponse(event), nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string, userID string, role string) error {
	event, err := s.eventRepository.GetEventByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrEventNotFound
		}
		return err
	}

	if event.CreatedBy.String() != userID && role != domain.RoleAdmin {
		return domain.ErrNotEventOwner
	}

	return s.eventRepository.DeleteEvent(ctx, id)
}

func toEventResponse(event *entities.Event) domain.EventResponse {
	response := domain.EventResponse{
		ID:          event.ID.String(),
		Title:       event.Title,
		Description: event.Description,
		Date:        event.Date,
		Time:        event.Time,
		Venue:       event.Venue,
		CreatedAt:   event.CreatedAt,
	}

	if event.Creator != nil {
		response.Creator = &domain.UserResponse{
			ID:    event.Creator.ID.String(),
			Name:  event.Creator.Name,
			Email: event.Creator.Email,
			Role:  event.Creator.Role,
		}
	}

	return response
}
