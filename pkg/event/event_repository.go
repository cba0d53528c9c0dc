package event

import (
	"context"
	"mealbridge-backend/entities"

	"gorm.io/gorm"
)

type (
	EventRepository interface {
		CreateEvent(ctx context.Context, event *entities.Event) error
		GetEventByID(ctx context.Context, id string) (*entities.Event, error)
		GetEvents(ctx context.Context) ([]*entities.Event, error)
		DeleteEvent(ctx context.Context, id string) error
	}

	eventRepository struct {
		db *gorm.DB
	}
)

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) CreateEvent(ctx context.Context, event *entities.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) GetEventByID(ctx context.Context, id string) (*entities.Event, error) {
	var event entities.Event
	if err := r.db.WithContext(ctx).
		Preload("Creator").
		Where("id = ?", id).
		First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) GetEvents(ctx context.Context) ([]*entities.Event, error) {
	var events []*entities.Event

	if err := r.db.WithContext(ctx).
		Preload("Creator").
		Order("date ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

func (r *eventRepository) DeleteEvent(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Event{}).Error
}
