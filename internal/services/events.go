package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	errortools "github.com/xdoubleu/essentia/v2/pkg/errortools"
	"pharmaevents.app/internal/dtos"
	"pharmaevents.app/internal/models"
	"pharmaevents.app/internal/repositories"
)

type EventService struct {
	events    *repositories.EventRepository
	uploadDir string
}

func (service *EventService) GetAll(
	ctx context.Context,
	filter dtos.EventFilterDto,
) ([]models.Event, error) {
	return service.events.GetAll(ctx, filter)
}

func (service *EventService) GetByID(
	ctx context.Context,
	id int64,
) (*models.Event, error) {
	return service.events.GetByID(ctx, id)
}

func (service *EventService) Create(
	ctx context.Context,
	user models.User,
	eventDto *dtos.EventDto,
	imageFile *string,
) (*models.Event, error) {
	event := eventFromDto(eventDto)
	event.UserID = user.ID
	event.Status = models.EventStatusActive
	event.ImageFile = imageFile

	if err := service.events.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

func (service *EventService) Update(
	ctx context.Context,
	user models.User,
	id int64,
	eventDto *dtos.EventDto,
	imageFile *string,
) (*models.Event, error) {
	existing, err := service.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = checkOwnership(user, existing); err != nil {
		return nil, err
	}

	event := eventFromDto(eventDto)
	event.ID = existing.ID
	event.UserID = existing.UserID
	event.Status = existing.Status
	event.ImageFile = existing.ImageFile
	if imageFile != nil {
		event.ImageFile = imageFile
	}

	if err = service.events.Update(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

func (service *EventService) Delete(
	ctx context.Context,
	user models.User,
	id int64,
) error {
	existing, err := service.events.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err = checkOwnership(user, existing); err != nil {
		return err
	}

	return service.events.Delete(ctx, id)
}

func (service *EventService) Approve(ctx context.Context, id int64) error {
	return service.events.SetStatus(ctx, id, models.EventStatusApproved)
}

func (service *EventService) Reject(ctx context.Context, id int64) error {
	return service.events.SetStatus(ctx, id, models.EventStatusRejected)
}

// SaveImage stores an uploaded event image and returns its stored
// filename.
func (service *EventService) SaveImage(
	src io.Reader,
	contentType string,
	filename string,
) (string, error) {
	stored := fmt.Sprintf(
		"%s%s",
		uuid.NewString(),
		extensionFor(contentType, filename),
	)

	if err := saveUpload(service.uploadDir, stored, src); err != nil {
		return "", err
	}

	return stored, nil
}

func checkOwnership(user models.User, event *models.Event) error {
	if user.IsAdmin() || event.UserID == user.ID {
		return nil
	}

	return errortools.NewUnauthorizedError(
		errors.New("only the creator or an admin may modify an event"),
	)
}

func eventFromDto(eventDto *dtos.EventDto) *models.Event {
	//nolint:exhaustruct //remaining fields are set by callers
	event := &models.Event{
		Name:          eventDto.Title,
		Description:   eventDto.Description,
		RequesterName: eventDto.RequesterName,
		EventTypeID:   eventDto.EventType(),
		CategoryID:    eventDto.Category(),
		IsOnline:      eventDto.Online(),
		Start:         eventDto.Start(),
		End:           eventDto.End(),
		Deadline:      eventDto.Deadline(),
	}

	if !event.IsOnline {
		if eventDto.Venue != "" {
			venue := eventDto.Venue
			event.Venue = &venue
		}
		governorate := eventDto.Governorate
		event.Governorate = &governorate
	}

	return event
}
