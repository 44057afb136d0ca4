package dto

import (
	"time"
	"tzfield/internal/domains/event/model"
	"tzfield/shared/constant"
	gDto "tzfield/shared/dto"
)

type CreateEventRequest struct {
	Title    string `json:"title"     validate:"required,max=200"`
	Timezone string `json:"timezone"  validate:"omitempty,iana_tz"`
	StartsAt string `json:"starts_at" validate:"required"`
}

type UpdateEventRequest struct {
	Title    string `json:"title"     validate:"omitempty,max=200"`
	Timezone string `json:"timezone"  validate:"omitempty,iana_tz"`
	StartsAt string `json:"starts_at" validate:"omitempty"`
}

// EventResponse carries the localized view of an event: StartsAt is the
// stored instant converted to the record's display zone.
type EventResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Timezone string `json:"timezone"`
	StartsAt string `json:"starts_at"`
	gDto.Metadata
}

func (r *EventResponse) FromModel(event model.Event, localized time.Time) {
	r.ID = event.ID.String()
	r.Title = event.Title
	r.Timezone = event.Timezone.String()
	r.StartsAt = localized.Format(constant.DateFormat)
	r.Metadata.FromModel(event.Metadata)
}

type GetEventsResponse struct {
	Events    []EventResponse `json:"events"`
	Total     int             `json:"total"`
	TotalPage int             `json:"total_page"`
}
