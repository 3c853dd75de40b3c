package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListEventBookingsRequest запрос на получение бронирований мероприятия
type ListEventBookingsRequest struct {
	EventID int64   `json:"eventId"`
	Status  *string `json:"status,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64   `json:"id"`
	EventID     int64   `json:"eventId"`
	StructureID int64   `json:"structureId"`
	StartDate   string  `json:"startDate"` // "2025-07-10"
	EndDate     string  `json:"endDate"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
	ConfirmedAt *string `json:"confirmedAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:          b.ID,
		EventID:     b.EventID,
		StructureID: b.StructureID,
		StartDate:   b.StartDate.Format(domain.DateFormat),
		EndDate:     b.EndDate.Format(domain.DateFormat),
		Status:      string(b.Status),
		Notes:       b.Notes,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}

	if b.ConfirmedAt != nil {
		confirmed := b.ConfirmedAt.Format(time.RFC3339)
		resp.ConfirmedAt = &confirmed
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusOption,
		domain.StatusConfirmed,
		domain.StatusRejected,
		domain.StatusCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
