package domain

import "time"

// BookingStatus represents the status of a structure booking for an event
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusOption    BookingStatus = "option"
	StatusConfirmed BookingStatus = "confirmed"
	StatusRejected  BookingStatus = "rejected"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking links an event to a candidate structure for a date range
type Booking struct {
	ID          int64
	EventID     int64
	StructureID int64
	StartDate   time.Time
	EndDate     time.Time
	Status      BookingStatus
	Notes       *string

	ConfirmedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Range returns the booking's date range
func (b *Booking) Range() DateRange {
	return DateRange{Start: b.StartDate, End: b.EndDate}
}

// IsConfirmed returns true if the booking holds the structure
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// CanBeConfirmed returns true if the booking may transition to confirmed
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending || b.Status == StatusOption
}

// IsClosed returns true if the booking was rejected or cancelled
func (b *Booking) IsClosed() bool {
	return b.Status == StatusRejected || b.Status == StatusCancelled
}
