package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
	"github.com/m04kA/SMC-StructureBooking/pkg/ptr"
)

// validateRequest проверяет идентификаторы и возвращает начальный статус
func validateRequest(req *Request) (domain.BookingStatus, error) {
	if req.EventID <= 0 {
		return "", fmt.Errorf("%w: eventID must be positive", ErrInvalidInput)
	}
	if req.StructureID <= 0 {
		return "", fmt.Errorf("%w: structureID must be positive", ErrInvalidInput)
	}
	return resolveStatus(req.Status)
}

// resolveStatus возвращает начальный статус бронирования
func resolveStatus(status *string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(ptr.Deref(status, string(domain.StatusPending)))
	switch s {
	case domain.StatusPending, domain.StatusOption:
		return s, nil
	}
	return "", fmt.Errorf("%w: got %q", ErrInvalidStatus, s)
}

// resolveRange подставляет даты мероприятия вместо незаданных границ
func resolveRange(req *Request, event *domain.Event) (domain.DateRange, error) {
	rng := domain.DateRange{
		Start: domain.DateOnly(ptr.Deref(req.StartDate, event.StartDate)),
		End:   domain.DateOnly(ptr.Deref(req.EndDate, event.EndDate)),
	}
	if !rng.IsValid() {
		return domain.DateRange{}, fmt.Errorf("%w: %s..%s", ErrInvalidRange,
			formatDate(rng.Start), formatDate(rng.End))
	}
	return rng, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "<empty>"
	}
	return t.Format(domain.DateFormat)
}
