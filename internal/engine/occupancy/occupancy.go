// Package occupancy decides whether a structure is already held by a confirmed
// booking for a date range.
package occupancy

import "github.com/m04kA/SMC-StructureBooking/internal/domain"

// Overlaps проверяет, что два диапазона (границы включительно) имеют хотя бы один общий день
func Overlaps(a, b domain.DateRange) bool {
	aStart, aEnd := domain.DateOnly(a.Start), domain.DateOnly(a.End)
	bStart, bEnd := domain.DateOnly(b.Start), domain.DateOnly(b.End)
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// Conflicts возвращает подтверждённые бронирования структуры, пересекающиеся с rng
// Бронирования мероприятия excludeEventID пропускаются
func Conflicts(bookings []*domain.Booking, structureID int64, rng domain.DateRange, excludeEventID *int64) []*domain.Booking {
	var conflicts []*domain.Booking
	for _, b := range bookings {
		if b == nil || b.StructureID != structureID || !b.IsConfirmed() {
			continue
		}
		if excludeEventID != nil && b.EventID == *excludeEventID {
			continue
		}
		if Overlaps(b.Range(), rng) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts
}

// IsStructureOccupied проверяет, занята ли структура подтверждённым бронированием на даты rng
func IsStructureOccupied(bookings []*domain.Booking, structureID int64, rng domain.DateRange, excludeEventID *int64) bool {
	return len(Conflicts(bookings, structureID, rng, excludeEventID)) > 0
}
