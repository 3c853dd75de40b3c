package suggest

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
)

type loadDelta struct {
	day   time.Time
	delta int
}

// PeakLoad возвращает максимальное число людей, одновременно находящихся в структуре
// в какой-либо день, с учётом частично пересекающихся сегментов
// Люди уезжают на следующий день после окончания сегмента, поэтому в один день
// отъезд учитывается раньше заезда
func PeakLoad(segments []domain.BranchSegment) int {
	deltas := make([]loadDelta, 0, len(segments)*2)
	for i := range segments {
		seg := &segments[i]
		n := seg.PeopleCount()
		if n <= 0 || !seg.Range().IsValid() {
			continue
		}
		deltas = append(deltas,
			loadDelta{day: domain.DateOnly(seg.StartDate), delta: n},
			loadDelta{day: domain.DateOnly(seg.EndDate).AddDate(0, 0, 1), delta: -n},
		)
	}

	// При равной дате отрицательные изменения идут первыми
	sort.Slice(deltas, func(i, j int) bool {
		if !deltas[i].day.Equal(deltas[j].day) {
			return deltas[i].day.Before(deltas[j].day)
		}
		return deltas[i].delta < deltas[j].delta
	})

	// Накопительная сумма, максимум которой и есть пик
	current, peak := 0, 0
	for _, d := range deltas {
		current += d.delta
		if current > peak {
			peak = current
		}
	}
	return peak
}

// segmentsByAccommodation делит сегменты на размещение в помещении и в палатках
func segmentsByAccommodation(segments []domain.BranchSegment) (indoor, tents []domain.BranchSegment) {
	for _, seg := range segments {
		switch seg.Accommodation {
		case domain.AccommodationIndoor:
			indoor = append(indoor, seg)
		case domain.AccommodationTents:
			tents = append(tents, seg)
		}
	}
	return indoor, tents
}
