package quote

import (
	"fmt"
	"math"
)

const (
	overrideKeyParticipants = "participants"
	overrideKeyDays         = "days"
	overrideKeyNights       = "nights"
)

// Overrides replace parts of the event when computing a quote.
// Nil fields keep the event's values.
type Overrides struct {
	Participants map[string]int
	Days         *int
	Nights       *int
}

// IsEmpty возвращает true, если ничего не переопределено
func (o Overrides) IsEmpty() bool {
	return len(o.Participants) == 0 && o.Days == nil && o.Nights == nil
}

// ParseOverrides приводит декодированный набор ключ/значение к Overrides
// Здесь проверяется только форма и разрядность, допустимость значений проверяет Calculate
func ParseOverrides(raw map[string]any) (Overrides, error) {
	var o Overrides

	for key, value := range raw {
		if value == nil {
			continue
		}

		switch key {
		case overrideKeyParticipants:
			participants, err := parseParticipants(value)
			if err != nil {
				return Overrides{}, err
			}
			o.Participants = participants
		case overrideKeyDays:
			n, err := toInt(value)
			if err != nil {
				return Overrides{}, fmt.Errorf("%w: days: %v", ErrUnsupportedInput, err)
			}
			o.Days = &n
		case overrideKeyNights:
			n, err := toInt(value)
			if err != nil {
				return Overrides{}, fmt.Errorf("%w: nights: %v", ErrUnsupportedInput, err)
			}
			o.Nights = &n
		default:
			return Overrides{}, fmt.Errorf("%w: unknown override %q", ErrUnsupportedInput, key)
		}
	}

	return o, nil
}

func parseParticipants(value any) (map[string]int, error) {
	switch v := value.(type) {
	case map[string]int:
		out := make(map[string]int, len(v))
		for k, raw := range v {
			n, err := toInt(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: participants.%s: %v", ErrUnsupportedInput, k, err)
			}
			out[k] = n
		}
		return out, nil
	case map[string]any:
		out := make(map[string]int, len(v))
		for k, raw := range v {
			n, err := toInt(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: participants.%s: %v", ErrUnsupportedInput, k, err)
			}
			out[k] = n
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: participants must be an object, got %T", ErrUnsupportedInput, value)
	}
}

// maxCount ограничивает числа из переопределений, чтобы произведения количеств не переполняли int
const maxCount = math.MaxInt32

func toInt(value any) (int, error) {
	var n int64
	switch v := value.(type) {
	case int:
		n = int64(v)
	case int32:
		n = int64(v)
	case int64:
		n = v
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, fmt.Errorf("%v is not an integer", v)
		}
		if math.Abs(v) > maxCount {
			return 0, fmt.Errorf("%v is out of range", v)
		}
		n = int64(v)
	default:
		return 0, fmt.Errorf("unexpected type %T", value)
	}
	if n > maxCount || n < -maxCount {
		return 0, fmt.Errorf("%d is out of range", n)
	}
	return int(n), nil
}
