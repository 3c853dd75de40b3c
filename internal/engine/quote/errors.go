package quote

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidOverride    = errors.New("quote: invalid override")
	ErrInvalidEventWindow = errors.New("quote: end_date must be later than start_date")
	ErrUnsupportedInput   = errors.New("quote: unsupported input shape")
)

var (
	ErrUnknownParticipantUnit = fmt.Errorf("%w: unknown participant unit", ErrInvalidOverride)
	ErrNegativeParticipants   = fmt.Errorf("%w: participant count must not be negative", ErrInvalidOverride)
	ErrNonPositiveDays        = fmt.Errorf("%w: days must be a positive integer", ErrInvalidOverride)
	ErrNonPositiveNights      = fmt.Errorf("%w: nights must be a positive integer", ErrInvalidOverride)
	ErrDurationMismatch       = fmt.Errorf("%w: days must equal nights + 1", ErrInvalidOverride)
	ErrDaysImplyNoNights      = fmt.Errorf("%w: days implies zero or negative nights", ErrInvalidOverride)
	ErrUnknownPricingModel    = fmt.Errorf("%w: unknown pricing model", ErrUnsupportedInput)
	ErrQuantityOutOfRange     = fmt.Errorf("%w: participants times duration is out of range", ErrUnsupportedInput)
)
