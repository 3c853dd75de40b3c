package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
	eventRepo "github.com/m04kA/SMC-StructureBooking/internal/infra/storage/event"
	structureRepo "github.com/m04kA/SMC-StructureBooking/internal/infra/storage/structure"
	"github.com/m04kA/SMC-StructureBooking/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeEvents struct{ events map[int64]*domain.Event }

func (f *fakeEvents) GetByID(_ context.Context, id int64) (*domain.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, eventRepo.ErrEventNotFound
	}
	return e, nil
}

type fakeStructures struct{ err error }

func (f *fakeStructures) GetByID(_ context.Context, id int64) (*domain.Structure, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Structure{ID: id, Name: "Base Scout"}, nil
}

type fakeBookings struct {
	confirmed []*domain.Booking
	created   []*domain.Booking
	createErr error
}

func (f *fakeBookings) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	b.ID = int64(len(f.created) + 1)
	f.created = append(f.created, b)
	return b, nil
}

func (f *fakeBookings) ListConfirmedOverlapping(context.Context, int64, domain.DateRange) ([]*domain.Booking, error) {
	return f.confirmed, nil
}

func day(d int) time.Time {
	return time.Date(2025, time.July, d, 0, 0, 0, 0, time.UTC)
}

func newUseCase(bookings *fakeBookings, structures *fakeStructures) *UseCase {
	events := &fakeEvents{events: map[int64]*domain.Event{
		10: {ID: 10, Branch: domain.BranchEG, StartDate: day(10), EndDate: day(17)},
	}}
	return NewUseCase(bookings, events, structures, nopLogger{})
}

func TestExecute_DefaultsToEventRange(t *testing.T) {
	bookings := &fakeBookings{}
	uc := newUseCase(bookings, &fakeStructures{})

	resp, err := uc.Execute(context.Background(), &Request{EventID: 10, StructureID: 7})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, day(10), resp.StartDate)
	assert.Equal(t, day(17), resp.EndDate)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.False(t, resp.Occupied)
	require.Len(t, bookings.created, 1)
}

func TestExecute_ExplicitRangeAndOption(t *testing.T) {
	bookings := &fakeBookings{}
	uc := newUseCase(bookings, &fakeStructures{})

	resp, err := uc.Execute(context.Background(), &Request{
		EventID:     10,
		StructureID: 7,
		StartDate:   ptr.Ptr(day(11).Add(15 * time.Hour)),
		EndDate:     ptr.Ptr(day(12)),
		Status:      ptr.Ptr("option"),
		Notes:       ptr.Ptr("arrive after lunch"),
	})
	require.NoError(t, err)

	assert.Equal(t, day(11), resp.StartDate)
	assert.Equal(t, day(12), resp.EndDate)
	assert.Equal(t, string(domain.StatusOption), resp.Status)
	assert.Equal(t, "arrive after lunch", *resp.Notes)
}

func TestExecute_FlagsOccupiedStructure(t *testing.T) {
	bookings := &fakeBookings{confirmed: []*domain.Booking{
		{ID: 5, EventID: 99, StructureID: 7, StartDate: day(16), EndDate: day(20), Status: domain.StatusConfirmed},
	}}
	uc := newUseCase(bookings, &fakeStructures{})

	resp, err := uc.Execute(context.Background(), &Request{EventID: 10, StructureID: 7})
	require.NoError(t, err)
	assert.True(t, resp.Occupied)
	assert.Len(t, bookings.created, 1)
}

func TestExecute_OwnConfirmedBookingIsNotOccupied(t *testing.T) {
	bookings := &fakeBookings{confirmed: []*domain.Booking{
		{ID: 5, EventID: 10, StructureID: 7, StartDate: day(10), EndDate: day(17), Status: domain.StatusConfirmed},
	}}
	uc := newUseCase(bookings, &fakeStructures{})

	resp, err := uc.Execute(context.Background(), &Request{EventID: 10, StructureID: 7})
	require.NoError(t, err)
	assert.False(t, resp.Occupied)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name       string
		req        *Request
		structures *fakeStructures
		createErr  error
		wantErr    error
	}{
		{"invalid event id", &Request{EventID: 0, StructureID: 7}, &fakeStructures{}, nil, ErrInvalidInput},
		{"invalid structure id", &Request{EventID: 10, StructureID: -1}, &fakeStructures{}, nil, ErrInvalidInput},
		{"confirmed status not allowed", &Request{EventID: 10, StructureID: 7, Status: ptr.Ptr("confirmed")}, &fakeStructures{}, nil, ErrInvalidStatus},
		{"event not found", &Request{EventID: 11, StructureID: 7}, &fakeStructures{}, nil, ErrEventNotFound},
		{"structure not found", &Request{EventID: 10, StructureID: 7}, &fakeStructures{err: structureRepo.ErrStructureNotFound}, nil, ErrStructureNotFound},
		{"structure lookup fails", &Request{EventID: 10, StructureID: 7}, &fakeStructures{err: structureRepo.ErrExecQuery}, nil, ErrInternal},
		{"end before start", &Request{EventID: 10, StructureID: 7, StartDate: ptr.Ptr(day(14)), EndDate: ptr.Ptr(day(13))}, &fakeStructures{}, nil, ErrInvalidRange},
		{"create fails", &Request{EventID: 10, StructureID: 7}, &fakeStructures{}, errors.New("insert failed"), ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(&fakeBookings{createErr: tt.createErr}, tt.structures)

			resp, err := uc.Execute(context.Background(), tt.req)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name       string
		req        *Request
		wantStatus domain.BookingStatus
		wantErr    error
	}{
		{"default status", &Request{EventID: 1, StructureID: 7}, domain.StatusPending, nil},
		{"option", &Request{EventID: 1, StructureID: 7, Status: ptr.Ptr("option")}, domain.StatusOption, nil},
		{"confirmed is not allowed", &Request{EventID: 1, StructureID: 7, Status: ptr.Ptr("confirmed")}, "", ErrInvalidStatus},
		{"missing event", &Request{StructureID: 7}, "", ErrInvalidInput},
		{"missing structure", &Request{EventID: 1}, "", ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := validateRequest(tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}
