package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StructureBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-StructureBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-StructureBooking/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type passthroughTx struct{ calls int }

func (p *passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

type fakeRepo struct {
	bookings map[int64]*domain.Booking
	listErr  error
	updated  map[int64]domain.BookingStatus
}

func newFakeRepo(bookings ...*domain.Booking) *fakeRepo {
	r := &fakeRepo{bookings: make(map[int64]*domain.Booking), updated: make(map[int64]domain.BookingStatus)}
	for _, b := range bookings {
		r.bookings[b.ID] = b
	}
	return r
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeRepo) ListByEvent(_ context.Context, eventID int64) ([]*domain.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*domain.Booking, 0)
	for id := int64(1); id <= int64(len(f.bookings)); id++ {
		if b, ok := f.bookings[id]; ok && b.EventID == eventID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus, _ time.Time) error {
	f.updated[id] = status
	return nil
}

func day(d int) time.Time {
	return time.Date(2025, time.July, d, 0, 0, 0, 0, time.UTC)
}

func booking(id int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{ID: id, EventID: 10, StructureID: 7, StartDate: day(10), EndDate: day(15), Status: status}
}

func TestGetByID(t *testing.T) {
	confirmedAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	b := booking(1, domain.StatusConfirmed)
	b.ConfirmedAt = &confirmedAt
	svc := NewService(newFakeRepo(b), &passthroughTx{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-07-10", resp.StartDate)
	assert.Equal(t, "2025-07-15", resp.EndDate)
	assert.Equal(t, "confirmed", resp.Status)
	require.NotNil(t, resp.ConfirmedAt)
	assert.Equal(t, "2025-06-01T09:00:00Z", *resp.ConfirmedAt)

	_, err = svc.GetByID(context.Background(), 2)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestListByEvent(t *testing.T) {
	repo := newFakeRepo(booking(1, domain.StatusPending), booking(2, domain.StatusConfirmed), booking(3, domain.StatusPending))
	svc := NewService(repo, &passthroughTx{}, nopLogger{})

	all, err := svc.ListByEvent(context.Background(), &models.ListEventBookingsRequest{EventID: 10})
	require.NoError(t, err)
	assert.Len(t, all.Bookings, 3)

	pending, err := svc.ListByEvent(context.Background(), &models.ListEventBookingsRequest{EventID: 10, Status: ptr.Ptr("pending")})
	require.NoError(t, err)
	require.Len(t, pending.Bookings, 2)
	assert.Equal(t, int64(1), pending.Bookings[0].ID)
	assert.Equal(t, int64(3), pending.Bookings[1].ID)

	none, err := svc.ListByEvent(context.Background(), &models.ListEventBookingsRequest{EventID: 99})
	require.NoError(t, err)
	assert.NotNil(t, none.Bookings)
	assert.Empty(t, none.Bookings)

	_, err = svc.ListByEvent(context.Background(), &models.ListEventBookingsRequest{EventID: 10, Status: ptr.Ptr("done")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	repo.listErr = errors.New("connection reset")
	_, err = svc.ListByEvent(context.Background(), &models.ListEventBookingsRequest{EventID: 10})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestCancel(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.BookingStatus
		wantErr error
	}{
		{"pending", domain.StatusPending, nil},
		{"option", domain.StatusOption, nil},
		{"confirmed releases structure", domain.StatusConfirmed, nil},
		{"already cancelled", domain.StatusCancelled, ErrCannotCancel},
		{"rejected", domain.StatusRejected, ErrCannotCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo(booking(1, tt.status))
			tx := &passthroughTx{}
			svc := NewService(repo, tx, nopLogger{})

			err := svc.Cancel(context.Background(), 1)
			assert.Equal(t, 1, tx.calls)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.updated)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.StatusCancelled, repo.updated[1])
		})
	}
}

func TestReject(t *testing.T) {
	repo := newFakeRepo(booking(1, domain.StatusOption), booking(2, domain.StatusConfirmed))
	svc := NewService(repo, &passthroughTx{}, nopLogger{})

	require.NoError(t, svc.Reject(context.Background(), 1))
	assert.Equal(t, domain.StatusRejected, repo.updated[1])

	assert.ErrorIs(t, svc.Reject(context.Background(), 2), ErrCannotReject)
	assert.ErrorIs(t, svc.Reject(context.Background(), 3), ErrBookingNotFound)
	assert.ErrorIs(t, svc.Reject(context.Background(), 0), ErrInvalidInput)
}
