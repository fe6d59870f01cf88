package booking

import (
	"context"
	"fmt"
	"testing"

	"cleansync/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingRepo struct {
	bookings    map[string]*models.Booking
	stageWrites int
	deletes     int
}

func newFakeBookingRepo(bookings ...*models.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: map[string]*models.Booking{}}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	r.bookings[booking.ID] = booking
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	b, ok := r.bookings[bookingID]
	if !ok {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	snapshot := *b
	return &snapshot, nil
}

func (r *fakeBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateScheduledAt(ctx context.Context, bookingID, scheduledAt string) error {
	b, ok := r.bookings[bookingID]
	if !ok {
		return fmt.Errorf("booking %s not found", bookingID)
	}
	b.ScheduledAt = scheduledAt
	return nil
}

func (r *fakeBookingRepo) UpdateProgressStage(ctx context.Context, bookingID, stage string) error {
	b, ok := r.bookings[bookingID]
	if !ok {
		return fmt.Errorf("booking %s not found", bookingID)
	}
	b.ProgressStage = stage
	r.stageWrites++
	return nil
}

func (r *fakeBookingRepo) Delete(ctx context.Context, bookingID string) error {
	if _, ok := r.bookings[bookingID]; !ok {
		return fmt.Errorf("booking %s not found", bookingID)
	}
	delete(r.bookings, bookingID)
	r.deletes++
	return nil
}

type fakeNotifier struct {
	notified []string // user IDs, in order
}

func (n *fakeNotifier) Notify(ctx context.Context, userID, ntype, title, message string, data map[string]string) error {
	n.notified = append(n.notified, userID)
	return nil
}

func (n *fakeNotifier) SendPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	return nil
}

func (n *fakeNotifier) List(ctx context.Context, userID string) ([]models.Notification, error) {
	return nil, nil
}

func (n *fakeNotifier) SetRead(ctx context.Context, userID, notificationID string, read bool) error {
	return nil
}

func (n *fakeNotifier) Delete(ctx context.Context, userID, notificationID string) error {
	return nil
}

func newStageTestService(repo *fakeBookingRepo, notifier *fakeNotifier) *DefaultSessionService {
	return &DefaultSessionService{Repo: repo, NotificationSvc: notifier}
}

func TestUpdateProgressStage(t *testing.T) {
	ctx := context.Background()

	t.Run("owner advances the stage", func(t *testing.T) {
		repo := newFakeBookingRepo(&models.Booking{ID: "b1", UserID: "alice", ProgressStage: models.StageBooked})
		notifier := &fakeNotifier{}
		svc := newStageTestService(repo, notifier)

		updated, err := svc.UpdateProgressStage(ctx, "b1", "alice", models.StageCleaned)
		require.NoError(t, err)
		assert.Equal(t, models.StageCleaned, updated.ProgressStage)
		assert.Equal(t, models.StageCleaned, repo.bookings["b1"].ProgressStage)
		assert.Equal(t, []string{"alice"}, notifier.notified)
	})

	t.Run("another user cannot advance the stage", func(t *testing.T) {
		repo := newFakeBookingRepo(&models.Booking{ID: "b1", UserID: "alice", ProgressStage: models.StageBooked})
		notifier := &fakeNotifier{}
		svc := newStageTestService(repo, notifier)

		_, err := svc.UpdateProgressStage(ctx, "b1", "mallory", models.StageCleaned)
		assert.Error(t, err)
		assert.True(t, IsBookingError(err))
		assert.Equal(t, models.StageBooked, repo.bookings["b1"].ProgressStage)
		assert.Zero(t, repo.stageWrites)
		assert.Empty(t, notifier.notified)
	})

	t.Run("missing caller identity is rejected", func(t *testing.T) {
		repo := newFakeBookingRepo(&models.Booking{ID: "b1", UserID: "alice", ProgressStage: models.StageBooked})
		notifier := &fakeNotifier{}
		svc := newStageTestService(repo, notifier)

		_, err := svc.UpdateProgressStage(ctx, "b1", "", models.StageCleaned)
		assert.Error(t, err)
		assert.Equal(t, models.StageBooked, repo.bookings["b1"].ProgressStage)
		assert.Empty(t, notifier.notified)
	})

	t.Run("unknown stage is rejected", func(t *testing.T) {
		repo := newFakeBookingRepo(&models.Booking{ID: "b1", UserID: "alice", ProgressStage: models.StageBooked})
		svc := newStageTestService(repo, &fakeNotifier{})

		_, err := svc.UpdateProgressStage(ctx, "b1", "alice", "ironed")
		assert.Error(t, err)
		assert.True(t, IsBookingError(err))
		assert.Zero(t, repo.stageWrites)
	})
}

func TestCancelBookingOwnership(t *testing.T) {
	ctx := context.Background()
	repo := newFakeBookingRepo(&models.Booking{ID: "b1", UserID: "alice"})
	notifier := &fakeNotifier{}
	svc := newStageTestService(repo, notifier)

	err := svc.CancelBooking(ctx, "b1", "mallory")
	assert.Error(t, err)
	assert.True(t, IsBookingError(err))
	assert.Zero(t, repo.deletes)

	require.NoError(t, svc.CancelBooking(ctx, "b1", "alice"))
	assert.Equal(t, 1, repo.deletes)
	assert.Equal(t, []string{"alice"}, notifier.notified)
}
