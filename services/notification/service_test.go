package notification

import (
	"context"
	"fmt"
	"testing"

	"cleansync/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationRepo struct {
	records map[string]*models.Notification
}

func newFakeNotificationRepo(records ...*models.Notification) *fakeNotificationRepo {
	repo := &fakeNotificationRepo{records: map[string]*models.Notification{}}
	for _, n := range records {
		repo.records[n.ID] = n
	}
	return repo
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	r.records[n.ID] = n
	return nil
}

func (r *fakeNotificationRepo) ListByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range r.records {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) SetRead(ctx context.Context, userID, notificationID string, read bool) error {
	n, ok := r.records[notificationID]
	if !ok || n.UserID != userID {
		return fmt.Errorf("notification %s not found", notificationID)
	}
	n.Read = read
	return nil
}

func (r *fakeNotificationRepo) Delete(ctx context.Context, userID, notificationID string) error {
	n, ok := r.records[notificationID]
	if !ok || n.UserID != userID {
		return fmt.Errorf("notification %s not found", notificationID)
	}
	delete(r.records, notificationID)
	return nil
}

func TestSetReadScopedToOwner(t *testing.T) {
	ctx := context.Background()
	repo := newFakeNotificationRepo(&models.Notification{ID: "n1", UserID: "alice"})
	svc := &DefaultNotificationService{Repo: repo}

	require.NoError(t, svc.SetRead(ctx, "alice", "n1", true))
	assert.True(t, repo.records["n1"].Read)

	err := svc.SetRead(ctx, "mallory", "n1", false)
	assert.Error(t, err)
	assert.True(t, repo.records["n1"].Read)
}

func TestDeleteScopedToOwner(t *testing.T) {
	ctx := context.Background()
	repo := newFakeNotificationRepo(&models.Notification{ID: "n1", UserID: "alice"})
	svc := &DefaultNotificationService{Repo: repo}

	err := svc.Delete(ctx, "mallory", "n1")
	assert.Error(t, err)
	assert.Contains(t, repo.records, "n1")

	require.NoError(t, svc.Delete(ctx, "alice", "n1"))
	assert.NotContains(t, repo.records, "n1")
}
