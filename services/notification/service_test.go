package notification

import (
	"context"
	"fmt"
	"testing"

	"smartpark/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeNotificationRepo struct {
	stored []models.Notification
}

func (f *fakeNotificationRepo) Create(n *models.Notification) error {
	f.stored = append(f.stored, *n)
	return nil
}

func (f *fakeNotificationRepo) GetByUser(userID string) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range f.stored {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) Delete(id, userID string) error {
	for i, n := range f.stored {
		if n.ID == id && n.UserID == userID {
			f.stored = append(f.stored[:i], f.stored[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("notification not found")
}

type fakeUserSource struct {
	user *models.User
}

func (f *fakeUserSource) Create(u *models.User) error                   { return nil }
func (f *fakeUserSource) GetByID(id string) (*models.User, error)       { return f.user, nil }
func (f *fakeUserSource) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (f *fakeUserSource) UpdateSetDocument(id string, doc bson.M) error { return nil }
func (f *fakeUserSource) GetAll() ([]models.User, error)                { return nil, nil }
func (f *fakeUserSource) Count() (int64, error)                         { return 0, nil }

func TestNotifyReserved(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := &DefaultNotificationService{
		Repo:  repo,
		Users: &fakeUserSource{user: &models.User{ID: "u1", CarPlate: "ABC 1234"}},
	}

	err := svc.NotifyReserved(context.Background(), "u1", "Downtown Central Garage", "A7", 1400, 4)
	if err != nil {
		t.Fatalf("NotifyReserved failed: %v", err)
	}
	if len(repo.stored) != 1 {
		t.Fatalf("stored = %d notifications, want 1", len(repo.stored))
	}

	n := repo.stored[0]
	if n.Type != models.NotificationReserved {
		t.Errorf("type = %q, want %q", n.Type, models.NotificationReserved)
	}
	if n.UserID != "u1" || n.IsRead {
		t.Errorf("notification header wrong: %+v", n)
	}
	if n.Data["carPlate"] != "ABC 1234" {
		t.Errorf("carPlate = %v", n.Data["carPlate"])
	}
	if n.Data["amountPaidCents"] != int64(1400) {
		t.Errorf("amountPaidCents = %v", n.Data["amountPaidCents"])
	}
	if n.Data["hoursLeft"] != 4 {
		t.Errorf("hoursLeft = %v", n.Data["hoursLeft"])
	}
}

func TestNotifyExpired(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := &DefaultNotificationService{
		Repo:  repo,
		Users: &fakeUserSource{user: &models.User{ID: "u1"}},
	}

	err := svc.NotifyExpired(context.Background(), "u1", "Uptown Plaza Lot", "B3")
	if err != nil {
		t.Fatalf("NotifyExpired failed: %v", err)
	}
	if len(repo.stored) != 1 {
		t.Fatalf("stored = %d notifications, want 1", len(repo.stored))
	}

	n := repo.stored[0]
	if n.Type != models.NotificationTimeExpired {
		t.Errorf("type = %q, want %q", n.Type, models.NotificationTimeExpired)
	}
	if n.Data["lotName"] != "Uptown Plaza Lot" || n.Data["slotId"] != "B3" {
		t.Errorf("data = %v", n.Data)
	}
}

func TestNotifyWithoutPushClient(t *testing.T) {
	// Push is nil when FCM is not configured; stored notifications must still
	// work and nothing may panic.
	svc := &DefaultNotificationService{
		Repo:  &fakeNotificationRepo{},
		Users: &fakeUserSource{user: &models.User{ID: "u1", FCMToken: "tok"}},
		Push:  nil,
	}
	if err := svc.NotifyReserved(context.Background(), "u1", "Lot", "A1", 100, 1); err != nil {
		t.Fatalf("NotifyReserved failed with nil push client: %v", err)
	}
}

func TestDismiss(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := &DefaultNotificationService{
		Repo:  repo,
		Users: &fakeUserSource{user: &models.User{ID: "u1"}},
	}

	if err := svc.NotifyExpired(context.Background(), "u1", "Lot", "A1"); err != nil {
		t.Fatalf("NotifyExpired failed: %v", err)
	}
	id := repo.stored[0].ID

	// Another user cannot dismiss it.
	if err := svc.Dismiss(id, "u2"); err == nil {
		t.Error("dismiss by non-owner succeeded")
	}

	if err := svc.Dismiss(id, "u1"); err != nil {
		t.Fatalf("Dismiss failed: %v", err)
	}
	remaining, _ := svc.ListForUser("u1")
	if len(remaining) != 0 {
		t.Errorf("notifications remaining = %d, want 0", len(remaining))
	}
}
