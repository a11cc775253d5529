package user

import (
	"fmt"
	"testing"

	"smartpark/models"
	"smartpark/utils"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(u *models.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateSetDocument(id string, doc bson.M) error {
	u, ok := f.users[id]
	if !ok {
		return fmt.Errorf("user %s not found", id)
	}
	if v, ok := doc["tokenHash"].(string); ok {
		u.TokenHash = v
	}
	if v, ok := doc["carPlate"].(string); ok {
		u.CarPlate = v
	}
	if v, ok := doc["ecocashNumber"].(string); ok {
		u.EcocashNumber = v
	}
	if v, ok := doc["fcmToken"].(string); ok {
		u.FCMToken = v
	}
	return nil
}

func (f *fakeUserRepo) GetAll() ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) Count() (int64, error) {
	return int64(len(f.users)), nil
}

func TestRegisterAndAuthenticate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Register(RegistrationData{
		Email:    "driver@example.com",
		Username: "driver",
		Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("no token issued on registration")
	}
	if resp.User.Role != models.RoleUser {
		t.Errorf("new account role = %q, want %q", resp.User.Role, models.RoleUser)
	}
	if resp.User.PasswordHash == "hunter2hunter2" {
		t.Error("password stored in plain text")
	}

	// The issued token must carry the user's identity.
	userID, role, err := utils.ExtractIdentityFromToken(resp.Token)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if userID != resp.User.ID || role != models.RoleUser {
		t.Errorf("token identity = (%q, %q), want (%q, %q)", userID, role, resp.User.ID, models.RoleUser)
	}

	// The stored hash must match the issued token so the middleware's DB
	// fallback accepts it.
	stored, _ := repo.GetByID(resp.User.ID)
	if stored.TokenHash != utils.HashToken(resp.Token) {
		t.Error("persisted token hash does not match the issued token")
	}

	login, err := svc.Authenticate("driver@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if login.Token == "" {
		t.Error("no token issued on login")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	req := RegistrationData{Email: "taken@example.com", Username: "first", Password: "hunter2hunter2"}
	if _, err := svc.Register(req); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	req.Username = "second"
	if _, err := svc.Register(req); err == nil {
		t.Error("duplicate email accepted")
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	if _, err := svc.Register(RegistrationData{
		Email: "driver@example.com", Username: "driver", Password: "hunter2hunter2",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := svc.Authenticate("driver@example.com", "wrong-password"); err == nil {
		t.Error("wrong password accepted")
	}
	if _, err := svc.Authenticate("nobody@example.com", "hunter2hunter2"); err == nil {
		t.Error("unknown email accepted")
	}
}

func TestUpdateDetails(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Register(RegistrationData{
		Email: "driver@example.com", Username: "driver", Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if err := svc.UpdateDetails(resp.User.ID, "ABC 1234", "0771234567"); err != nil {
		t.Fatalf("UpdateDetails failed: %v", err)
	}
	if err := svc.UpdateFCMToken(resp.User.ID, "fcm-token-1"); err != nil {
		t.Fatalf("UpdateFCMToken failed: %v", err)
	}

	stored, _ := repo.GetByID(resp.User.ID)
	if stored.CarPlate != "ABC 1234" || stored.EcocashNumber != "0771234567" {
		t.Errorf("details not saved: %+v", stored)
	}
	if stored.FCMToken != "fcm-token-1" {
		t.Errorf("fcm token not saved: %q", stored.FCMToken)
	}
}
