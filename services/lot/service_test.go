package lot

import (
	"fmt"
	"testing"

	"smartpark/models"
)

type fakeLotRepo struct {
	lots []models.ParkingLot
}

func (f *fakeLotRepo) Create(lot *models.ParkingLot) error {
	f.lots = append(f.lots, *lot)
	return nil
}

func (f *fakeLotRepo) Update(lot *models.ParkingLot) error {
	for i := range f.lots {
		if f.lots[i].ID == lot.ID {
			f.lots[i] = *lot
			return nil
		}
	}
	return fmt.Errorf("lot %s not found", lot.ID)
}

func (f *fakeLotRepo) Delete(id string) error {
	for i := range f.lots {
		if f.lots[i].ID == id {
			f.lots = append(f.lots[:i], f.lots[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("lot %s not found", id)
}

func (f *fakeLotRepo) GetByID(id string) (*models.ParkingLot, error) {
	for i := range f.lots {
		if f.lots[i].ID == id {
			lot := f.lots[i]
			return &lot, nil
		}
	}
	return nil, nil
}

func (f *fakeLotRepo) GetAll() ([]models.ParkingLot, error) {
	return append([]models.ParkingLot(nil), f.lots...), nil
}

func (f *fakeLotRepo) Count() (int64, error) {
	return int64(len(f.lots)), nil
}

func TestSeedPopulatesEmptyCatalog(t *testing.T) {
	repo := &fakeLotRepo{}
	svc := &DefaultLotService{Repo: repo}

	msg, err := svc.Seed()
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if msg != "Successfully initialized database with sample parking lots." {
		t.Errorf("unexpected message: %q", msg)
	}
	if len(repo.lots) != 2 {
		t.Fatalf("lots = %d, want 2", len(repo.lots))
	}

	downtown, uptown := repo.lots[0], repo.lots[1]
	if downtown.Name != "Downtown Central Garage" || len(downtown.Slots) != 50 {
		t.Errorf("downtown: name=%q slots=%d", downtown.Name, len(downtown.Slots))
	}
	if downtown.HourlyRateCents != 500 {
		t.Errorf("downtown rate = %d cents, want 500", downtown.HourlyRateCents)
	}
	if uptown.Name != "Uptown Plaza Lot" || len(uptown.Slots) != 30 {
		t.Errorf("uptown: name=%q slots=%d", uptown.Name, len(uptown.Slots))
	}
	if uptown.HourlyRateCents != 350 {
		t.Errorf("uptown rate = %d cents, want 350", uptown.HourlyRateCents)
	}

	// Every fifth uptown slot starts occupied.
	occupied := uptown.OccupiedCount()
	if occupied != 6 {
		t.Errorf("uptown occupied = %d, want 6", occupied)
	}

	// Slot ids are unique within each lot.
	for _, l := range repo.lots {
		seen := make(map[string]bool, len(l.Slots))
		for _, s := range l.Slots {
			if seen[s.ID] {
				t.Errorf("lot %s has duplicate slot id %s", l.Name, s.ID)
			}
			seen[s.ID] = true
		}
	}
}

func TestSeedIsNoOpWhenLotsExist(t *testing.T) {
	repo := &fakeLotRepo{lots: []models.ParkingLot{{ID: "existing"}}}
	svc := &DefaultLotService{Repo: repo}

	msg, err := svc.Seed()
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if msg != "Database has already been initialized." {
		t.Errorf("unexpected message: %q", msg)
	}
	if len(repo.lots) != 1 {
		t.Errorf("seed duplicated data: lots = %d", len(repo.lots))
	}
}

func TestCreateBuildsNamedSlots(t *testing.T) {
	repo := &fakeLotRepo{}
	svc := &DefaultLotService{Repo: repo}

	created, err := svc.Create(LotInput{
		Name:            "Test Lot",
		Address:         "1 Test Way",
		HourlyRateCents: 200,
		SlotCount:       3,
		SlotPrefix:      "C",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(created.Slots) != 3 {
		t.Fatalf("slots = %d, want 3", len(created.Slots))
	}
	for i, want := range []string{"C1", "C2", "C3"} {
		if created.Slots[i].ID != want {
			t.Errorf("slot[%d] = %q, want %q", i, created.Slots[i].ID, want)
		}
		if created.Slots[i].IsOccupied {
			t.Errorf("new slot %s starts occupied", created.Slots[i].ID)
		}
	}
}

func TestCreateRejectsBadInput(t *testing.T) {
	svc := &DefaultLotService{Repo: &fakeLotRepo{}}

	if _, err := svc.Create(LotInput{Name: "x", Address: "y", HourlyRateCents: 0, SlotCount: 5}); err == nil {
		t.Error("zero rate accepted")
	}
	if _, err := svc.Create(LotInput{Name: "x", Address: "y", HourlyRateCents: 100, SlotCount: 0}); err == nil {
		t.Error("zero slot count accepted")
	}
}

func TestUpdateKeepsSlots(t *testing.T) {
	repo := &fakeLotRepo{}
	svc := &DefaultLotService{Repo: repo}

	created, err := svc.Create(LotInput{
		Name: "Old Name", Address: "Old Addr", HourlyRateCents: 100, SlotCount: 4,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	repo.lots[0].Slots[1].IsOccupied = true

	updated, err := svc.Update(created.ID, LotInput{
		Name: "New Name", Address: "New Addr", HourlyRateCents: 250,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Name != "New Name" || updated.HourlyRateCents != 250 {
		t.Errorf("metadata not updated: %+v", updated)
	}
	if len(updated.Slots) != 4 || !updated.Slots[1].IsOccupied {
		t.Error("update disturbed the slots array")
	}
}
