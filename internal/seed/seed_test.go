package seed

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mergington-high/activity-directory/internal/models"
	"github.com/mergington-high/activity-directory/internal/store"
)

func setupStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&models.Activity{}, &models.Participant{}); err != nil {
		t.Fatalf("failed to auto migrate: %v", err)
	}

	return store.New(db)
}

func TestRunIsIdempotent(t *testing.T) {
	s := setupStore(t)

	if err := Run(s); err != nil {
		t.Fatalf("first Run returned error: %v", err)
	}
	if err := Run(s); err != nil {
		t.Fatalf("second Run returned error: %v", err)
	}

	activities, err := s.ListActivities()
	if err != nil {
		t.Fatalf("ListActivities returned error: %v", err)
	}
	if len(activities) != len(Catalog) {
		t.Fatalf("expected %d activities, got %d", len(Catalog), len(activities))
	}

	for _, activity := range activities {
		want, ok := Catalog[activity.Name]
		if !ok {
			t.Errorf("unexpected activity %q in store", activity.Name)
			continue
		}
		if activity.Description != want.Description {
			t.Errorf("%s: expected description %q, got %q", activity.Name, want.Description, activity.Description)
		}
		if activity.MaxParticipants != want.MaxParticipants {
			t.Errorf("%s: expected capacity %d, got %d", activity.Name, want.MaxParticipants, activity.MaxParticipants)
		}
		if len(activity.Participants) != len(want.Participants) {
			t.Errorf("%s: expected %d participants, got %d", activity.Name, len(want.Participants), len(activity.Participants))
		}
	}
}

func TestCatalogRespectsCapacity(t *testing.T) {
	s := setupStore(t)

	if err := Run(s); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	for name, details := range Catalog {
		count, err := s.CountParticipants(name)
		if err != nil {
			t.Fatalf("CountParticipants(%q) returned error: %v", name, err)
		}
		if count > int64(details.MaxParticipants) {
			t.Errorf("%s: seeded %d participants over capacity %d", name, count, details.MaxParticipants)
		}
	}
}

func TestRunUpdatesExistingActivity(t *testing.T) {
	s := setupStore(t)

	// Pre-existing row with stale details gets overwritten by the catalog
	if err := s.UpsertActivity("Chess Club", "old description", "old schedule", 2); err != nil {
		t.Fatalf("UpsertActivity returned error: %v", err)
	}

	if err := Run(s); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	activity, err := s.GetActivity("Chess Club")
	if err != nil {
		t.Fatalf("GetActivity returned error: %v", err)
	}
	if activity.Description != Catalog["Chess Club"].Description {
		t.Errorf("expected catalog description, got %q", activity.Description)
	}
	if activity.MaxParticipants != Catalog["Chess Club"].MaxParticipants {
		t.Errorf("expected catalog capacity, got %d", activity.MaxParticipants)
	}
}
