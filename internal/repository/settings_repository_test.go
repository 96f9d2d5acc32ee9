package repository_test

import (
	"testing"

	"github.com/avdberg/Budget-Planner-Backend/internal/repository"
	"github.com/avdberg/Budget-Planner-Backend/internal/testutil"
)

func TestSettingsRepository(t *testing.T) {
	t.Run("Get reports a missing key", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSettingsRepository(db)

		_, found, err := repo.Get("missing")
		if err != nil {
			t.Fatalf("Failed to query setting: %v", err)
		}
		if found {
			t.Error("Expected missing key to report found=false")
		}
	})

	t.Run("Set then Get round-trips a value", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSettingsRepository(db)

		if err := repo.Set("greeting", "hello"); err != nil {
			t.Fatalf("Failed to set: %v", err)
		}

		value, found, err := repo.Get("greeting")
		if err != nil {
			t.Fatalf("Failed to query setting: %v", err)
		}
		if !found || value != "hello" {
			t.Errorf("Expected hello, got %q (found=%v)", value, found)
		}
	})

	t.Run("Set overwrites an existing value", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSettingsRepository(db)

		if err := repo.Set("greeting", "hello"); err != nil {
			t.Fatalf("Failed to set: %v", err)
		}
		if err := repo.Set("greeting", "goodbye"); err != nil {
			t.Fatalf("Failed to overwrite: %v", err)
		}

		value, _, err := repo.Get("greeting")
		if err != nil {
			t.Fatalf("Failed to query setting: %v", err)
		}
		if value != "goodbye" {
			t.Errorf("Expected goodbye, got %q", value)
		}
	})
}
