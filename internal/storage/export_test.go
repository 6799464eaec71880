// ABOUTME: Tests for backend-agnostic export and import.
// ABOUTME: Runs dump and restore through two SQLite repositories.
package storage

import (
	"testing"

	"github.com/harperreed/daylog/internal/models"
)

func TestExportImportRoundTrip(t *testing.T) {
	src := testDB(t)

	c := models.NewConditionRecord("2024-01-10", 4, 4).WithNote("fine day")
	if err := src.CreateCondition(c); err != nil {
		t.Fatal(err)
	}
	a := models.NewActivityRecord("2024-01-10", 35).WithDistance(2000)
	if err := src.CreateActivity(a); err != nil {
		t.Fatal(err)
	}
	p := models.NewUserProgress("2024-01-01")
	p.TotalPoints = 25
	p.EarnedBadges = []string{"first-record"}
	if err := src.SaveProgress(p); err != nil {
		t.Fatal(err)
	}

	dump, err := Export(src)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(dump.Conditions) != 1 || len(dump.Activities) != 1 {
		t.Fatalf("dump has %d/%d records", len(dump.Conditions), len(dump.Activities))
	}
	if dump.ExportedAt == "" {
		t.Error("ExportedAt not set")
	}

	dst := testDB(t)
	if err := Import(dst, dump); err != nil {
		t.Fatalf("import: %v", err)
	}

	gotC, err := dst.GetCondition(c.ID.String())
	if err != nil {
		t.Fatalf("condition missing after import: %v", err)
	}
	if gotC.Note == nil || *gotC.Note != "fine day" {
		t.Error("condition note lost")
	}
	gotA, err := dst.GetActivity(a.ID.String())
	if err != nil {
		t.Fatalf("activity missing after import: %v", err)
	}
	if gotA.Walking.DurationMinutes != 35 {
		t.Errorf("minutes = %d", gotA.Walking.DurationMinutes)
	}
	gotP, err := dst.LoadProgress()
	if err != nil {
		t.Fatal(err)
	}
	if gotP.TotalPoints != 25 || !gotP.HasBadge("first-record") {
		t.Errorf("progress = %+v", gotP)
	}
}

func TestImportSkipsExistingRecords(t *testing.T) {
	db := testDB(t)
	c := models.NewConditionRecord("2024-01-10", 4, 4)
	if err := db.CreateCondition(c); err != nil {
		t.Fatal(err)
	}

	dump, err := Export(db)
	if err != nil {
		t.Fatal(err)
	}
	if err := Import(db, dump); err != nil {
		t.Fatalf("re-import into same repository: %v", err)
	}

	all, err := db.ListConditions(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Errorf("got %d records after re-import, want 1", len(all))
	}
}

func TestExportEmptyRepository(t *testing.T) {
	db := testDB(t)
	dump, err := Export(db)
	if err != nil {
		t.Fatal(err)
	}
	if dump.Conditions == nil || dump.Activities == nil {
		t.Error("empty export should use empty slices, not nil")
	}
}
