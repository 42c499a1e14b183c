package sqlite

import (
	"context"
	"errors"
	"testing"

	"tasktrack/domain/repositories"
)

func TestLabelInsertRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLabelRepository(db)
	ctx := context.Background()

	label, err := repo.Insert(ctx, "work", "#aabbcc")
	if err != nil {
		t.Fatalf("Failed to insert label: %v", err)
	}
	if label.ID == 0 {
		t.Error("expected a generated id")
	}

	stored, err := repo.GetByID(ctx, label.ID)
	if err != nil {
		t.Fatalf("Failed to read back label: %v", err)
	}
	if stored.Name != "work" {
		t.Errorf("expected name %q, got %q", "work", stored.Name)
	}
	if stored.ColorHex != "#aabbcc" {
		t.Errorf("expected color %q, got %q", "#aabbcc", stored.ColorHex)
	}
}

func TestLabelListOrdersByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLabelRepository(db)
	ctx := context.Background()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if _, err := repo.Insert(ctx, name, "#000000"); err != nil {
			t.Fatalf("Failed to insert label: %v", err)
		}
	}

	labels, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("Failed to list labels: %v", err)
	}

	want := []string{"alpha", "mid", "zeta"}
	if len(labels) != len(want) {
		t.Fatalf("expected %d labels, got %d", len(want), len(labels))
	}
	for i, name := range want {
		if labels[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, labels[i].Name)
		}
	}
}

func TestLabelListBreaksNameTiesByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLabelRepository(db)
	ctx := context.Background()

	first, err := repo.Insert(ctx, "dup", "#111111")
	if err != nil {
		t.Fatalf("Failed to insert label: %v", err)
	}
	second, err := repo.Insert(ctx, "dup", "#222222")
	if err != nil {
		t.Fatalf("Failed to insert label: %v", err)
	}

	labels, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("Failed to list labels: %v", err)
	}
	if len(labels) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(labels))
	}
	if labels[0].ID != first.ID || labels[1].ID != second.ID {
		t.Errorf("expected id order %d,%d, got %d,%d", first.ID, second.ID, labels[0].ID, labels[1].ID)
	}
}

func TestLabelUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLabelRepository(db)
	ctx := context.Background()

	label, err := repo.Insert(ctx, "draft", "#cccccc")
	if err != nil {
		t.Fatalf("Failed to insert label: %v", err)
	}

	if err := repo.Update(ctx, label.ID, "final", "#123abc"); err != nil {
		t.Fatalf("Failed to update label: %v", err)
	}

	stored, err := repo.GetByID(ctx, label.ID)
	if err != nil {
		t.Fatalf("Failed to read back label: %v", err)
	}
	if stored.Name != "final" || stored.ColorHex != "#123abc" {
		t.Errorf("expected final/#123abc, got %q/%q", stored.Name, stored.ColorHex)
	}
}

func TestLabelDeleteClearsTaskReferences(t *testing.T) {
	db := setupTestDB(t)
	labelRepo := NewLabelRepository(db)
	taskRepo := NewTaskRepository(db)
	ctx := context.Background()

	label, err := labelRepo.Insert(ctx, "doomed", "#ff00ff")
	if err != nil {
		t.Fatalf("Failed to insert label: %v", err)
	}
	task, err := taskRepo.Insert(ctx, "survivor")
	if err != nil {
		t.Fatalf("Failed to insert task: %v", err)
	}
	if err := taskRepo.Update(ctx, task.ID, task.Name, "", &label.ID); err != nil {
		t.Fatalf("Failed to attach label: %v", err)
	}

	if err := labelRepo.Delete(ctx, label.ID); err != nil {
		t.Fatalf("Failed to delete label: %v", err)
	}

	// The task survives and just loses the reference.
	stored, err := taskRepo.GetByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("Failed to read back task: %v", err)
	}
	if stored.LabelID != nil {
		t.Errorf("expected label reference cleared, got %v", *stored.LabelID)
	}
}

func TestLabelMissingRowsReportNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLabelRepository(db)
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, 9999); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("GetByID: expected ErrNotFound, got %v", err)
	}
	if err := repo.Update(ctx, 9999, "x", "#000000"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Update: expected ErrNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, 9999); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Delete: expected ErrNotFound, got %v", err)
	}
}
