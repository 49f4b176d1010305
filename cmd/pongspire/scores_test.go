package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/pongspire/internal/storage"
)

func TestClearScoresOnlyTouchesOneExercise(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, score := range []int{4, 9} {
		if _, err := store.SaveScore("pong", "ann", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("paddle", "bob", 3); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	var out bytes.Buffer
	if err := clearScores(&out, store, "pong", "Pong"); err != nil {
		t.Fatalf("clearScores() failed: %v", err)
	}
	if got, want := out.String(), "Cleared 2 score(s) for Pong\n"; got != want {
		t.Errorf("clearScores() output = %q, expected %q", got, want)
	}

	pong, err := store.TopScores("pong", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(pong) != 0 {
		t.Errorf("len(TopScores(pong)) = %d, expected 0", len(pong))
	}

	paddle, err := store.TopScores("paddle", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(paddle) != 1 {
		t.Errorf("len(TopScores(paddle)) = %d, expected 1", len(paddle))
	}
}
