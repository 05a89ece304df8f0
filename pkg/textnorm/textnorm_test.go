package textnorm

import (
	"errors"
	"testing"
)

func TestNormalizeFoldsCaseAndDropsNonLetters(t *testing.T) {
	n := New(5)
	seq, err := n.Normalize("Hello, World! 123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := seq.String(); got != "HELLOWORLD" {
		t.Fatalf("unexpected sequence: %q", got)
	}
	if seq.Len() != 10 {
		t.Fatalf("unexpected length: %d", seq.Len())
	}
	if seq.Histogram['l'-'a'] != 3 {
		t.Fatalf("histogram mismatch for L: %d", seq.Histogram['l'-'a'])
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	n := New(5)
	first, err := n.Normalize("attack at dawn!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := n.Normalize(first.String())
	if err != nil {
		t.Fatalf("unexpected error on second pass: %v", err)
	}
	if first.String() != second.String() {
		t.Fatalf("normalization not idempotent: %q vs %q", first.String(), second.String())
	}
	if first.Histogram != second.Histogram {
		t.Fatalf("histograms diverge after renormalization")
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	n := New(20)
	seq, err := n.Normalize("!!! ??? ...")
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if seq != nil {
		t.Fatalf("expected nil sequence on empty input")
	}
}

func TestNormalizeTooShortStillReturnsSequence(t *testing.T) {
	n := New(20)
	seq, err := n.Normalize("SHORT")
	if !errors.Is(err, ErrInputTooShort) {
		t.Fatalf("expected ErrInputTooShort, got %v", err)
	}
	if seq == nil || seq.Len() != 5 {
		t.Fatalf("expected usable 5-letter sequence, got %+v", seq)
	}
}

func TestNormalizeDefaultFloor(t *testing.T) {
	if got := New(0).Floor(); got != DefaultLengthFloor {
		t.Fatalf("expected default floor %d, got %d", DefaultLengthFloor, got)
	}
}

func TestUniqueAndMissingLetters(t *testing.T) {
	n := New(1)
	seq, err := n.Normalize("ABCABC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seq.UniqueLetters() != 3 {
		t.Fatalf("expected 3 unique letters, got %d", seq.UniqueLetters())
	}
	missing := string(seq.MissingLetters())
	if len(missing) != 23 || missing[0] != 'D' || missing[22] != 'Z' {
		t.Fatalf("unexpected missing letters: %q", missing)
	}
}
