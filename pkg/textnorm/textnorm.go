package textnorm

import (
	"errors"
	"fmt"
)

// DefaultLengthFloor is the minimum retained length below which analysis
// results are statistically unreliable.
const DefaultLengthFloor = 20

var (
	// ErrEmptyInput indicates the input contained no retainable letters.
	ErrEmptyInput = errors.New("empty input")
	// ErrInputTooShort indicates the retained sequence is below the length
	// floor. Callers may still proceed with the returned sequence.
	ErrInputTooShort = errors.New("input too short")
)

// WorkingSequence is the normalized form of a ciphertext: letter values
// 0-25 in original order plus a 26-bin letter histogram.
type WorkingSequence struct {
	Values    []byte
	Histogram [26]int
}

// Len returns the number of retained letters.
func (s *WorkingSequence) Len() int {
	return len(s.Values)
}

// String renders the sequence back as uppercase letters.
func (s *WorkingSequence) String() string {
	out := make([]byte, len(s.Values))
	for i, v := range s.Values {
		out[i] = 'A' + v
	}
	return string(out)
}

// UniqueLetters returns the count of distinct letters present.
func (s *WorkingSequence) UniqueLetters() int {
	n := 0
	for _, c := range s.Histogram {
		if c > 0 {
			n++
		}
	}
	return n
}

// MissingLetters returns the letters of A-Z that never occur, in order.
func (s *WorkingSequence) MissingLetters() []byte {
	var out []byte
	for i, c := range s.Histogram {
		if c == 0 {
			out = append(out, byte('A'+i))
		}
	}
	return out
}

// Normalizer folds raw text into WorkingSequences. The zero value is not
// usable; construct with New.
type Normalizer struct {
	floor int
}

// New returns a Normalizer with the given length floor. A floor below 1
// falls back to DefaultLengthFloor.
func New(floor int) *Normalizer {
	if floor < 1 {
		floor = DefaultLengthFloor
	}
	return &Normalizer{floor: floor}
}

// Floor returns the configured minimum length.
func (n *Normalizer) Floor() int {
	return n.floor
}

// Normalize retains only ASCII letters, folds them to uppercase, and maps
// them to values 0-25 preserving order. Everything else is dropped
// silently. An empty result returns ErrEmptyInput with a nil sequence; a
// result shorter than the floor returns ErrInputTooShort together with the
// sequence so the caller can proceed with a warning.
func (n *Normalizer) Normalize(raw string) (*WorkingSequence, error) {
	seq := &WorkingSequence{Values: make([]byte, 0, len(raw))}
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= 'A' && c <= 'Z':
			c -= 'A'
		case c >= 'a' && c <= 'z':
			c -= 'a'
		default:
			continue
		}
		seq.Values = append(seq.Values, c)
		seq.Histogram[c]++
	}

	if len(seq.Values) == 0 {
		return nil, fmt.Errorf("%w: no letters in %d input bytes", ErrEmptyInput, len(raw))
	}
	if len(seq.Values) < n.floor {
		return seq, fmt.Errorf("%w: %d letters, need at least %d", ErrInputTooShort, len(seq.Values), n.floor)
	}
	return seq, nil
}
