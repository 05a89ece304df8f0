// Package analyzer is the facade tying normalization, feature extraction,
// and classification together behind a small synchronous API. The analyzer
// is stateless apart from references to the immutable profile set and
// catalog, so a single instance is safe for concurrent use.
package analyzer

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/cipherscope/cipherscope/pkg/catalog"
	"github.com/cipherscope/cipherscope/pkg/classifier"
	"github.com/cipherscope/cipherscope/pkg/profiles"
	"github.com/cipherscope/cipherscope/pkg/stats"
	"github.com/cipherscope/cipherscope/pkg/textnorm"
)

// Candidate is one ranked identification result, annotated with the
// cipher's primary type from the catalog.
type Candidate struct {
	classifier.CipherScore
	Type string `json:"type"`
}

// Result is the outcome of one identify run.
type Result struct {
	RunID      string      `json:"run_id"`
	Length     int         `json:"length"`
	Candidates []Candidate `json:"candidates"`
	Warning    string      `json:"warning,omitempty"`
}

// BasicStats is the human-oriented summary emitted alongside the feature
// vector.
type BasicStats struct {
	Length         int                 `json:"length"`
	UniqueLetters  int                 `json:"unique_letters"`
	MissingLetters string              `json:"missing_letters"`
	Features       stats.FeatureVector `json:"features"`
	Warning        string              `json:"warning,omitempty"`
}

// Analyzer runs the identification pipeline.
type Analyzer struct {
	norm *textnorm.Normalizer
	cls  *classifier.Classifier
	set  *profiles.Set
	cat  *catalog.Catalog
}

// Option adjusts analyzer construction.
type Option func(*options)

type options struct {
	floor       int
	catalogPath string
}

// WithLengthFloor overrides the minimum input length.
func WithLengthFloor(floor int) Option {
	return func(o *options) { o.floor = floor }
}

// WithCatalogFile loads cipher metadata from an external JSON file instead
// of the embedded catalog.
func WithCatalogFile(path string) Option {
	return func(o *options) { o.catalogPath = path }
}

// New loads the reference tables and returns a ready Analyzer. Profile or
// catalog problems fail fast here so no analysis call ever observes a
// partially published table.
func New(opts ...Option) (*Analyzer, error) {
	o := options{floor: textnorm.DefaultLengthFloor}
	for _, opt := range opts {
		opt(&o)
	}

	set, err := profiles.Load()
	if err != nil {
		return nil, err
	}

	var cat *catalog.Catalog
	if o.catalogPath != "" {
		cat, err = catalog.LoadFile(o.catalogPath)
	} else {
		cat, err = catalog.Load()
	}
	if err != nil {
		return nil, err
	}

	return &Analyzer{
		norm: textnorm.New(o.floor),
		cls:  classifier.New(set),
		set:  set,
		cat:  cat,
	}, nil
}

// ProfileSet exposes the loaded profiles.
func (a *Analyzer) ProfileSet() *profiles.Set {
	return a.set
}

// Catalog exposes the loaded cipher metadata.
func (a *Analyzer) Catalog() *catalog.Catalog {
	return a.cat
}

// Identify normalizes text, extracts features, and returns the top n
// candidates. A too-short input degrades to a warning on the result; an
// empty input is fatal.
func (a *Analyzer) Identify(text string, n int, highlight string) (*Result, error) {
	if n < 1 {
		return nil, NewInvalidNError(n)
	}

	runID := uuid.NewString()
	seq, warning, err := a.normalize(text, runID)
	if err != nil {
		return nil, err
	}

	vector := stats.Compute(seq)
	scores, err := a.cls.Rank(vector, n, highlight)
	if err != nil {
		return nil, err
	}

	result := &Result{
		RunID:      runID,
		Length:     seq.Len(),
		Candidates: make([]Candidate, 0, len(scores)),
		Warning:    warning,
	}
	for _, s := range scores {
		result.Candidates = append(result.Candidates, Candidate{
			CipherScore: s,
			Type:        a.cat.PrimaryType(s.Cipher),
		})
	}

	log.Debug().
		Str("run_id", runID).
		Int("length", seq.Len()).
		Int("candidates", len(result.Candidates)).
		Str("top", result.Candidates[0].Cipher).
		Msg("identify complete")
	return result, nil
}

// Stats normalizes text and returns the feature vector without ranking.
func (a *Analyzer) Stats(text string) (stats.FeatureVector, string, error) {
	seq, warning, err := a.normalize(text, "")
	if err != nil {
		return stats.FeatureVector{}, "", err
	}
	return stats.Compute(seq), warning, nil
}

// DisplayBasic returns the summary a human reads before the ranked table.
func (a *Analyzer) DisplayBasic(text string) (*BasicStats, error) {
	seq, warning, err := a.normalize(text, "")
	if err != nil {
		return nil, err
	}
	return &BasicStats{
		Length:         seq.Len(),
		UniqueLetters:  seq.UniqueLetters(),
		MissingLetters: string(seq.MissingLetters()),
		Features:       stats.Compute(seq),
		Warning:        warning,
	}, nil
}

func (a *Analyzer) normalize(text, runID string) (*textnorm.WorkingSequence, string, error) {
	seq, err := a.norm.Normalize(text)
	if err != nil {
		if seq == nil {
			return nil, "", err
		}
		ev := log.Warn().Int("length", seq.Len()).Int("floor", a.norm.Floor())
		if runID != "" {
			ev = ev.Str("run_id", runID)
		}
		ev.Msg("input below statistical floor, results may be unreliable")
		return seq, err.Error(), nil
	}
	return seq, "", nil
}
