// Package profiles bundles the compiled-in reference statistics each
// cipher type is scored against.
package profiles

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cipherscope/cipherscope/pkg/stats"
)

// NumFeatures mirrors the feature-vector width the profile tables are
// aligned to.
const NumFeatures = stats.NumFeatures

// ErrProfileSetInvalid indicates the compiled-in profile table is missing
// a cipher or carries an unusable value. Fatal at startup.
var ErrProfileSetInvalid = errors.New("profile set invalid")

// Profile holds the expected feature values and per-feature weights for
// one cipher type, aligned to stats.FeatureNames.
type Profile struct {
	Mean   [NumFeatures]float64
	Weight [NumFeatures]float64
}

// Set is the immutable collection of reference profiles plus the shared
// per-feature normalization constants. Construct once at startup via Load
// and treat as read-only thereafter.
type Set struct {
	profiles map[string]Profile
	names    []string
	variance [NumFeatures]float64
}

// Load validates the compiled-in table and returns the profile set.
func Load() (*Set, error) {
	s := &Set{
		profiles: builtin,
		variance: featureVariance,
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	s.names = make([]string, 0, len(builtin))
	for name := range builtin {
		s.names = append(s.names, name)
	}
	sort.Strings(s.names)
	return s, nil
}

func (s *Set) validate() error {
	if len(s.profiles) == 0 {
		return fmt.Errorf("%w: no profiles compiled in", ErrProfileSetInvalid)
	}
	for _, name := range KnownCiphers {
		p, ok := s.profiles[name]
		if !ok {
			return fmt.Errorf("%w: missing cipher %q", ErrProfileSetInvalid, name)
		}
		for f := 0; f < NumFeatures; f++ {
			if math.IsNaN(p.Mean[f]) || math.IsInf(p.Mean[f], 0) {
				return fmt.Errorf("%w: cipher %q feature %s has non-finite mean", ErrProfileSetInvalid, name, stats.FeatureNames[f])
			}
			if math.IsNaN(p.Weight[f]) || p.Weight[f] < 0 {
				return fmt.Errorf("%w: cipher %q feature %s has invalid weight", ErrProfileSetInvalid, name, stats.FeatureNames[f])
			}
		}
	}
	if len(s.profiles) != len(KnownCiphers) {
		return fmt.Errorf("%w: %d profiles for %d known ciphers", ErrProfileSetInvalid, len(s.profiles), len(KnownCiphers))
	}
	for f := 0; f < NumFeatures; f++ {
		if !(s.variance[f] > 0) || math.IsInf(s.variance[f], 0) {
			return fmt.Errorf("%w: feature %s has non-positive variance", ErrProfileSetInvalid, stats.FeatureNames[f])
		}
	}
	return nil
}

// Get returns the profile for a cipher name.
func (s *Set) Get(name string) (Profile, bool) {
	p, ok := s.profiles[name]
	return p, ok
}

// Names returns the cipher names in ascending lexicographic order. The
// returned slice must not be mutated.
func (s *Set) Names() []string {
	return s.names
}

// Len returns the number of profiles.
func (s *Set) Len() int {
	return len(s.profiles)
}

// Variance returns the per-feature normalization constants.
func (s *Set) Variance() [NumFeatures]float64 {
	return s.variance
}
