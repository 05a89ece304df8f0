// Package classifier ranks cipher types by statistical distance between an
// observed feature vector and the reference profiles.
package classifier

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cipherscope/cipherscope/pkg/profiles"
	"github.com/cipherscope/cipherscope/pkg/stats"
)

var (
	// ErrFeatureInvalid indicates a non-finite feature value reached the
	// classifier. This points at a numeric bug upstream.
	ErrFeatureInvalid = errors.New("feature vector invalid")
	// ErrNoProfilesLoaded indicates classification was attempted before
	// the profile set was published.
	ErrNoProfilesLoaded = errors.New("no profiles loaded")
)

// CipherScore is one ranked candidate. Rank is 1-based over the full
// profile set; Highlighted marks the entry a caller asked to track.
type CipherScore struct {
	Cipher      string  `json:"cipher"`
	Score       float64 `json:"score"`
	Rank        int     `json:"rank"`
	Highlighted bool    `json:"highlighted,omitempty"`
}

// Classifier scores feature vectors against an immutable profile set.
type Classifier struct {
	set *profiles.Set
}

// New returns a Classifier over the given profile set.
func New(set *profiles.Set) *Classifier {
	return &Classifier{set: set}
}

// score is the weighted squared distance with diagonal covariance.
func score(v [stats.NumFeatures]float64, p profiles.Profile, variance [stats.NumFeatures]float64) float64 {
	total := 0.0
	for f := 0; f < stats.NumFeatures; f++ {
		diff := v[f] - p.Mean[f]
		total += p.Weight[f] * diff * diff / variance[f]
	}
	return total
}

// RankAll scores every profile and returns the full candidate list sorted
// ascending by score, ties broken by ascending cipher name.
func (c *Classifier) RankAll(v stats.FeatureVector) ([]CipherScore, error) {
	if c.set == nil || c.set.Len() == 0 {
		return nil, ErrNoProfilesLoaded
	}
	if !v.IsFinite() {
		return nil, fmt.Errorf("%w: non-finite descriptor value", ErrFeatureInvalid)
	}

	values := v.Values()
	variance := c.set.Variance()
	out := make([]CipherScore, 0, c.set.Len())
	for _, name := range c.set.Names() {
		p, _ := c.set.Get(name)
		out = append(out, CipherScore{Cipher: name, Score: score(values, p, variance)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score < out[j].Score
		}
		return out[i].Cipher < out[j].Cipher
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out, nil
}

// Rank returns the top n candidates. When highlight names a known cipher
// outside the top n, its entry is appended at its true rank with the
// Highlighted flag set; visual marking is the caller's concern.
func (c *Classifier) Rank(v stats.FeatureVector, n int, highlight string) ([]CipherScore, error) {
	ranked, err := c.RankAll(v)
	if err != nil {
		return nil, err
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	top := ranked[:n:n]
	if highlight == "" {
		return top, nil
	}
	for i := range top {
		if top[i].Cipher == highlight {
			top[i].Highlighted = true
			return top, nil
		}
	}
	for _, cs := range ranked[n:] {
		if cs.Cipher == highlight {
			cs.Highlighted = true
			return append(top, cs), nil
		}
	}
	return top, nil
}
