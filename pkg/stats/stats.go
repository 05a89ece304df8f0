// Package stats computes the statistical feature vector a ciphertext is
// classified on. All descriptors are closed-form functions of the letter
// sequence and its histogram; histogram accumulation stays in integers and
// float scaling is applied last so results are bit-reproducible.
package stats

import (
	"math"

	"github.com/cipherscope/cipherscope/pkg/textnorm"
)

// NumFeatures is the number of descriptors in a FeatureVector.
const NumFeatures = 11

// FeatureNames lists the descriptor names in contract order. The
// spellings are consumed by downstream tooling; do not rename.
var FeatureNames = [NumFeatures]string{
	"IoC", "MIC", "MKA", "DIC", "EDI", "LR", "ROD", "LDI", "SDD", "Shannon", "BinaryRandom",
}

// FeatureVector holds one value per descriptor.
type FeatureVector struct {
	IoC          float64 `json:"IoC"`
	MIC          float64 `json:"MIC"`
	MKA          float64 `json:"MKA"`
	DIC          float64 `json:"DIC"`
	EDI          float64 `json:"EDI"`
	LR           float64 `json:"LR"`
	ROD          float64 `json:"ROD"`
	LDI          float64 `json:"LDI"`
	SDD          float64 `json:"SDD"`
	Shannon      float64 `json:"Shannon"`
	BinaryRandom float64 `json:"BinaryRandom"`
}

// Values returns the descriptors as an array aligned to FeatureNames.
func (v FeatureVector) Values() [NumFeatures]float64 {
	return [NumFeatures]float64{
		v.IoC, v.MIC, v.MKA, v.DIC, v.EDI, v.LR, v.ROD, v.LDI, v.SDD, v.Shannon, v.BinaryRandom,
	}
}

// IsFinite reports whether every descriptor is a finite number.
func (v FeatureVector) IsFinite() bool {
	for _, x := range v.Values() {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Compute derives the full feature vector from a normalized sequence.
// Numerical edge cases (too few letters for a descriptor) fall back to the
// descriptor's default of 0 rather than erroring.
func Compute(seq *textnorm.WorkingSequence) FeatureVector {
	d := digraphCounts(seq.Values)
	return FeatureVector{
		IoC:          indexOfCoincidence(seq.Histogram, seq.Len()),
		MIC:          maxPeriodicIoC(seq.Values),
		MKA:          maxKappa(seq.Values),
		DIC:          digraphicIoC(seq.Values),
		EDI:          evenDigraphicIoC(seq.Values),
		LR:           float64(longestRepeat(seq.Values)),
		ROD:          repeatOddDistance(seq.Values),
		LDI:          logDigraphIndex(seq.Values),
		SDD:          singleDigraphDiscrepancy(d, seq.Histogram, seq.Len()),
		Shannon:      shannonEntropy(seq.Histogram, seq.Len()),
		BinaryRandom: binaryRandomness(seq.Values),
	}
}
