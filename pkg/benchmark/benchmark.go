// Package benchmark measures identification accuracy over a labeled
// ciphertext dataset.
package benchmark

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/cipherscope/cipherscope/pkg/analyzer"
	"github.com/cipherscope/cipherscope/pkg/textnorm"
)

// topK is the rank window a labeled cipher must land in to count as found.
const topK = 5

// Sample is one labeled ciphertext.
type Sample struct {
	CipherType string `json:"ciphertype" yaml:"ciphertype"`
	Ciphertext string `json:"ciphertext" yaml:"ciphertext"`
}

// CipherAccuracy is the per-cipher roll-up.
type CipherAccuracy struct {
	Cipher   string  `json:"cipher"`
	Total    int     `json:"total"`
	Top1     int     `json:"top1"`
	TopK     int     `json:"top5"`
	Top1Rate float64 `json:"top1_rate"`
	TopKRate float64 `json:"top5_rate"`
}

// Report is the outcome of one benchmark run.
type Report struct {
	ReportID     string           `json:"report_id"`
	Dataset      string           `json:"dataset"`
	Total        int              `json:"total"`
	Skipped      int              `json:"skipped"`
	Top1Count    int              `json:"top1_count"`
	TopKCount    int              `json:"top5_count"`
	Top1Accuracy float64          `json:"top1_accuracy"`
	TopKAccuracy float64          `json:"top5_accuracy"`
	PerCipher    []CipherAccuracy `json:"per_cipher"`
	DurationMS   int64            `json:"duration_ms"`
}

// LoadDataset reads labeled samples from a file. YAML files carry a list
// of samples; anything else is treated as JSONL with one sample per line.
func LoadDataset(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var samples []Sample
		if err := yaml.NewDecoder(f).Decode(&samples); err != nil {
			return nil, fmt.Errorf("parse dataset %s: %w", path, err)
		}
		return samples, nil
	default:
		var samples []Sample
		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
		line := 0
		for scanner.Scan() {
			line++
			raw := strings.TrimSpace(scanner.Text())
			if raw == "" {
				continue
			}
			var s Sample
			if err := json.Unmarshal([]byte(raw), &s); err != nil {
				return nil, fmt.Errorf("parse dataset %s line %d: %w", path, line, err)
			}
			samples = append(samples, s)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read dataset: %w", err)
		}
		return samples, nil
	}
}

// Run identifies every sample and reports top-1 and top-5 accuracy overall
// and per cipher. Samples whose ciphertext normalizes to nothing are
// skipped rather than failing the run.
func Run(a *analyzer.Analyzer, dataset string, samples []Sample) (*Report, error) {
	if len(samples) == 0 {
		return nil, errors.New("dataset contains no samples")
	}

	report := &Report{
		ReportID: uuid.NewString(),
		Dataset:  dataset,
	}
	perCipher := make(map[string]*CipherAccuracy)
	start := time.Now()

	for _, sample := range samples {
		result, err := a.Identify(sample.Ciphertext, topK, "")
		if err != nil {
			if errors.Is(err, textnorm.ErrEmptyInput) {
				report.Skipped++
				continue
			}
			return nil, err
		}

		report.Total++
		acc := perCipher[sample.CipherType]
		if acc == nil {
			acc = &CipherAccuracy{Cipher: sample.CipherType}
			perCipher[sample.CipherType] = acc
		}
		acc.Total++

		for i, cand := range result.Candidates {
			if cand.Cipher != sample.CipherType {
				continue
			}
			report.TopKCount++
			acc.TopK++
			if i == 0 {
				report.Top1Count++
				acc.Top1++
			}
			break
		}
	}
	report.DurationMS = time.Since(start).Milliseconds()

	if report.Total == 0 {
		return nil, errors.New("every sample was skipped")
	}
	report.Top1Accuracy = float64(report.Top1Count) / float64(report.Total)
	report.TopKAccuracy = float64(report.TopKCount) / float64(report.Total)

	report.PerCipher = make([]CipherAccuracy, 0, len(perCipher))
	for _, acc := range perCipher {
		acc.Top1Rate = float64(acc.Top1) / float64(acc.Total)
		acc.TopKRate = float64(acc.TopK) / float64(acc.Total)
		report.PerCipher = append(report.PerCipher, *acc)
	}
	sort.Slice(report.PerCipher, func(i, j int) bool {
		return report.PerCipher[i].Cipher < report.PerCipher[j].Cipher
	})

	log.Info().
		Str("report_id", report.ReportID).
		Int("total", report.Total).
		Int("skipped", report.Skipped).
		Float64("top1", report.Top1Accuracy).
		Float64("top5", report.TopKAccuracy).
		Msg("benchmark complete")
	return report, nil
}
