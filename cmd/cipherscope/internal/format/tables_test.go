// Copyright 2025 Cipherscope Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherscope/cipherscope/pkg/analyzer"
	"github.com/cipherscope/cipherscope/pkg/classifier"
)

func rankedFixture() []analyzer.Candidate {
	return []analyzer.Candidate{
		{CipherScore: classifier.CipherScore{Cipher: "Vigenere", Score: 0.125, Rank: 1}, Type: "periodic"},
		{CipherScore: classifier.CipherScore{Cipher: "Beaufort", Score: 1.5, Rank: 2}, Type: "periodic"},
		{CipherScore: classifier.CipherScore{Cipher: "Swagman", Score: 9.75, Rank: 14, Highlighted: true}, Type: "transposition"},
	}
}

func TestRenderRankedPlain(t *testing.T) {
	out := RenderRanked(rankedFixture(), false)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Contains(t, lines[0], "RANK")
	assert.Contains(t, lines[0], "SCORE")
	assert.Contains(t, lines[1], "Vigenere")
	assert.Contains(t, lines[1], "0.125")
	assert.Contains(t, lines[3], "Swagman *")
	assert.Contains(t, lines[3], "14")
}

func TestRenderRankedColumnsAligned(t *testing.T) {
	out := RenderRanked(rankedFixture(), false)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	cipherCol := strings.Index(lines[0], "CIPHER")
	require.Greater(t, cipherCol, 0)
	assert.Equal(t, "Vigenere", lines[1][cipherCol:cipherCol+len("Vigenere")])
	assert.Equal(t, "Swagman", lines[3][cipherCol:cipherCol+len("Swagman")])
}

func TestRenderRankedEmpty(t *testing.T) {
	out := RenderRanked(nil, false)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 1)
}
