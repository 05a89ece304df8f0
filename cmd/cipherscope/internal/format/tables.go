// Copyright 2025 Cipherscope Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package format

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cipherscope/cipherscope/pkg/analyzer"
)

var (
	rankHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170"))
	rankCellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	subtleCellStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	highlightStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	topMatchStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
)

// RenderRanked renders the identify candidate list as an aligned table.
// The highlighted candidate and the best match carry their own styles when
// color is on.
func RenderRanked(candidates []analyzer.Candidate, useColor bool) string {
	headers := []string{"RANK", "CIPHER", "TYPE", "SCORE"}
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}

	rows := make([][]string, 0, len(candidates))
	for _, c := range candidates {
		name := c.Cipher
		if c.Highlighted {
			name += " *"
		}
		row := []string{
			fmt.Sprintf("%d", c.Rank),
			name,
			c.Type,
			fmt.Sprintf("%.3f", c.Score),
		}
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
		rows = append(rows, row)
	}

	var sb strings.Builder
	writeRow := func(cells []string, style func(int, string) string) {
		for i, cell := range cells {
			padded := cell + strings.Repeat(" ", widths[i]-len(cell))
			sb.WriteString(style(i, padded))
			if i < len(cells)-1 {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}

	plain := func(_ int, s string) string { return s }
	if useColor {
		writeRow(headers, func(_ int, s string) string { return rankHeaderStyle.Render(s) })
	} else {
		writeRow(headers, plain)
	}

	for idx, row := range rows {
		style := plain
		if useColor {
			switch {
			case candidates[idx].Highlighted:
				style = func(_ int, s string) string { return highlightStyle.Render(s) }
			case candidates[idx].Rank == 1:
				style = func(_ int, s string) string { return topMatchStyle.Render(s) }
			default:
				style = func(i int, s string) string {
					if i == 2 {
						return subtleCellStyle.Render(s)
					}
					return rankCellStyle.Render(s)
				}
			}
		}
		writeRow(row, style)
	}
	return sb.String()
}
