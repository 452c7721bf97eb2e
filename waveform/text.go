// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"math"
	"strings"
)

// Text renders cols as rows lines of '#' and ' ', one character per column.
// limit is the amplitude at the top and bottom edges; values beyond it are
// clipped.
func Text(cols []Column, rows int, limit float32) string {
	if rows <= 0 || len(cols) == 0 {
		return ""
	}
	if !(limit > 0) {
		limit = 1
	}

	grid := make([][]byte, rows)
	for r := range grid {
		grid[r] = []byte(strings.Repeat(" ", len(cols)))
	}

	for x, c := range cols {
		top, bottom := rowOf(c.Max, rows, limit), rowOf(c.Min, rows, limit)
		for r := top; r <= bottom; r++ {
			grid[r][x] = '#'
		}
	}

	var sb strings.Builder
	for _, line := range grid {
		sb.Write(line)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// rowOf maps an amplitude to a row, 0 being the top.
func rowOf(v float32, rows int, limit float32) int {
	pos := (float64(limit) - float64(v)) / (2 * float64(limit))
	r := int(math.Floor(pos * float64(rows)))

	return min(max(r, 0), rows-1)
}
