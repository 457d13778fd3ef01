package hwy

import (
	"strconv"
	"strings"
)

// String renders the lanes in order as "[v0, v1, v2, v3, v4, v5, v6, v7]".
// Each value uses the shortest representation that round-trips as float32.
// The format is for diagnostics and tests only.
func (v Float32x8) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.lanes {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(float64(x), 'g', -1, 32))
	}
	sb.WriteByte(']')
	return sb.String()
}
