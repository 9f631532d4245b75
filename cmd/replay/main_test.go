package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/couchcryptid/wind-etl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passage = `# heading north at 5 m/s
nav,headingTrue,0
nav,speedOverGround,5
nav,airTemperature,278.15
nav,depthBelowKeel,12
wind,10,90
anchor,true,0
wind,8,0
`

func TestRun(t *testing.T) {
	stamp := time.Date(2025, time.March, 3, 9, 30, 0, 0, time.UTC)
	var out bytes.Buffer

	n, err := run(strings.NewReader(passage), &out, stamp, "replay.test")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var deltas []domain.Delta
	sc := bufio.NewScanner(&out)
	for sc.Scan() {
		var d domain.Delta
		require.NoError(t, json.Unmarshal(sc.Bytes(), &d))
		deltas = append(deltas, d)
	}
	require.Len(t, deltas, 2)

	for _, d := range deltas {
		assert.Equal(t, "replay.test", d.Source)
		assert.True(t, stamp.Equal(d.Timestamp))
	}
	assert.InDelta(t, math.Sqrt(125), speedTrue(deltas[0]), 1e-9)
	assert.Equal(t, 8.0, speedTrue(deltas[1]))
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unknown kind", "gps,1,2\n", "unknown row kind"},
		{"bad number", "wind,fast,2\n", "parse number"},
		{"bad anchor flag", "anchor,maybe,0\n", "anchored flag"},
		{"wrong field count", "wind,1\n", "read log"},
		{"line after comments", "# header\n# more\nnav,headingTrue,0\ngps,1,2\n", "line 4: unknown row kind"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(strings.NewReader(tt.input), &bytes.Buffer{}, time.Now(), "x")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func speedTrue(d domain.Delta) float64 {
	for _, m := range d.Values {
		if m.Path == domain.PathSpeedTrue {
			return m.Value
		}
	}
	return math.NaN()
}
