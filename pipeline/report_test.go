package pipeline_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/fokker/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSeries_MarshalNonFinite verifies the export rule: NaN and the
// infinities become JSON null, finite values pass through unchanged.
func TestSeries_MarshalNonFinite(t *testing.T) {
	s := pipeline.Series{1, math.NaN(), math.Inf(1), math.Inf(-1), -2.5}
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `[1,null,null,null,-2.5]`, string(data))
}

// TestSeries_UnmarshalNull verifies the import rule: null reads back as NaN.
func TestSeries_UnmarshalNull(t *testing.T) {
	var s pipeline.Series
	require.NoError(t, json.Unmarshal([]byte(`[1,null,0.25]`), &s))

	require.Len(t, s, 3)
	assert.Equal(t, 1.0, s[0])
	assert.True(t, math.IsNaN(s[1]), "null must come back as NaN")
	assert.Equal(t, 0.25, s[2])
}

// TestSeries_RejectsMalformed verifies that a non-array payload errors.
func TestSeries_RejectsMalformed(t *testing.T) {
	var s pipeline.Series
	assert.Error(t, json.Unmarshal([]byte(`{"no":"array"}`), &s))
}

// TestReport_JSONRoundTrip marshals a report with a poisoned drift bin and
// reads it back: every finite value survives exactly, the poisoned bin
// stays non-finite.
func TestReport_JSONRoundTrip(t *testing.T) {
	in := pipeline.Report{
		RunID:     uuid.New(),
		Elapsed:   1500 * time.Millisecond,
		Paths:     500,
		Succeeded: 499,
		Failed:    1,
		Errors:    []string{"ensemble: path 3: boom"},
		Samples:   249500,
		Bins:      4,
		Centers:   pipeline.Series{0.125, 0.375, 0.625, 0.875},
		Density:   pipeline.Series{0.5, 1.5, 1.5, 0.5},
		Drift:     pipeline.Series{0.25, math.NaN(), -0.25, 0},
		Diffusion: pipeline.Series{-1, -2, -2, -1},
		DfDt:      pipeline.Series{0, 0, 0, 0},
		Transport: pipeline.Series{0, 0.1, -0.1, 0},
	}

	data, err := json.Marshal(&in)
	require.NoError(t, err)

	var out pipeline.Report
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, in.RunID, out.RunID)
	assert.Equal(t, in.Elapsed, out.Elapsed)
	assert.Equal(t, in.Paths, out.Paths)
	assert.Equal(t, in.Succeeded, out.Succeeded)
	assert.Equal(t, in.Failed, out.Failed)
	assert.Equal(t, in.Errors, out.Errors)
	assert.Equal(t, in.Samples, out.Samples)
	assert.Equal(t, in.Centers, out.Centers)
	assert.Equal(t, in.Density, out.Density)
	assert.Equal(t, in.Diffusion, out.Diffusion)
	assert.Equal(t, in.DfDt, out.DfDt)
	assert.Equal(t, in.Transport, out.Transport)

	require.Len(t, out.Drift, 4)
	assert.Equal(t, 0.25, out.Drift[0])
	assert.True(t, math.IsNaN(out.Drift[1]), "poisoned bin must stay non-finite")
	assert.Equal(t, -0.25, out.Drift[2])
}

// TestReport_OmitsAbsentDiagnostic verifies that a report without a
// balance window leaves the diagnostic keys out of the JSON entirely.
func TestReport_OmitsAbsentDiagnostic(t *testing.T) {
	rep := pipeline.Report{
		RunID:   uuid.New(),
		Centers: pipeline.Series{0.5},
		Density: pipeline.Series{1},
	}

	data, err := json.Marshal(&rep)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "df_dt")
	assert.NotContains(t, string(data), "transport")
	assert.NotContains(t, string(data), "errors")
}
