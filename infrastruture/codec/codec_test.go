package codec

import (
	"encoding/json"
	"testing"
	"time"

	dmn "github.com/beka-birhanu/vacuum-planner/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRun() *dmn.Run {
	return &dmn.Run{
		ID:             uuid.New(),
		WorldID:        "3f2a",
		Strategy:       "uniform-cost",
		Solved:         true,
		Plan:           []string{"E", "V"},
		NodesGenerated: 6,
		NodesExpanded:  4,
		Duration:       1500 * time.Microsecond,
		CreatedAt:      time.Date(2025, 2, 8, 11, 1, 49, 0, time.UTC),
	}
}

func TestText(t *testing.T) {
	t.Run("Solved run lists tokens then counters", func(t *testing.T) {
		out, err := (&Text{}).MarshalRun(sampleRun())
		require.NoError(t, err)
		assert.Equal(t, "E\nV\n6 nodes generated\n4 nodes expanded\n", string(out))
	})

	t.Run("Unsolved run", func(t *testing.T) {
		run := sampleRun()
		run.Solved, run.Plan = false, nil
		out, err := (&Text{}).MarshalRun(run)
		require.NoError(t, err)
		assert.Equal(t, "No solution found.\n6 nodes generated\n4 nodes expanded\n", string(out))
	})

	t.Run("Empty plan prints only counters", func(t *testing.T) {
		run := sampleRun()
		run.Plan = []string{}
		out, err := (&Text{}).MarshalRun(run)
		require.NoError(t, err)
		assert.Equal(t, "6 nodes generated\n4 nodes expanded\n", string(out))
	})
}

func TestJSON(t *testing.T) {
	run := sampleRun()
	out, err := (&JSON{}).MarshalRun(run)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, run.ID.String(), decoded["id"])
	assert.Equal(t, []interface{}{"E", "V"}, decoded["plan"])
	assert.Equal(t, float64(6), decoded["nodes_generated"])
}

func TestProtobuf(t *testing.T) {
	p := &Protobuf{}
	run := sampleRun()

	out, err := p.MarshalRun(run)
	require.NoError(t, err)

	decoded, err := p.UnmarshalRun(out)
	require.NoError(t, err)
	assert.Equal(t, run.ID, decoded.ID)
	assert.Equal(t, run.Plan, decoded.Plan)
	assert.Equal(t, run.NodesGenerated, decoded.NodesGenerated)
	assert.Equal(t, run.NodesExpanded, decoded.NodesExpanded)
	assert.Equal(t, run.Duration, decoded.Duration)
	assert.True(t, run.CreatedAt.Equal(decoded.CreatedAt))

	_, err = p.UnmarshalRun([]byte{0xff, 0x01})
	assert.Error(t, err)
}

func TestForFormat(t *testing.T) {
	for name, want := range map[string]string{
		FormatText:  "text/plain; charset=utf-8",
		FormatJSON:  "application/json",
		FormatProto: "application/x-protobuf",
	} {
		enc, err := ForFormat(name)
		require.NoError(t, err)
		assert.Equal(t, want, enc.ContentType())
	}

	_, err := ForFormat("yaml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
