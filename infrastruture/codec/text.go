// Package codec renders runs as text, JSON or protobuf.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	dmn "github.com/beka-birhanu/vacuum-planner/domain"
	"github.com/beka-birhanu/vacuum-planner/service/i"
)

var (
	_ i.Encoder = &Text{}
	_ i.Encoder = &JSON{}
)

// Text renders a run the way the planner has always printed it: one action
// token per line, then the node counters.
type Text struct{}

// MarshalRun implements i.Encoder.
func (t *Text) MarshalRun(run *dmn.Run) ([]byte, error) {
	var b bytes.Buffer
	if run.Solved {
		for _, token := range run.Plan {
			b.WriteString(token)
			b.WriteByte('\n')
		}
	} else {
		b.WriteString("No solution found.\n")
	}
	fmt.Fprintf(&b, "%d nodes generated\n", run.NodesGenerated)
	fmt.Fprintf(&b, "%d nodes expanded\n", run.NodesExpanded)
	return b.Bytes(), nil
}

// ContentType implements i.Encoder.
func (t *Text) ContentType() string { return "text/plain; charset=utf-8" }

// JSON renders a run as an indented JSON document.
type JSON struct{}

// MarshalRun implements i.Encoder.
func (j *JSON) MarshalRun(run *dmn.Run) ([]byte, error) {
	out, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// ContentType implements i.Encoder.
func (j *JSON) ContentType() string { return "application/json" }
