package codec

import (
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vacuum-planner/domain"
	"github.com/beka-birhanu/vacuum-planner/service/i"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

var _ i.Encoder = &Protobuf{}

var (
	ErrMalformedRun = errors.New("malformed run message")
)

// Protobuf encodes runs as a google.protobuf.Struct message.
type Protobuf struct{}

// MarshalRun implements i.Encoder.
func (p *Protobuf) MarshalRun(run *dmn.Run) ([]byte, error) {
	plan := make([]interface{}, len(run.Plan))
	for idx, token := range run.Plan {
		plan[idx] = token
	}

	msg, err := structpb.NewStruct(map[string]interface{}{
		"id":              run.ID.String(),
		"world_id":        run.WorldID,
		"strategy":        run.Strategy,
		"solved":          run.Solved,
		"plan":            plan,
		"nodes_generated": run.NodesGenerated,
		"nodes_expanded":  run.NodesExpanded,
		"duration_ns":     int64(run.Duration),
		"created_at":      run.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, err
	}
	return proto.Marshal(msg)
}

// UnmarshalRun decodes a message produced by MarshalRun.
func (p *Protobuf) UnmarshalRun(b []byte) (*dmn.Run, error) {
	msg := &structpb.Struct{}
	if err := proto.Unmarshal(b, msg); err != nil {
		return nil, err
	}
	fields := msg.GetFields()

	id, err := uuid.Parse(fields["id"].GetStringValue())
	if err != nil {
		return nil, fmt.Errorf("id: %w", ErrMalformedRun)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, fields["created_at"].GetStringValue())
	if err != nil {
		return nil, fmt.Errorf("created_at: %w", ErrMalformedRun)
	}

	var plan []string
	for _, v := range fields["plan"].GetListValue().GetValues() {
		plan = append(plan, v.GetStringValue())
	}

	return &dmn.Run{
		ID:             id,
		WorldID:        fields["world_id"].GetStringValue(),
		Strategy:       fields["strategy"].GetStringValue(),
		Solved:         fields["solved"].GetBoolValue(),
		Plan:           plan,
		NodesGenerated: int(fields["nodes_generated"].GetNumberValue()),
		NodesExpanded:  int(fields["nodes_expanded"].GetNumberValue()),
		Duration:       time.Duration(fields["duration_ns"].GetNumberValue()),
		CreatedAt:      createdAt,
	}, nil
}

// ContentType implements i.Encoder.
func (p *Protobuf) ContentType() string { return "application/x-protobuf" }
