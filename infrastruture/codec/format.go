package codec

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vacuum-planner/service/i"
)

// Output format names.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatProto = "proto"
)

var (
	ErrUnknownFormat = errors.New("unknown output format")
)

// ForFormat returns the encoder registered under name.
func ForFormat(name string) (i.Encoder, error) {
	switch name {
	case FormatText, "":
		return &Text{}, nil
	case FormatJSON:
		return &JSON{}, nil
	case FormatProto:
		return &Protobuf{}, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownFormat)
	}
}
