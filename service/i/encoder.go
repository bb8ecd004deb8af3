package i

import dmn "github.com/beka-birhanu/vacuum-planner/domain"

// Encoder serializes runs for output.
type Encoder interface {
	MarshalRun(run *dmn.Run) ([]byte, error)
	ContentType() string
}
