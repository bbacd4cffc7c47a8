package replay

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// traceHeader is the first line of a trace stream
type traceHeader struct {
	Script  string `json:"script"`
	RunID   string `json:"run_id"`
	Session string `json:"session"`
	Ticks   int64  `json:"ticks"`
	Events  int    `json:"events"`
	Final   uint64 `json:"final"`
}

// WriteTrace streams a run as JSON lines: one header object, then one
// object per traced event
func WriteTrace(w io.Writer, res *Result) error {
	enc := json.NewEncoder(w)

	header := traceHeader{
		Script:  res.Script,
		RunID:   res.RunID,
		Session: res.Session,
		Ticks:   res.Ticks,
		Events:  len(res.Trace),
		Final:   res.Final,
	}
	if err := enc.Encode(header); err != nil {
		return errors.Wrap(err, "write trace header")
	}

	for i := range res.Trace {
		if err := enc.Encode(&res.Trace[i]); err != nil {
			return errors.Wrapf(err, "write trace entry %d", i)
		}
	}
	return nil
}
