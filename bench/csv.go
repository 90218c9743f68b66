package bench

import (
	"encoding/csv"
	"io"
	"strconv"
)

// CSVHeader is the first record written by CSVSink.
var CSVHeader = []string{"n", "repeat", "matcher_time_ms", "verifier_time_ms", "proposals"}

// CSVSink writes samples as CSV rows with four decimals of milliseconds.
// Call Flush when done.
type CSVSink struct {
	w *csv.Writer
}

// NewCSVSink writes CSVHeader to w and returns the sink.
func NewCSVSink(w io.Writer) (*CSVSink, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return nil, err
	}

	return &CSVSink{w: cw}, nil
}

// Record implements Sink.
func (c *CSVSink) Record(s Sample) error {
	return c.w.Write([]string{
		strconv.Itoa(s.N),
		strconv.Itoa(s.Repeat),
		strconv.FormatFloat(ms(s.MatcherTime), 'f', 4, 64),
		strconv.FormatFloat(ms(s.VerifierTime), 'f', 4, 64),
		strconv.Itoa(s.Proposals),
	})
}

// Flush writes buffered rows and reports any write error.
func (c *CSVSink) Flush() error {
	c.w.Flush()

	return c.w.Error()
}
