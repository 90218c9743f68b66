package prefio

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/stablematch/core"
)

// WriteInstance writes inst in the format accepted by ReadInstance.
// Complexity: O(n²).
func WriteInstance(w io.Writer, inst *core.Instance) error {
	bw := bufio.NewWriter(w)
	n := inst.N()
	buf := strconv.AppendInt(nil, int64(n), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}
	for _, side := range []core.Side{core.Hospitals, core.Students} {
		for id := 1; id <= n; id++ {
			buf = appendRow(buf[:0], inst.List(side, id))
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// WriteMatching writes one "<hospital> <student>" line per assignment in
// ascending hospital order.
func WriteMatching(w io.Writer, m core.Matching) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, p := range m.Pairs() {
		buf = strconv.AppendInt(buf[:0], int64(p.Hospital), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(p.Student), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// appendRow appends ids space separated plus a newline.
func appendRow(buf []byte, ids []int) []byte {
	for i, id := range ids {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendInt(buf, int64(id), 10)
	}

	return append(buf, '\n')
}
