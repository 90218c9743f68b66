package prefio

import (
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"

	"github.com/katalvlaran/stablematch/core"
)

// Open opens path for reading. Paths ending in SnappyExt are decompressed
// on the fly. The caller must Close the returned reader.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !compressed(path) {
		return f, nil
	}

	return &snappyReader{Reader: snappy.NewReader(f), f: f}, nil
}

// Create creates or truncates path for writing. Paths ending in SnappyExt
// are compressed; Close flushes the compressor before closing the file.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if !compressed(path) {
		return f, nil
	}

	return &snappyWriter{Writer: snappy.NewBufferedWriter(f), f: f}, nil
}

// ReadInstanceFile is Open + ReadInstance.
func ReadInstanceFile(path string) (inst *core.Instance, err error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rc.Close(); err == nil {
			err = cerr
		}
	}()

	return ReadInstance(rc)
}

// ReadMatchingFile is Open + ReadMatching.
func ReadMatchingFile(path string, n int) (m core.Matching, err error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rc.Close(); err == nil {
			err = cerr
		}
	}()

	return ReadMatching(rc, n)
}

// WriteInstanceFile is Create + WriteInstance.
func WriteInstanceFile(path string, inst *core.Instance) (err error) {
	wc, err := Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := wc.Close(); err == nil {
			err = cerr
		}
	}()

	return WriteInstance(wc, inst)
}

func compressed(path string) bool { return strings.HasSuffix(path, SnappyExt) }

type snappyReader struct {
	*snappy.Reader
	f *os.File
}

func (r *snappyReader) Close() error { return r.f.Close() }

type snappyWriter struct {
	*snappy.Writer
	f *os.File
}

// Close flushes and closes the compressor, then the file.
func (w *snappyWriter) Close() error {
	if err := w.Writer.Close(); err != nil {
		_ = w.f.Close()
		return err
	}

	return w.f.Close()
}
