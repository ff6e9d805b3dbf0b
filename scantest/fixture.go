// Package scantest holds reusable fixtures for exercising scanners against
// adversarial readers: chunked delivery that forces refills at every
// boundary, readers that fail mid-stream, and disposable fixture files.
package scantest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/uuid"
)

type chunkReader struct {
	data  []byte
	chunk int
	off   int
}

// ChunkReader returns a reader over text that delivers at most chunk bytes
// per Read call, forcing buffer refills at adversarial boundaries.
func ChunkReader(text string, chunk int) io.Reader {
	if chunk < 1 {
		chunk = 1
	}
	return &chunkReader{data: []byte(text), chunk: chunk}
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if r.off >= len(r.data) {
		return 0, io.EOF
	}
	n := r.chunk
	if n > len(p) {
		n = len(p)
	}
	if rest := len(r.data) - r.off; n > rest {
		n = rest
	}
	copy(p, r.data[r.off:r.off+n])
	r.off += n
	return n, nil
}

type errReader struct {
	prefix []byte
	off    int
	err    error
}

// ErrReader returns a reader that delivers prefix and then fails with err.
func ErrReader(prefix string, err error) io.Reader {
	return &errReader{prefix: []byte(prefix), err: err}
}

func (r *errReader) Read(p []byte) (int, error) {
	if r.off >= len(r.prefix) {
		return 0, r.err
	}
	n := copy(p, r.prefix[r.off:])
	r.off += n
	return n, nil
}

// CloseCounter wraps a reader and counts Close calls, for asserting that a
// scanner releases its source exactly once.
type CloseCounter struct {
	io.Reader
	Closes int
}

func (c *CloseCounter) Close() error {
	c.Closes++
	return nil
}

// Fixture is a disposable file holding test content.
type Fixture struct {
	Path string
}

// NewFixture writes content to a uniquely named file in the temp directory.
func NewFixture(content string) *Fixture {
	id, err := uuid.NewV4()
	if err != nil {
		panic(err)
	}
	path := filepath.Join(os.TempDir(), fmt.Sprintf("textscan-%s.txt", id))
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		panic(err)
	}
	return &Fixture{Path: path}
}

// Teardown removes the fixture file.
func (f *Fixture) Teardown() {
	_ = os.Remove(f.Path)
}
