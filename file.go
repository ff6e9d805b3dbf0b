package textscan

import (
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/ulikunitz/xz"
)

// closeReader decorates a decompressing reader with the Close of the
// underlying file, so the scanner releases the file when the stream ends.
type closeReader struct {
	io.Reader
	closer io.Closer
}

func (c closeReader) Close() error { return c.closer.Close() }

func wrapReader(path string, f io.ReadCloser) (io.Reader, error) {
	if !strings.HasSuffix(path, ".xz") {
		return f, nil
	}
	xr, err := xz.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return closeReader{Reader: xr, closer: f}, nil
}

// Open returns a reader-backed scanner over the named file. Files ending in
// .xz are transparently decompressed. The file is closed when the stream is
// exhausted or the scanner is closed.
func Open(path string, capacity int) (*Scanner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rd, err := wrapReader(path, f)
	if err != nil {
		return nil, err
	}
	s := NewReader(rd, capacity)
	s.SetFile(FileRef(path))
	return s, nil
}

// ScanFS opens every file under fsys matching the doublestar pattern and
// hands a scanner for it to fn, in glob order. Hidden files and directories
// (leading dot) are skipped. The scanner is closed after each call; an error
// from fn stops the walk.
func ScanFS(fsys fs.FS, pattern string, capacity int, fn func(path string, s *Scanner) error) error {
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return err
	}
	for _, path := range matches {
		if strings.HasPrefix(path, ".") || strings.Contains(path, "/.") {
			continue
		}
		info, err := fs.Stat(fsys, path)
		if err != nil {
			return err
		}
		if info.IsDir() {
			continue
		}
		f, err := fsys.Open(path)
		if err != nil {
			return err
		}
		rd, err := wrapReader(path, f)
		if err != nil {
			return err
		}
		s := NewReader(rd, capacity)
		s.SetFile(FileRef(path))
		err = fn(path, s)
		_ = s.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
