package export

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"fmt"
	"math"
	"path"
	"time"
)

// archiveWriter builds an in-memory tar.gz rooted at a single top-level
// directory, keeping an int64 tally of raw (uncompressed) bytes.
type archiveWriter struct {
	buf     bytes.Buffer
	gz      *gzip.Writer
	tw      *tar.Writer
	root    string
	modTime time.Time
	rawSize int64
}

func newArchiveWriter(root string, modTime time.Time) *archiveWriter {
	w := &archiveWriter{root: root, modTime: modTime}
	w.gz = gzip.NewWriter(&w.buf)
	w.tw = tar.NewWriter(w.gz)
	return w
}

// Add writes one regular file entry under the archive root.
func (w *archiveWriter) Add(name string, content []byte) error {
	size := int64(len(content))
	if w.rawSize > math.MaxInt64-size {
		return fmt.Errorf("archive size exceeds int64 range")
	}

	hdr := &tar.Header{
		Name:     path.Join(w.root, name),
		Mode:     0644,
		Size:     size,
		ModTime:  w.modTime,
		Typeflag: tar.TypeReg,
	}
	if err := w.tw.WriteHeader(hdr); err != nil {
		return err
	}
	if _, err := w.tw.Write(content); err != nil {
		return err
	}

	w.rawSize += size
	return nil
}

// Close flushes the tar and gzip streams and returns the archive bytes.
// The writer is unusable afterwards.
func (w *archiveWriter) Close() ([]byte, error) {
	if err := w.tw.Close(); err != nil {
		return nil, err
	}
	if err := w.gz.Close(); err != nil {
		return nil, err
	}
	return w.buf.Bytes(), nil
}
