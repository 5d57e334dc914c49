// internal/writers/atomic.go
package writers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// WriteFileAtomic streams src into a temporary sibling of path and renames it
// into place once everything was written and synced. On any failure the
// temporary file is removed and path is left untouched.
func WriteFileAtomic(path string, src io.WriterTo) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	// Keep the extension last: some tools sniff it.
	tmp := filepath.Join(dir, "."+base+"."+uuid.NewString()[:8]+".tmp"+filepath.Ext(base))

	fh, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = fh.Close()
			_ = os.Remove(tmp)
		}
	}()

	if _, err = src.WriteTo(fh); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err = fh.Sync(); err != nil {
		return err
	}
	if err = fh.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
