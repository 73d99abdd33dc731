package converters

import (
	"os"
	"path/filepath"

	"github.com/darianmavgo/mkinsert/products"
)

// WriteFileAtomic writes data to a temporary file next to path and renames
// it into place. On failure the temporary file is removed and any existing
// file at path is left untouched.
func WriteFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return &products.AccessError{Op: "create", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return &products.AccessError{Op: "write", Path: tmpName, Err: err}
	}
	if err = tmp.Sync(); err != nil {
		return &products.AccessError{Op: "write", Path: tmpName, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &products.AccessError{Op: "write", Path: tmpName, Err: err}
	}
	// CreateTemp uses 0600; match what os.Create would have produced.
	if err = os.Chmod(tmpName, 0644); err != nil {
		return &products.AccessError{Op: "write", Path: tmpName, Err: err}
	}
	if err = os.Rename(tmpName, path); err != nil {
		return &products.AccessError{Op: "rename", Path: path, Err: err}
	}
	return nil
}
