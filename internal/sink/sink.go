// Package sink names and persists decoded Yaz0 blocks.
package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileMode is the permission of written files; temporary files start out 0600.
const FileMode os.FileMode = 0o644

// Namer derives output paths for the blocks of one source file.
type Namer struct {
	Dir   string // Output directory.
	Base  string // Source file name without extension.
	Codec Codec  // Adds the codec suffix.
}

// NewNamer returns a Namer for blocks decoded from srcPath.
func NewNamer(srcPath, dir string, codec Codec) Namer {
	base := filepath.Base(srcPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	return Namer{Dir: dir, Base: base, Codec: codec}
}

// Name returns the output path of block index, e.g. "dir/FlagObj01_0.rarc".
func (n Namer) Name(index int) string {
	return filepath.Join(n.Dir, fmt.Sprintf("%s_%d.rarc%s", n.Base, index, n.Codec.Ext()))
}

// WriteFile stores data at path through codec. Data goes to a temporary file
// in the same directory first and is renamed into place on success, so a
// failed write leaves nothing behind.
func WriteFile(path string, data []byte, codec Codec) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	w, err := codec.NewWriter(f)
	if err != nil {
		return err
	}
	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	if err = f.Chmod(FileMode); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
