package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
)

// LoadStatic registers every regular file under dir by its slash-separated
// relative path. A missing dir registers nothing.
func LoadStatic(r *Registry, dir string) (int, error) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}

	count := 0
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}

		if err = r.Register(Entry{
			Name:    filepath.ToSlash(rel),
			Kind:    KindStatic,
			Source:  p,
			Handler: staticFile(p),
		}); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return count, fmt.Errorf("error loading static dir %q: %w", dir, err)
	}

	return count, nil
}

// staticFile serves one file from disk. http.ServeContent is used instead
// of http.ServeFile so that "index.html" is not redirected to its directory.
type staticFile string

func (f staticFile) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	file, err := os.Open(string(f))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		http.NotFound(w, r)
		return
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), file)
}
