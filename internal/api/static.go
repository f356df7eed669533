// internal/api/static.go
package api

import (
	"net/http"
	"os"
	"path"
)

// publicFS hides directories that have no index.html, so the file server
// never renders a directory listing.
type publicFS struct {
	root http.FileSystem
}

func (fsys publicFS) Open(name string) (http.File, error) {
	f, err := fsys.root.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if info.IsDir() {
		index, err := fsys.root.Open(path.Join(name, "index.html"))
		if err != nil {
			_ = f.Close()
			return nil, os.ErrNotExist
		}
		_ = index.Close()
	}
	return f, nil
}

// staticHandler serves read-only requests from dir and answers 404 to everything else.
func staticHandler(dir string) http.HandlerFunc {
	files := http.FileServer(publicFS{root: http.Dir(dir)})
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	}
}
