package fixture

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// The built-in default root ships with the package so the contract can be
// exercised without any host configuration.
//
//go:embed all:fixtures
var embedded embed.FS

type searchRoot struct {
	name string
	fsys fs.FS
}

var (
	rootsMu         sync.Mutex
	registeredRoots []searchRoot
)

// RegisterRoot adds a fixture search root for the life of the process. Roots
// are searched after the built-in default, in registration order; registering
// the same path twice is a no-op. The registry is append-only.
func RegisterRoot(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	rootsMu.Lock()
	defer rootsMu.Unlock()
	for _, r := range registeredRoots {
		if r.name == abs {
			return
		}
	}
	registeredRoots = append(registeredRoots, searchRoot{name: abs, fsys: os.DirFS(abs)})
}

// searchRoots returns the default root, the process-registered roots, and the
// per-client extras, deduplicated by name in that order.
func searchRoots(extras []string) []searchRoot {
	defaultFS, err := fs.Sub(embedded, "fixtures")
	if err != nil {
		// The embedded tree always contains fixtures/.
		panic(err)
	}
	out := []searchRoot{{name: "builtin", fsys: defaultFS}}

	rootsMu.Lock()
	out = append(out, registeredRoots...)
	rootsMu.Unlock()

	for _, path := range extras {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		dup := false
		for _, r := range out {
			if r.name == abs {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, searchRoot{name: abs, fsys: os.DirFS(abs)})
		}
	}
	return out
}
