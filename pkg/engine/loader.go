package engine

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/errors"
)

// loadDirective introduces a dependency in dashboard source files.
const loadDirective = "#load"

// LoadedFile is one cached dashboard source file.
type LoadedFile struct {
	Path         string
	Source       string
	Dependencies []string
	LoadedAt     time.Time
}

// FileLoader reads dashboard source files, resolves their load
// directives transitively, and caches the results until invalidated.
type FileLoader struct {
	root  string
	cache map[string]*LoadedFile
}

// NewFileLoader creates a loader that resolves relative paths against root.
func NewFileLoader(root string) *FileLoader {
	return &FileLoader{
		root:  root,
		cache: make(map[string]*LoadedFile),
	}
}

// Root returns the loader's resolution root.
func (l *FileLoader) Root() string {
	return l.root
}

// Resolve maps a possibly relative path to the loader's root.
func (l *FileLoader) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(l.root, path)
}

// Load reads path and every file it transitively depends on, caching
// each. Cached files are reused without touching disk.
func (l *FileLoader) Load(path string) (*LoadedFile, error) {
	resolved := l.Resolve(path)
	visiting := make(map[string]bool)
	return l.load(resolved, visiting)
}

func (l *FileLoader) load(resolved string, visiting map[string]bool) (*LoadedFile, error) {
	if visiting[resolved] {
		// dependency cycle, the file is already being loaded above us
		if cached, ok := l.cache[resolved]; ok {
			return cached, nil
		}
		return nil, errors.New(errors.ErrCodeLoadParse, "dependency cycle detected").WithPath(resolved)
	}
	if cached, ok := l.cache[resolved]; ok {
		return cached, nil
	}
	visiting[resolved] = true
	defer delete(visiting, resolved)

	if info, err := os.Stat(resolved); err == nil && info.IsDir() {
		return nil, errors.New(errors.ErrCodeLoadOther, "not a regular file").WithPath(resolved)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrCodeLoadNotFound, "file not found").WithPath(resolved)
		}
		return nil, errors.Wrap(err, errors.ErrCodeLoadRead, "failed to read file").WithPath(resolved)
	}

	source := string(data)
	deps, err := scanDependencies(resolved, source)
	if err != nil {
		return nil, err
	}

	file := &LoadedFile{
		Path:         resolved,
		Source:       source,
		Dependencies: deps,
		LoadedAt:     time.Now(),
	}
	l.cache[resolved] = file

	for _, dep := range deps {
		if _, err := l.load(dep, visiting); err != nil {
			delete(l.cache, resolved)
			return nil, err
		}
	}
	return file, nil
}

// Get returns the cached entry for path, if any.
func (l *FileLoader) Get(path string) (*LoadedFile, bool) {
	file, ok := l.cache[l.Resolve(path)]
	return file, ok
}

// Dependencies returns the transitive dependency paths of path in
// discovery order, using cached entries only.
func (l *FileLoader) Dependencies(path string) []string {
	resolved := l.Resolve(path)
	seen := map[string]bool{resolved: true}
	var out []string
	var walk func(p string)
	walk = func(p string) {
		file, ok := l.cache[p]
		if !ok {
			return
		}
		for _, dep := range file.Dependencies {
			if seen[dep] {
				continue
			}
			seen[dep] = true
			out = append(out, dep)
			walk(dep)
		}
	}
	walk(resolved)
	return out
}

// Invalidate drops path from the cache along with every cached file
// that transitively depends on it. Returns the paths actually dropped.
func (l *FileLoader) Invalidate(path string) []string {
	resolved := l.Resolve(path)
	invalid := map[string]bool{}
	if _, ok := l.cache[resolved]; ok {
		invalid[resolved] = true
	}

	// fixpoint: a file is invalid if any of its deps is invalid
	for {
		grew := false
		for p, file := range l.cache {
			if invalid[p] {
				continue
			}
			for _, dep := range file.Dependencies {
				if invalid[dep] {
					invalid[p] = true
					grew = true
					break
				}
			}
		}
		if !grew {
			break
		}
	}

	out := make([]string, 0, len(invalid))
	for p := range invalid {
		delete(l.cache, p)
		out = append(out, p)
	}
	return out
}

// scanDependencies extracts quoted paths from load directives, resolved
// relative to the declaring file's directory.
func scanDependencies(path, source string) ([]string, error) {
	dir := filepath.Dir(path)
	var deps []string
	for i, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, loadDirective) {
			continue
		}
		rest := strings.TrimSpace(trimmed[len(loadDirective):])
		if !strings.HasPrefix(rest, `"`) {
			return nil, errors.New(errors.ErrCodeLoadParse, "load directive missing quoted path").
				WithPath(path).
				WithContext("line", i+1)
		}
		end := strings.Index(rest[1:], `"`)
		if end < 0 {
			return nil, errors.New(errors.ErrCodeLoadParse, "unterminated path in load directive").
				WithPath(path).
				WithContext("line", i+1)
		}
		dep := rest[1 : 1+end]
		if dep == "" {
			return nil, errors.New(errors.ErrCodeLoadParse, "empty path in load directive").
				WithPath(path).
				WithContext("line", i+1)
		}
		if !filepath.IsAbs(dep) {
			dep = filepath.Join(dir, dep)
		}
		deps = append(deps, filepath.Clean(dep))
	}
	return deps, nil
}
