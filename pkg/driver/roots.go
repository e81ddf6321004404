package driver

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ManifestFileName is the manifest's on-disk name.
const ManifestFileName = "package.yml"

var ErrManifestNotFound = errors.New("driver: package.yml not found")

// FindManifest ascends from start towards the filesystem root and
// returns the first package.yml it finds.
func FindManifest(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for {
		candidate := filepath.Join(dir, ManifestFileName)
		if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrManifestNotFound
		}
		dir = parent
	}
}

// CacheDir resolves the shared dependency cache: QUILL_HOME when set,
// otherwise ~/.quill.
func CacheDir() (string, error) {
	if home := strings.TrimSpace(os.Getenv("QUILL_HOME")); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".quill"), nil
}

// DependencyDir is where a dependency's checkouts live inside the
// cache, one subdirectory per pinned version.
func DependencyDir(cacheDir, name string) string {
	return filepath.Join(cacheDir, "pkg", "src", SanitizeName(name))
}

// CheckoutDir is the directory for one pinned version of a dependency.
func CheckoutDir(cacheDir, name, version string) string {
	return filepath.Join(DependencyDir(cacheDir, name), sanitizePathSegment(version))
}

// SearchRoots maps each manifest dependency name to the directory its
// sources resolve from: path dependencies against the manifest dir,
// everything else via the cache layout. Dependencies without a usable
// directory are left out; the checker degrades their imports to Any.
func SearchRoots(m *Manifest, cacheDir string) map[string]string {
	roots := map[string]string{}
	if m == nil {
		return roots
	}
	add := func(deps map[string]*DependencySpec) {
		for name, dep := range deps {
			if dep == nil {
				continue
			}
			key := SanitizeName(name)
			if key == "" {
				continue
			}
			if dir := resolveDependencyRoot(m, cacheDir, key, dep); dir != "" {
				roots[key] = dir
			}
		}
	}
	add(m.Dependencies)
	add(m.DevDependencies)
	return roots
}

// PathListRoots turns a QUILL_PATH style list of directories into
// roots keyed by each directory's base name.
func PathListRoots(value string) map[string]string {
	roots := map[string]string{}
	for _, part := range strings.Split(value, string(os.PathListSeparator)) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		abs, err := filepath.Abs(part)
		if err != nil {
			continue
		}
		if info, statErr := os.Stat(abs); statErr != nil || !info.IsDir() {
			continue
		}
		key := SanitizeName(filepath.Base(abs))
		if key == "" {
			continue
		}
		roots[key] = abs
	}
	return roots
}

func resolveDependencyRoot(m *Manifest, cacheDir, name string, dep *DependencySpec) string {
	if dep.Path != "" {
		dir := dep.Path
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(m.Dir(), dir)
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			return ""
		}
		if info, statErr := os.Stat(abs); statErr != nil || !info.IsDir() {
			return ""
		}
		return abs
	}
	if cacheDir == "" {
		return ""
	}
	return locateCheckout(DependencyDir(cacheDir, name), dep)
}

// locateCheckout picks a checkout under a dependency's cache dir. Pins
// match their exact sanitized segment first, then the descriptor@commit
// form the fetcher writes for tags and branches. With no pin match and
// a single checkout present, that checkout wins.
func locateCheckout(base string, dep *DependencySpec) string {
	entries, err := os.ReadDir(base)
	if err != nil {
		return ""
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)

	match := func(want string) string {
		want = sanitizePathSegment(want)
		for _, name := range names {
			if name == want {
				return name
			}
		}
		for _, name := range names {
			if strings.HasPrefix(name, want+"@") {
				return name
			}
		}
		return ""
	}
	for _, want := range []string{dep.Rev, dep.Tag, dep.Branch, dep.Version} {
		if strings.TrimSpace(want) == "" {
			continue
		}
		if name := match(want); name != "" {
			return filepath.Join(base, name)
		}
	}
	if len(names) == 1 {
		return filepath.Join(base, names[0])
	}
	return ""
}

func sanitizePathSegment(segment string) string {
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return "head"
	}
	var b strings.Builder
	for _, r := range segment {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	result := b.String()
	if result == "" {
		return "head"
	}
	return result
}
