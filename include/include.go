// Package include locates IUTF modules on disk.
//
// A module named foo is looked up under each include root as
// <root>/foo/foo.utext, falling back to <root>/foo/pst.utext. The roots come
// from IUTF_INCLUDE_PATH, a list separated like PATH, and default to
// /usr/include. Lookup only probes the filesystem; nothing is parsed.
package include

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iutf-format/iutf/debug"
)

const (
	EnvIncludePath = "IUTF_INCLUDE_PATH"
	DefaultRoot    = "/usr/include"
	Suffix         = ".utext"
	FallbackName   = "pst.utext"
)

var (
	ErrNotFound = errors.New("module not found")
	ErrBadName  = errors.New("bad module name")
)

type Resolver struct {
	Roots []string
}

func NewResolver(roots ...string) *Resolver {
	return &Resolver{Roots: roots}
}

// FromEnv returns a resolver for the roots named by IUTF_INCLUDE_PATH.
func FromEnv() *Resolver {
	var roots []string
	for _, r := range filepath.SplitList(os.Getenv(EnvIncludePath)) {
		if r != "" {
			roots = append(roots, r)
		}
	}
	if len(roots) == 0 {
		roots = []string{DefaultRoot}
	}
	return NewResolver(roots...)
}

// Find resolves name with the roots from the environment.
func Find(name string) (string, error) {
	return FromEnv().Find(name)
}

// Candidates returns the paths probed for name, in order.
func (r *Resolver) Candidates(name string) []string {
	res := make([]string, 0, 2*len(r.Roots))
	for _, root := range r.Roots {
		dir := filepath.Join(root, name)
		res = append(res,
			filepath.Join(dir, name+Suffix),
			filepath.Join(dir, FallbackName))
	}
	return res
}

// Find returns the first candidate for name which is a regular file.
func (r *Resolver) Find(name string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	for _, p := range r.Candidates(name) {
		fi, err := os.Stat(p)
		if debug.Include() {
			debug.Logf("include probe %s: %v\n", p, err)
		}
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		return p, nil
	}
	return "", fmt.Errorf("%w: %q in %s", ErrNotFound, name, strings.Join(r.Roots, string(filepath.ListSeparator)))
}

func checkName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("%w: %q", ErrBadName, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrBadName, name)
	}
	return nil
}
