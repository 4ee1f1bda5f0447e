package decl

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Stdin is the pseudo-path that reads a single listing from standard input.
const Stdin = "-"

// ignoreFile holds gitignore-style patterns excluding listings from LoadDir.
const ignoreFile = ".solidlintignore"

// Load reads and validates one listing. The path Stdin ("-") reads from
// standard input instead of a file.
func Load(path string) (*Listing, error) {
	var (
		r    io.Reader
		name string
	)
	if path == Stdin {
		r = os.Stdin
		name = "<stdin>"
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open listing: %w", err)
		}
		defer f.Close()
		r = f
		name = path
	}
	return decode(r, name)
}

// decode parses a single YAML listing and validates its records.
// Unknown keys are rejected so typos in a listing surface immediately.
func decode(r io.Reader, name string) (*Listing, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var listing Listing
	if err := dec.Decode(&listing); err != nil {
		if err == io.EOF {
			return nil, newError(name, ErrEmptyListing)
		}
		return nil, newError(name, fmt.Errorf("%w: %v", ErrInvalidRecord, err))
	}

	if err := Validate(&listing, name); err != nil {
		return nil, err
	}
	return &listing, nil
}

// LoadDir walks root collecting *.yaml / *.yml listings in lexical
// order, honoring gitignore-style patterns from a .solidlintignore file
// at the root when present.
func LoadDir(root string) (*Listing, error) {
	files, err := listingFiles(root)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, newError(root, ErrNoListingsFound)
	}
	return loadFiles(files)
}

// LoadPaths loads a mixed set of listing files, directories, and Stdin,
// expanding directories first, then loading every file concurrently.
// The merged result preserves input order so output stays deterministic
// regardless of load completion order.
func LoadPaths(paths []string) (*Listing, error) {
	var files []string
	for _, p := range paths {
		if p == Stdin {
			files = append(files, p)
			continue
		}
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat input: %w", err)
		}
		if info.IsDir() {
			expanded, err := listingFiles(p)
			if err != nil {
				return nil, err
			}
			files = append(files, expanded...)
		} else {
			files = append(files, p)
		}
	}
	if len(files) == 0 {
		return nil, newError(strings.Join(paths, ","), ErrNoListingsFound)
	}
	return loadFiles(files)
}

// loadFiles loads each file on its own goroutine and merges in input order.
func loadFiles(files []string) (*Listing, error) {
	listings := make([]*Listing, len(files))

	var g errgroup.Group
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			l, err := Load(file)
			if err != nil {
				return err
			}
			listings[i] = l
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Merge(listings...), nil
}

// listingFiles walks root and returns listing paths in sorted order.
func listingFiles(root string) ([]string, error) {
	var matcher *ignore.GitIgnore
	if ign, err := ignore.CompileIgnoreFile(filepath.Join(root, ignoreFile)); err == nil {
		matcher = ign
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if matcher != nil && matcher.MatchesPath(rel) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}
