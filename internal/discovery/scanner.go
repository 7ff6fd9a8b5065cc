package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"covest/internal/domain"
)

var (
	// ErrDirectoryNotFound is returned when a scan root does not exist
	ErrDirectoryNotFound = errors.New("directory not found")
	// ErrNotDirectory is returned when a scan root exists but is a file
	ErrNotDirectory = errors.New("not a directory")
)

// Scanner enumerates source and test files
type Scanner struct {
	suffix   string
	excludes []string
	base     string
}

// NewScanner creates a new Scanner matching files that end in suffix.
// Source paths containing any of the excludes substrings are skipped. Exclusions
// and category keywords see paths relative to base, so the location of the
// project on disk never matters. An empty base means the parent of the scanned root.
func NewScanner(suffix string, excludes []string, base string) *Scanner {
	ex := make([]string, 0, len(excludes))
	for _, e := range excludes {
		if e != "" {
			ex = append(ex, e)
		}
	}
	return &Scanner{suffix: suffix, excludes: ex, base: base}
}

// ScanSources walks root recursively and returns every eligible source file.
// Subdirectories that cannot be read are skipped and returned alongside.
func (s *Scanner) ScanSources(root string) ([]domain.SourceFile, []domain.SkippedDir, error) {
	root = filepath.Clean(root)
	if err := checkDir(root, "source"); err != nil {
		return nil, nil, err
	}

	var (
		sources []domain.SourceFile
		skipped []domain.SkippedDir
	)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if !skippable(root, path, d) {
				return err
			}
			skipped = append(skipped, domain.SkippedDir{Path: path, Err: err})
			return fs.SkipDir
		}

		if d.IsDir() {
			return nil
		}

		rel := s.relative(root, path)
		if !strings.HasSuffix(d.Name(), s.suffix) || s.Excluded(rel) {
			return nil
		}

		sources = append(sources, domain.SourceFile{Path: path, Rel: rel, Name: d.Name()})
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("scan source directory %s: %w", root, err)
	}

	return sources, skipped, nil
}

// skippable reports whether a walk error on path can be passed over.
// Only subdirectories qualify; a failure on root ends the scan.
func skippable(root, path string, d fs.DirEntry) bool {
	return d != nil && d.IsDir() && path != root
}

// relative returns path relative to the scanner base, falling back to the
// parent of root when path lies outside it
func (s *Scanner) relative(root, path string) string {
	if s.base != "" {
		if rel, ok := within(s.base, path); ok {
			return rel
		}
	}
	if rel, ok := within(filepath.Dir(root), path); ok {
		return rel
	}
	return path
}

func within(base, path string) (string, bool) {
	rel, err := filepath.Rel(base, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return rel, true
}

// ScanTests lists test files directly inside root. Subdirectories are not visited.
func (s *Scanner) ScanTests(root string) ([]domain.TestFile, error) {
	root = filepath.Clean(root)
	if err := checkDir(root, "test"); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("scan test directory %s: %w", root, err)
	}

	var tests []domain.TestFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), s.suffix) {
			continue
		}
		tests = append(tests, domain.TestFile{
			Path: filepath.Join(root, entry.Name()),
			Name: entry.Name(),
		})
	}

	return tests, nil
}

// Excluded reports whether a project-relative path contains any exclusion substring
func (s *Scanner) Excluded(path string) bool {
	for _, e := range s.excludes {
		if strings.Contains(path, e) {
			return true
		}
	}
	return false
}

func checkDir(root, kind string) error {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s %w: %s", kind, ErrDirectoryNotFound, root)
		}
		return fmt.Errorf("stat %s directory %s: %w", kind, root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s path is %w: %s", kind, ErrNotDirectory, root)
	}
	return nil
}
