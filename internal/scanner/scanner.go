package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cypherkit/tckrun/internal/domain"
)

// Scanner discovers input files under a directory.
type Scanner interface {
	Scan(rootDir string, ext string) ([]string, error)
}

// FileScanner implements Scanner using filepath.WalkDir.
type FileScanner struct {
	Recursive bool
}

// NewScanner creates a new FileScanner.
func NewScanner(recursive bool) *FileScanner {
	return &FileScanner{Recursive: recursive}
}

// Scan walks rootDir and returns sorted paths of regular files whose
// name ends in ext (e.g. ".json", ".feature").
func (s *FileScanner) Scan(rootDir string, ext string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(rootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, relErr := filepath.Rel(rootDir, path)
		if relErr != nil {
			relPath = path
		}

		if d.IsDir() {
			if !s.Recursive && relPath != "." {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasSuffix(d.Name(), ext) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, domain.NewError("scan", rootDir, "failed to scan directory", err)
	}

	sort.Strings(files)
	return files, nil
}
