// Package features provisions the runner's feature directory from an
// openCypher TCK checkout, preserving the TCK's directory layout.
package features

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/cypherkit/tckrun/internal/domain"
	"github.com/cypherkit/tckrun/internal/scanner"
)

// Copy copies every .feature file under sourceDir into targetDir,
// keeping relative paths. Returns the number of files copied. Finding
// zero feature files is not an error; a missing source directory is.
func Copy(sourceDir, targetDir string, log *logrus.Logger) (int, error) {
	if _, err := os.Stat(sourceDir); err != nil {
		return 0, domain.NewError("features", sourceDir, "source directory does not exist", err)
	}

	files, err := scanner.NewScanner(true).Scan(sourceDir, ".feature")
	if err != nil {
		return 0, err
	}
	if len(files) == 0 {
		log.Warnf("No .feature files found in %s", sourceDir)
		return 0, nil
	}

	log.Infof("Found %d feature file(s)", len(files))

	for _, src := range files {
		rel, err := filepath.Rel(sourceDir, src)
		if err != nil {
			return 0, domain.NewError("features", src, "failed to resolve relative path", err)
		}

		dst := filepath.Join(targetDir, rel)
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return 0, domain.NewError("features", dst, "failed to create target directory", err)
		}
		if err := copyFile(src, dst); err != nil {
			return 0, domain.NewError("features", dst, "failed to copy feature file", err)
		}
		log.Debugf("Copied: %s", rel)
	}

	log.Infof("Copied %d feature file(s) to %s", len(files), targetDir)
	return len(files), nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
