package scanner_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cypherkit/tckrun/internal/scanner"
)

var _ = Describe("Scanner", func() {
	It("should find result files in testdata, sorted", func() {
		s := scanner.NewScanner(false)
		files, err := s.Scan(filepath.Join("..", "..", "testdata", "results"), ".json")
		Expect(err).ToNot(HaveOccurred())
		Expect(files).To(HaveLen(2))
		Expect(filepath.Base(files[0])).To(Equal("example.json"))
		Expect(filepath.Base(files[1])).To(Equal("second.json"))
	})

	It("should skip subdirectories when non-recursive", func() {
		dir, err := os.MkdirTemp("", "tckrun-scan-*")
		Expect(err).ToNot(HaveOccurred())
		defer os.RemoveAll(dir)

		Expect(os.MkdirAll(filepath.Join(dir, "sub"), 0755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(dir, "top.json"), []byte("[]"), 0644)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(dir, "sub", "nested.json"), []byte("[]"), 0644)).To(Succeed())

		files, err := scanner.NewScanner(false).Scan(dir, ".json")
		Expect(err).ToNot(HaveOccurred())
		Expect(files).To(HaveLen(1))

		files, err = scanner.NewScanner(true).Scan(dir, ".json")
		Expect(err).ToNot(HaveOccurred())
		Expect(files).To(HaveLen(2))
	})

	It("should ignore files with other extensions", func() {
		s := scanner.NewScanner(false)
		files, err := s.Scan(filepath.Join("..", "..", "testdata", "configs"), ".json")
		Expect(err).ToNot(HaveOccurred())
		Expect(files).To(BeEmpty())
	})

	It("should return error for nonexistent directory", func() {
		_, err := scanner.NewScanner(true).Scan("nonexistent_dir", ".json")
		Expect(err).To(HaveOccurred())
	})
})
