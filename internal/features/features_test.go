package features_test

import (
	"io"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"

	"github.com/cypherkit/tckrun/internal/features"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

var _ = Describe("Copy", func() {
	var sourceDir, targetDir string

	BeforeEach(func() {
		var err error
		sourceDir, err = os.MkdirTemp("", "tckrun-features-src-*")
		Expect(err).ToNot(HaveOccurred())
		targetDir, err = os.MkdirTemp("", "tckrun-features-dst-*")
		Expect(err).ToNot(HaveOccurred())

		Expect(os.MkdirAll(filepath.Join(sourceDir, "clauses", "match"), 0755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(sourceDir, "clauses", "match", "Match1.feature"),
			[]byte("Feature: Match1\n"), 0644)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(sourceDir, "top.feature"),
			[]byte("Feature: Top\n"), 0644)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(sourceDir, "README.md"),
			[]byte("not a feature\n"), 0644)).To(Succeed())
	})

	AfterEach(func() {
		os.RemoveAll(sourceDir)
		os.RemoveAll(targetDir)
	})

	It("should copy feature files preserving the directory layout", func() {
		count, err := features.Copy(sourceDir, targetDir, quietLogger())
		Expect(err).ToNot(HaveOccurred())
		Expect(count).To(Equal(2))

		content, err := os.ReadFile(filepath.Join(targetDir, "clauses", "match", "Match1.feature"))
		Expect(err).ToNot(HaveOccurred())
		Expect(string(content)).To(Equal("Feature: Match1\n"))

		_, err = os.Stat(filepath.Join(targetDir, "top.feature"))
		Expect(err).ToNot(HaveOccurred())

		_, err = os.Stat(filepath.Join(targetDir, "README.md"))
		Expect(os.IsNotExist(err)).To(BeTrue())
	})

	It("should report zero copies for a source without feature files", func() {
		empty, err := os.MkdirTemp("", "tckrun-features-empty-*")
		Expect(err).ToNot(HaveOccurred())
		defer os.RemoveAll(empty)

		count, err := features.Copy(empty, targetDir, quietLogger())
		Expect(err).ToNot(HaveOccurred())
		Expect(count).To(BeZero())
	})

	It("should fail when the source directory does not exist", func() {
		_, err := features.Copy(filepath.Join(sourceDir, "missing"), targetDir, quietLogger())
		Expect(err).To(HaveOccurred())
	})
})
