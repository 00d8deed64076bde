package report_test

import (
	"io"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"

	"github.com/cypherkit/tckrun/internal/normalizer"
	"github.com/cypherkit/tckrun/internal/report"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

var _ = Describe("Engine", func() {
	var engine *report.Engine

	BeforeEach(func() {
		var err error
		engine, err = report.NewEngine(filepath.Join("..", "..", "templates"), "report_default")
		Expect(err).ToNot(HaveOccurred())
	})

	It("should list available templates", func() {
		Expect(engine.ListTemplates()).To(ContainElement("report_default"))
	})

	It("should fail for an unknown template name", func() {
		_, err := engine.Render("missing", nil)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("not found"))
	})

	It("should fail for a directory without templates", func() {
		empty, err := os.MkdirTemp("", "tckrun-tmpl-*")
		Expect(err).ToNot(HaveOccurred())
		defer os.RemoveAll(empty)

		_, err = report.NewEngine(empty, "report_default")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Generator", func() {
	var (
		outputDir string
		engine    *report.Engine
	)

	BeforeEach(func() {
		var err error
		outputDir, err = os.MkdirTemp("", "tckrun-report-*")
		Expect(err).ToNot(HaveOccurred())

		engine, err = report.NewEngine(filepath.Join("..", "..", "templates"), "report_default")
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(outputDir)
	})

	generate := func(opts report.Options) string {
		patched := filepath.Join(outputDir, "patched")
		n := normalizer.New(quietLogger())
		Expect(n.Run(filepath.Join("..", "..", "testdata", "results"), patched)).To(Succeed())

		docs, err := normalizer.LoadDir(patched)
		Expect(err).ToNot(HaveOccurred())

		gen := report.NewGenerator(engine, quietLogger())
		Expect(gen.Generate(docs, opts)).To(Succeed())

		content, err := os.ReadFile(opts.OutputPath)
		Expect(err).ToNot(HaveOccurred())
		return string(content)
	}

	It("should render summary counts and scenario rows", func() {
		html := generate(report.Options{
			OutputPath: filepath.Join(outputDir, "report.html"),
			Title:      "TCK Results",
			Project:    "my-engine",
			Timestamp:  time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC),
		})

		Expect(html).To(ContainSubstring("<title>TCK Results</title>"))
		Expect(html).To(ContainSubstring("my-engine"))
		Expect(html).To(ContainSubstring("generated 2026-08-25 10:00:00"))
		Expect(html).To(ContainSubstring("Create a single node"))
		Expect(html).To(ContainSubstring("Example - Basic query operations"))
		Expect(html).To(ContainSubstring(`class="failed"`))
	})

	It("should include failure details with the query", func() {
		html := generate(report.Options{
			OutputPath: filepath.Join(outputDir, "report.html"),
			Title:      "TCK Results",
			Timestamp:  time.Now(),
		})

		Expect(html).To(ContainSubstring("ASSERT FAILED: Result mismatch"))
		Expect(html).To(ContainSubstring("CREATE (:A {p: $param})"))
	})

	It("should render markdown notes into the header", func() {
		html := generate(report.Options{
			OutputPath: filepath.Join(outputDir, "report.html"),
			Title:      "TCK Results",
			NotesFile:  filepath.Join("..", "..", "testdata", "notes.md"),
			Timestamp:  time.Now(),
		})

		Expect(html).To(ContainSubstring("<h1>Run notes</h1>"))
		Expect(html).To(ContainSubstring("<strong>2026-08-01</strong>"))
	})

	It("should fail when the notes file is missing", func() {
		patched := filepath.Join(outputDir, "patched")
		n := normalizer.New(quietLogger())
		Expect(n.Run(filepath.Join("..", "..", "testdata", "results"), patched)).To(Succeed())
		docs, err := normalizer.LoadDir(patched)
		Expect(err).ToNot(HaveOccurred())

		gen := report.NewGenerator(engine, quietLogger())
		err = gen.Generate(docs, report.Options{
			OutputPath: filepath.Join(outputDir, "report.html"),
			NotesFile:  "missing-notes.md",
			Timestamp:  time.Now(),
		})
		Expect(err).To(HaveOccurred())
	})
})
