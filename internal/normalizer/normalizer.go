package normalizer

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/cypherkit/tckrun/internal/domain"
	"github.com/cypherkit/tckrun/internal/scanner"
)

// Normalizer rewrites raw runner result files into the shape the
// report renderer expects. Input and output directories are explicit
// parameters; nothing else on the filesystem is touched.
type Normalizer struct {
	scanner scanner.Scanner
	log     *logrus.Logger
}

// New creates a Normalizer. Result directories are flat, so the
// scanner is non-recursive.
func New(log *logrus.Logger) *Normalizer {
	return &Normalizer{
		scanner: scanner.NewScanner(false),
		log:     log,
	}
}

// fileDocument keeps the decoded array root around so array entries
// that are not feature objects survive the rewrite untouched.
type fileDocument struct {
	name     string
	root     []any
	features []domain.Feature
}

// Run normalizes every .json file in inputDir into outputDir.
//
// All input files are parsed and patched in memory before the output
// directory is touched, so a malformed file aborts the run without
// leaving partial output behind. The output directory is cleared and
// recreated on every run; stale files never leak into a new report.
func (n *Normalizer) Run(inputDir, outputDir string) error {
	if sameDir(inputDir, outputDir) {
		return domain.NewError("patch", inputDir, "input and output directory must differ", nil)
	}

	files, err := n.scanner.Scan(inputDir, ".json")
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return domain.NewError("scan", inputDir, "no result files found", nil)
	}

	n.log.Infof("Found %d result file(s)", len(files))

	docs := make([]fileDocument, 0, len(files))
	for _, path := range files {
		n.log.Debugf("Parsing: %s", path)
		doc, err := loadFile(path)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	for i := range docs {
		for _, f := range docs[i].features {
			PatchFeature(f)
		}
	}

	if err := os.RemoveAll(outputDir); err != nil {
		return domain.NewError("write", outputDir, "failed to clear output directory", err)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return domain.NewError("write", outputDir, "failed to create output directory", err)
	}

	for _, doc := range docs {
		outPath := filepath.Join(outputDir, doc.name)
		n.log.Debugf("Writing: %s", outPath)
		data, err := encode(doc.root)
		if err != nil {
			return domain.NewError("write", outPath, "failed to encode result file", err)
		}
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return domain.NewError("write", outPath, "failed to write result file", err)
		}
	}

	n.log.Infof("Normalized %d file(s) into %s", len(docs), outputDir)
	return nil
}

// LoadDir reads every .json result file in dir into documents. Used
// by the report, analyze and history commands, which consume the
// normalized output.
func LoadDir(dir string) ([]domain.Document, error) {
	files, err := scanner.NewScanner(false).Scan(dir, ".json")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, domain.NewError("scan", dir, "no result files found", nil)
	}

	docs := make([]domain.Document, 0, len(files))
	for _, path := range files {
		fd, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, domain.Document{Name: fd.name, Features: fd.features})
	}
	return docs, nil
}

// loadFile decodes one result file. Numbers stay json.Number so large
// durations round-trip without losing precision.
func loadFile(path string) (fileDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileDocument{}, domain.NewError("parse", path, "failed to read result file", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return fileDocument{}, domain.NewError("parse", path, "result file is not valid JSON", err)
	}
	// Decode stops after the first JSON value; anything left over means
	// the file as a whole is not a valid JSON document.
	if err := dec.Decode(new(any)); err != io.EOF {
		return fileDocument{}, domain.NewError("parse", path, "result file has trailing data after the JSON document", nil)
	}

	arr, ok := root.([]any)
	if !ok {
		return fileDocument{}, domain.NewError("parse", path, "result file is not an array of feature records", nil)
	}

	doc := fileDocument{name: filepath.Base(path), root: arr}
	for _, entry := range arr {
		if m, ok := entry.(map[string]any); ok {
			doc.features = append(doc.features, domain.FeatureFrom(m))
		}
	}
	return doc, nil
}

// sameDir compares cleaned absolute forms so "results" and "./results"
// cannot slip past the guard into the destructive clear of outputDir.
func sameDir(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// encode serializes a document root deterministically: map keys are
// sorted by encoding/json, indentation is fixed, and HTML escaping is
// off so queries stay readable.
func encode(root []any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
