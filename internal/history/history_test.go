package history_test

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cypherkit/tckrun/internal/domain"
	"github.com/cypherkit/tckrun/internal/history"
)

var _ = Describe("Store", func() {
	var (
		dir   string
		store *history.Store
	)

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "tckrun-history-*")
		Expect(err).ToNot(HaveOccurred())

		store, err = history.Open(filepath.Join(dir, "nested", "history.db"))
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		store.Close()
		os.RemoveAll(dir)
	})

	It("should record and return runs in chronological order", func() {
		for i, passed := range []int{100, 120, 115} {
			_, err := store.Record(history.Run{
				Label:      "run",
				RecordedAt: time.Date(2026, 8, 1+i, 12, 0, 0, 0, time.UTC),
				Passed:     passed,
				Failed:     200 - passed,
				Total:      200,
			})
			Expect(err).ToNot(HaveOccurred())
		}

		runs, err := store.Trend(0)
		Expect(err).ToNot(HaveOccurred())
		Expect(runs).To(HaveLen(3))
		Expect(runs[0].Passed).To(Equal(100))
		Expect(runs[1].Passed).To(Equal(120))
		Expect(runs[2].Passed).To(Equal(115))
		Expect(runs[0].RecordedAt.Day()).To(Equal(1))
	})

	It("should honor the trend limit, keeping the most recent runs", func() {
		for i := 0; i < 5; i++ {
			_, err := store.Record(history.Run{
				Label:      "run",
				RecordedAt: time.Now(),
				Passed:     i,
				Total:      10,
			})
			Expect(err).ToNot(HaveOccurred())
		}

		runs, err := store.Trend(2)
		Expect(err).ToNot(HaveOccurred())
		Expect(runs).To(HaveLen(2))
		Expect(runs[0].Passed).To(Equal(3))
		Expect(runs[1].Passed).To(Equal(4))
	})

	It("should survive reopening the database", func() {
		_, err := store.Record(history.Run{Label: "keep", RecordedAt: time.Now(), Passed: 7, Total: 9})
		Expect(err).ToNot(HaveOccurred())
		Expect(store.Close()).To(Succeed())

		store, err = history.Open(filepath.Join(dir, "nested", "history.db"))
		Expect(err).ToNot(HaveOccurred())

		runs, err := store.Trend(0)
		Expect(err).ToNot(HaveOccurred())
		Expect(runs).To(HaveLen(1))
		Expect(runs[0].Label).To(Equal("keep"))
		Expect(runs[0].Passed).To(Equal(7))
	})
})

var _ = Describe("FromSummary", func() {
	It("should copy the scenario counts", func() {
		at := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
		run := history.FromSummary("nightly", at, domain.Summary{
			Passed: 5, Failed: 2, Skipped: 1, Total: 8,
		})
		Expect(run.Label).To(Equal("nightly"))
		Expect(run.RecordedAt).To(Equal(at))
		Expect(run.Passed).To(Equal(5))
		Expect(run.Failed).To(Equal(2))
		Expect(run.Skipped).To(Equal(1))
		Expect(run.Total).To(Equal(8))
	})
})

var _ = Describe("RenderTrend", func() {
	It("should include pass deltas between consecutive runs", func() {
		runs := []history.Run{
			{Label: "a", RecordedAt: time.Now(), Passed: 10, Total: 20},
			{Label: "b", RecordedAt: time.Now(), Passed: 14, Total: 20},
		}

		var sb strings.Builder
		history.RenderTrend(&sb, runs)
		Expect(sb.String()).To(ContainSubstring("+4"))
	})
})
