package matcher_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cypherkit/tckrun/internal/matcher"
)

var _ = Describe("ParseValue", func() {
	It("should parse null in any casing", func() {
		Expect(matcher.ParseValue("null")).To(BeNil())
		Expect(matcher.ParseValue("NULL")).To(BeNil())
	})

	It("should parse booleans", func() {
		Expect(matcher.ParseValue("true")).To(Equal(true))
		Expect(matcher.ParseValue("FALSE")).To(Equal(false))
	})

	It("should parse NaN", func() {
		v, ok := matcher.ParseValue("NaN").(float64)
		Expect(ok).To(BeTrue())
		Expect(math.IsNaN(v)).To(BeTrue())
	})

	It("should parse integers and floats", func() {
		Expect(matcher.ParseValue("42")).To(Equal(int64(42)))
		Expect(matcher.ParseValue("-7")).To(Equal(int64(-7)))
		Expect(matcher.ParseValue("3.5")).To(Equal(3.5))
		Expect(matcher.ParseValue("1e3")).To(Equal(1000.0))
	})

	It("should strip quotes from strings", func() {
		Expect(matcher.ParseValue("'hello'")).To(Equal("hello"))
		Expect(matcher.ParseValue(`"world"`)).To(Equal("world"))
	})

	It("should parse flat lists", func() {
		Expect(matcher.ParseValue("[1, 2, 3]")).To(Equal([]any{int64(1), int64(2), int64(3)}))
	})

	It("should parse nested lists with mixed types", func() {
		Expect(matcher.ParseValue("[[1], ['a', 2.5]]")).To(Equal([]any{
			[]any{int64(1)},
			[]any{"a", 2.5},
		}))
	})

	It("should keep commas inside quoted strings", func() {
		Expect(matcher.ParseValue("['a, b', 'c']")).To(Equal([]any{"a, b", "c"}))
	})

	It("should parse the empty list", func() {
		Expect(matcher.ParseValue("[]")).To(Equal([]any{}))
	})

	It("should pass node and relationship forms through as strings", func() {
		Expect(matcher.ParseValue("(:Label {p: 1})")).To(Equal("(:Label {p: 1})"))
		Expect(matcher.ParseValue("[:KNOWS]")).To(Equal([]any{":KNOWS"}))
	})
})

var _ = Describe("ParseTable", func() {
	It("should treat the first row as headers", func() {
		cols, rows := matcher.ParseTable([][]string{
			{"a", "b"},
			{"1", "'x'"},
			{"null", "true"},
		})
		Expect(cols).To(Equal([]string{"a", "b"}))
		Expect(rows).To(HaveLen(2))
		Expect(rows[0]).To(Equal(map[string]any{"a": int64(1), "b": "x"}))
		Expect(rows[1]).To(Equal(map[string]any{"a": nil, "b": true}))
	})

	It("should return nothing for an empty table", func() {
		cols, rows := matcher.ParseTable(nil)
		Expect(cols).To(BeNil())
		Expect(rows).To(BeEmpty())
	})
})

var _ = Describe("CompareResults", func() {
	cols := []string{"a", "b"}

	It("should match identical results", func() {
		rows := []map[string]any{{"a": int64(1), "b": "x"}}
		ok, msg := matcher.CompareResults(cols, rows, cols, rows, true)
		Expect(ok).To(BeTrue(), msg)
	})

	It("should match whole floats against ints", func() {
		actual := []map[string]any{{"a": 2.0, "b": "x"}}
		expected := []map[string]any{{"a": int64(2), "b": "x"}}
		ok, msg := matcher.CompareResults(cols, actual, cols, expected, true)
		Expect(ok).To(BeTrue(), msg)
	})

	It("should ignore row order when unordered", func() {
		actual := []map[string]any{
			{"a": int64(2), "b": "y"},
			{"a": int64(1), "b": "x"},
		}
		expected := []map[string]any{
			{"a": int64(1), "b": "x"},
			{"a": int64(2), "b": "y"},
		}
		ok, msg := matcher.CompareResults(cols, actual, cols, expected, false)
		Expect(ok).To(BeTrue(), msg)

		ok, _ = matcher.CompareResults(cols, actual, cols, expected, true)
		Expect(ok).To(BeFalse())
	})

	It("should ignore column order", func() {
		actual := []map[string]any{{"b": "x", "a": int64(1)}}
		expected := []map[string]any{{"a": int64(1), "b": "x"}}
		ok, msg := matcher.CompareResults([]string{"b", "a"}, actual, cols, expected, true)
		Expect(ok).To(BeTrue(), msg)
	})

	It("should report a column mismatch", func() {
		ok, msg := matcher.CompareResults([]string{"a"}, nil, cols, nil, false)
		Expect(ok).To(BeFalse())
		Expect(msg).To(ContainSubstring("Column mismatch"))
	})

	It("should report row count mismatches", func() {
		expected := []map[string]any{{"a": int64(1), "b": "x"}}
		ok, msg := matcher.CompareResults(cols, nil, cols, expected, false)
		Expect(ok).To(BeFalse())
		Expect(msg).To(Equal("Expected 1 rows, got 0"))
	})

	It("should match two empty results", func() {
		ok, _ := matcher.CompareResults(cols, nil, cols, nil, false)
		Expect(ok).To(BeTrue())
	})

	It("should compare NaN as equal to NaN", func() {
		actual := []map[string]any{{"a": math.NaN(), "b": "x"}}
		expected := []map[string]any{{"a": math.NaN(), "b": "x"}}
		ok, msg := matcher.CompareResults(cols, actual, cols, expected, true)
		Expect(ok).To(BeTrue(), msg)
	})

	It("should compare nested lists element-wise", func() {
		actual := []map[string]any{{"a": []any{1.0, 2.0}, "b": "x"}}
		expected := []map[string]any{{"a": []any{int64(1), int64(2)}, "b": "x"}}
		ok, msg := matcher.CompareResults(cols, actual, cols, expected, true)
		Expect(ok).To(BeTrue(), msg)
	})
})

var _ = Describe("CompareSideEffects", func() {
	It("should match equal side effects", func() {
		ok, _ := matcher.CompareSideEffects(
			map[string]int{"+nodes": 1},
			map[string]int{"+nodes": 1},
		)
		Expect(ok).To(BeTrue())
	})

	It("should report mismatches with sorted keys", func() {
		ok, msg := matcher.CompareSideEffects(
			map[string]int{"+nodes": 2, "+labels": 1},
			map[string]int{"+nodes": 1},
		)
		Expect(ok).To(BeFalse())
		Expect(msg).To(Equal("Side effects mismatch: expected {+nodes: 1}, got {+labels: 1, +nodes: 2}"))
	})

	It("should treat two empty maps as equal", func() {
		ok, _ := matcher.CompareSideEffects(map[string]int{}, nil)
		Expect(ok).To(BeTrue())
	})
})
