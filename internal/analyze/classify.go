package analyze

import (
	"regexp"
	"strings"
)

var (
	reParseUnexpected  = regexp.MustCompile(`Parse error: UnexpectedToken\((\w+)`)
	reParseOther       = regexp.MustCompile(`Parse error: (.+)`)
	reBindVarNotFound  = regexp.MustCompile(`Binding error: VariableNotFound\("(\w+)"\)`)
	reBindUnsupported  = regexp.MustCompile(`Binding error: UnsupportedExpression\("(.+?)"\)`)
	reBindOther        = regexp.MustCompile(`Binding error: (.+)`)
	rePlanUnsupported  = regexp.MustCompile(`UnsupportedPattern\("(.+?)"\)`)
	reColumnType       = regexp.MustCompile(`column types must match schema types, expected (\w+) but found (\w+)`)
	reSortColumn       = regexp.MustCompile(`Sort column '(.+?)' not found`)
	rePropertyType     = regexp.MustCompile(`expected (\w+) but actual type is (\w+)`)
	reRuntimeGeneric   = regexp.MustCompile(`RuntimeError\("(.+?)"\)`)
	reMissingError     = regexp.MustCompile(`Expected (SyntaxError|TypeError|SemanticError|ArgumentError) \((\w+)\), but query succeeded`)
	reExpectedError    = regexp.MustCompile(`Expected (SyntaxError|TypeError|SemanticError|ArgumentError)`)
)

// Classify buckets a single error line into (category, detail).
// Categories follow a "Stage: Kind" naming scheme so they roll up
// into high-level groups by prefix.
func Classify(errorLine string) (string, string) {
	line := strings.TrimSpace(errorLine)

	if m := reParseUnexpected.FindStringSubmatch(line); m != nil {
		return "Parse: UnexpectedToken", m[1]
	}
	if strings.Contains(line, "Parse error:") {
		detail := "unknown"
		if m := reParseOther.FindStringSubmatch(line); m != nil {
			detail = m[1]
		}
		return "Parse: Other", trunc(detail, 80)
	}

	if m := reBindVarNotFound.FindStringSubmatch(line); m != nil {
		return "Binder: VariableNotFound", m[1]
	}
	if m := reBindUnsupported.FindStringSubmatch(line); m != nil {
		return "Binder: UnsupportedExpression", m[1]
	}
	if strings.Contains(line, "Binding error:") {
		detail := "unknown"
		if m := reBindOther.FindStringSubmatch(line); m != nil {
			detail = m[1]
		}
		return "Binder: Other", trunc(detail, 80)
	}

	if strings.Contains(line, "UnsupportedPattern") {
		detail := "unknown"
		if m := rePlanUnsupported.FindStringSubmatch(line); m != nil {
			detail = m[1]
		}
		return "Planner: UnsupportedPattern", trunc(detail, 80)
	}
	if strings.Contains(line, "NoValidPlan") {
		return "Optimizer: NoValidPlan", ""
	}

	if m := reColumnType.FindStringSubmatch(line); m != nil {
		return "Runtime: ColumnTypeMismatch", m[1] + " vs " + m[2]
	}
	if m := reSortColumn.FindStringSubmatch(line); m != nil {
		return "Runtime: SortColumnNotFound", m[1]
	}
	if strings.Contains(line, "duration.inSeconds()") {
		return "Runtime: duration.inSeconds", ""
	}
	if strings.Contains(line, "duration.inMonths()") {
		return "Runtime: duration.inMonths", ""
	}
	if strings.Contains(line, "duration.inDays()") {
		return "Runtime: duration.inDays", ""
	}
	if strings.Contains(line, "DELETE not supported") {
		return "Runtime: DeleteNotSupported", ""
	}
	if strings.Contains(line, "statement type is not supported") {
		return "Runtime: StatementNotSupported", ""
	}
	if strings.Contains(line, "Could not evaluate expression in INSERT") {
		return "Runtime: InsertExpressionEval", ""
	}
	if strings.Contains(line, "Wrong type for property") {
		detail := ""
		if m := rePropertyType.FindStringSubmatch(line); m != nil {
			detail = m[1] + " vs " + m[2]
		}
		return "Runtime: WrongPropertyType", detail
	}
	if strings.Contains(line, "RuntimeError") || strings.Contains(line, "Runtime") {
		if m := reRuntimeGeneric.FindStringSubmatch(line); m != nil {
			return "Runtime: Other", trunc(m[1], 80)
		}
		return "Runtime: Other", trunc(line, 80)
	}

	if m := reMissingError.FindStringSubmatch(line); m != nil {
		return "Missing Error: " + m[1], m[2]
	}
	if m := reExpectedError.FindStringSubmatch(line); m != nil {
		return "Expected Error: " + m[1], trunc(line, 80)
	}

	if strings.Contains(line, "Result mismatch") {
		return "Result: Mismatch", ""
	}
	if strings.Contains(line, "Side effects mismatch") {
		return "Result: SideEffectsMismatch", ""
	}

	return "Other", trunc(line, 100)
}

func trunc(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
