// Package export renders the portfolio as a multi-block CSV document.
package export

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is one CSV row keyed by column name.
type Record map[string]any

// ArrayToCSV renders records as a header line followed by one line per
// record, joined with "\n" and without a trailing newline. Missing or nil
// values render empty.
func ArrayToCSV(records []Record, headers []string) string {
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, strings.Join(headers, ","))
	for _, rec := range records {
		values := make([]string, len(headers))
		for i, h := range headers {
			values[i] = FormatValue(rec[h])
		}
		lines = append(lines, strings.Join(values, ","))
	}
	return strings.Join(lines, "\n")
}

// FormatValue renders a single field. Strings containing a comma, double
// quote or newline are quoted with embedded quotes doubled; other strings
// pass through untouched. Numbers print in their shortest exact form.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return quote(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case fmt.Stringer:
		return quote(x.String())
	default:
		return fmt.Sprint(x)
	}
}

func quote(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
