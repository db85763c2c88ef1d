// Package settlement renders the pipe-delimited payment file consumed by
// the downstream settlement system. Field order and separators are a
// fixed external contract.
package settlement

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Source   = "AESCHOLAR"
	Category = "SCHOLARSHIP"

	separator = "|"
	dateFmt   = "20060102"
)

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]`)

// ErrUnsafeField is returned when a field would break the line layout.
var ErrUnsafeField = errors.New("field contains a separator or line break")

// Detail is one payee line.
type Detail struct {
	Reference   string
	FullName    string
	Institution string
	Transit     string
	Account     string
	Amount      decimal.Decimal
}

// BatchNumber formats the batch identifier for a generation time in UTC,
// matching the dates written by Build.
func BatchNumber(t time.Time) string {
	return "PAY-" + t.UTC().Format("20060102-150405")
}

// FileName derives the settlement file name from a batch number.
func FileName(batchNumber string) string {
	return "payment_batch_" + nonAlnum.ReplaceAllString(batchNumber, "_") + ".1gx"
}

// Total sums the detail amounts.
func Total(details []Detail) decimal.Decimal {
	total := decimal.Zero
	for _, d := range details {
		total = total.Add(d.Amount)
	}
	return total
}

// Unsafe reports whether v cannot be written as a single field.
func Unsafe(v string) bool {
	return strings.ContainsAny(v, separator+"\r\n")
}

// Build renders header, detail and trailer lines joined by "\n" with no
// trailing newline. date is rendered in UTC. A field holding the separator
// or a line break fails the whole file.
func Build(batchNumber string, date time.Time, details []Detail) (string, error) {
	if Unsafe(batchNumber) {
		return "", fmt.Errorf("batch number: %w", ErrUnsafeField)
	}
	for _, d := range details {
		for _, f := range []struct{ name, value string }{
			{"reference", d.Reference},
			{"name", d.FullName},
			{"institution", d.Institution},
			{"transit", d.Transit},
			{"account", d.Account},
		} {
			if Unsafe(f.value) {
				return "", fmt.Errorf("%q %s: %w", d.Reference, f.name, ErrUnsafeField)
			}
		}
	}

	day := date.UTC().Format(dateFmt)
	count := strconv.Itoa(len(details))
	total := Total(details).StringFixed(2)

	lines := make([]string, 0, len(details)+2)
	lines = append(lines, join("H", batchNumber, day, Source, count, total))
	for _, d := range details {
		lines = append(lines, join("D", d.Reference, d.FullName, d.Institution, d.Transit, d.Account,
			d.Amount.StringFixed(2), day, Category))
	}
	lines = append(lines, join("T", count, total))
	return strings.Join(lines, "\n"), nil
}

func join(fields ...string) string {
	return strings.Join(fields, separator)
}
