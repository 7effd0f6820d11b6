// Package label is the codec for the legacy composite label. The old store
// had no columns for adjustments or phone, so up to eight fields were packed
// into one delimited string. The schema is normalized now; this codec only
// survives so old rows can still be imported and old tooling can still read
// exported labels.
package label

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	Delimiter        = " | "
	PhonePlaceholder = "N/A"

	// Labels with fewer segments than this have no IO number or work type
	// and are treated as malformed by callers that need them.
	MinSegments = 3
)

type Fields struct {
	WorkerName   string
	IONumber     string
	WorkType     string
	Advance      decimal.Decimal
	ESIDeduction decimal.Decimal
	CarryOver    decimal.Decimal
	ExtraAmount  decimal.Decimal
	PhoneNumber  string
	Segments     int
}

// Encode joins the fields with the fixed delimiter, currency at exactly two
// decimal places, "N/A" standing in for a missing phone number.
func Encode(f Fields) string {
	phone := strings.TrimSpace(f.PhoneNumber)
	if phone == "" {
		phone = PhonePlaceholder
	}

	return strings.Join([]string{
		strings.TrimSpace(f.WorkerName),
		strings.TrimSpace(f.IONumber),
		strings.TrimSpace(f.WorkType),
		fmt.Sprintf("%.2f", f.Advance.InexactFloat64()),
		fmt.Sprintf("%.2f", f.ESIDeduction.InexactFloat64()),
		fmt.Sprintf("%.2f", f.CarryOver.InexactFloat64()),
		fmt.Sprintf("%.2f", f.ExtraAmount.InexactFloat64()),
		phone,
	}, Delimiter)
}

// Decode splits a label back into fields. Everything past the work type is
// optional: labels written before the adjustment fields existed decode with
// zero amounts and an empty phone. Unparseable amounts also default to zero
// rather than failing the row.
func Decode(s string) Fields {
	parts := strings.Split(s, Delimiter)

	f := Fields{
		WorkerName:   strings.TrimSpace(part(parts, 0)),
		IONumber:     strings.TrimSpace(part(parts, 1)),
		WorkType:     strings.TrimSpace(part(parts, 2)),
		Advance:      amount(parts, 3),
		ESIDeduction: amount(parts, 4),
		CarryOver:    amount(parts, 5),
		ExtraAmount:  amount(parts, 6),
		Segments:     len(parts),
	}

	phone := strings.TrimSpace(part(parts, 7))
	if phone != PhonePlaceholder {
		f.PhoneNumber = phone
	}

	return f
}

func part(parts []string, i int) string {
	if i >= len(parts) {
		return ""
	}
	return parts[i]
}

func amount(parts []string, i int) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(part(parts, i)))
	if err != nil {
		return decimal.Zero
	}
	return d
}
