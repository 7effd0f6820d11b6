package label

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	encoded := Encode(Fields{
		WorkerName:   "Ravi Kumar",
		IONumber:     "104",
		WorkType:     "stitching",
		Advance:      dec("150"),
		ESIDeduction: dec("20.5"),
		CarryOver:    dec("-30"),
		ExtraAmount:  dec("0"),
		PhoneNumber:  "9876543210",
	})

	assert.Equal(t, "Ravi Kumar | 104 | stitching | 150.00 | 20.50 | -30.00 | 0.00 | 9876543210", encoded)

	decoded := Decode(encoded)
	assert.Equal(t, "Ravi Kumar", decoded.WorkerName)
	assert.Equal(t, "104", decoded.IONumber)
	assert.Equal(t, "stitching", decoded.WorkType)
	assert.True(t, decoded.Advance.Equal(dec("150.00")))
	assert.True(t, decoded.ESIDeduction.Equal(dec("20.50")))
	assert.True(t, decoded.CarryOver.Equal(dec("-30.00")))
	assert.True(t, decoded.ExtraAmount.Equal(dec("0")))
	assert.Equal(t, "9876543210", decoded.PhoneNumber)
}

func TestEncode_MissingPhoneGetsPlaceholder(t *testing.T) {
	encoded := Encode(Fields{WorkerName: "Ravi", IONumber: "7", WorkType: "cutting"})

	assert.Equal(t, "Ravi | 7 | cutting | 0.00 | 0.00 | 0.00 | 0.00 | N/A", encoded)
	assert.Equal(t, "", Decode(encoded).PhoneNumber)
}

func TestDecode_OldThreeSegmentLabel(t *testing.T) {
	// Labels written before the adjustment fields existed.
	decoded := Decode("Ravi | 104 | stitching")

	assert.Equal(t, "Ravi", decoded.WorkerName)
	assert.Equal(t, "104", decoded.IONumber)
	assert.Equal(t, "stitching", decoded.WorkType)
	assert.True(t, decoded.Advance.IsZero())
	assert.True(t, decoded.ESIDeduction.IsZero())
	assert.True(t, decoded.CarryOver.IsZero())
	assert.True(t, decoded.ExtraAmount.IsZero())
	assert.Equal(t, "", decoded.PhoneNumber)
	assert.Equal(t, 3, decoded.Segments)
}

func TestDecode_MalformedLabelDefaultsInsteadOfFailing(t *testing.T) {
	decoded := Decode("just a name")

	assert.Equal(t, "just a name", decoded.WorkerName)
	assert.Equal(t, "", decoded.IONumber)
	assert.Equal(t, "", decoded.WorkType)
	assert.Equal(t, 1, decoded.Segments)
	assert.Less(t, decoded.Segments, MinSegments)
}

func TestDecode_UnparseableAmountDefaultsToZero(t *testing.T) {
	decoded := Decode("Ravi | 104 | stitching | not-a-number")

	assert.True(t, decoded.Advance.IsZero())
}
