package kernel

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"shiptrack/internal/pkg/errs"
)

// ErrTrackingCodeIsNotConstructed indicates that a TrackingCode was not
// created through GenerateTrackingCode or TrackingCodeFromString.
var ErrTrackingCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingCode must be created via GenerateTrackingCode or TrackingCodeFromString",
)

const (
	// trackingCodePrefix is the fixed prefix every tracking code starts with.
	trackingCodePrefix = "SM"

	// trackingCodeSuffixLength is the number of random characters appended
	// after the time-derived component.
	trackingCodeSuffixLength = 5
)

const trackingCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// TrackingCode is the unique, human-facing identifier assigned to an order
// at creation. It is the only key exposed on the public tracking path and is
// immutable once assigned.
//
// A code consists of the fixed "SM" prefix, a time-derived decimal
// component, and a short random alphanumeric suffix, all uppercase. The
// time component plus randomness makes collisions practically impossible;
// the store still backs this with a uniqueness constraint and the create
// handler retries generation if an insert is rejected.
//
// The zero value is invalid and fails Validate.
type TrackingCode struct {
	value string
}

// GenerateTrackingCode produces a new tracking code from the current time
// and a random suffix.
//
// Example:
//
//	code := kernel.GenerateTrackingCode()
//	fmt.Println(code.String()) // e.g., "SM1756659600123K3QZ7"
func GenerateTrackingCode() TrackingCode {
	var sb strings.Builder
	sb.WriteString(trackingCodePrefix)
	sb.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 10))
	for range trackingCodeSuffixLength {
		sb.WriteByte(trackingCodeAlphabet[rand.IntN(len(trackingCodeAlphabet))])
	}

	return TrackingCode{value: sb.String()}
}

// TrackingCodeFromString parses a tracking code from its string form.
// The match is exact and case-sensitive: lookups never normalize case, so a
// lowercased code is rejected here rather than silently uppercased.
//
// Returns a ValueIsRequiredError for an empty string and a
// ValueIsInvalidError for anything that is not the "SM" prefix followed by
// uppercase alphanumeric characters.
func TrackingCodeFromString(s string) (TrackingCode, error) {
	if s == "" {
		return TrackingCode{}, errs.NewValueIsRequiredError("trackingCode")
	}

	if !strings.HasPrefix(s, trackingCodePrefix) {
		return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause(
			"trackingCode",
			fmt.Errorf("%q does not start with %q", s, trackingCodePrefix),
		)
	}

	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'A' || r > 'Z') {
			return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause(
				"trackingCode",
				fmt.Errorf("%q contains non-uppercase-alphanumeric character %q", s, r),
			)
		}
	}

	return TrackingCode{value: s}, nil
}

// String returns the tracking code in its canonical uppercase form.
func (c TrackingCode) String() string {
	return c.value
}

// IsEqual compares two tracking codes for exact, case-sensitive equality.
func (c TrackingCode) IsEqual(other TrackingCode) bool {
	return c.value == other.value
}

// Validate checks if the tracking code is properly constructed.
// Returns ErrTrackingCodeIsNotConstructed for the zero value.
func (c TrackingCode) Validate() error {
	if c.value == "" {
		return ErrTrackingCodeIsNotConstructed
	}
	return nil
}
