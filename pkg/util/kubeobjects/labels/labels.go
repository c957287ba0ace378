package labels

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/util/validation"
)

// valueBoundaryCutset are the characters a label value must not start or end with.
const valueBoundaryCutset = "-_."

var invalidValueChars = regexp.MustCompile(`[^-a-zA-Z0-9_.]`)

// SanitizeValue coerces an arbitrary string into a valid Kubernetes label value.
// Every disallowed character becomes a dot, then the value is truncated to its
// last 63 characters and stripped of boundary punctuation. The tail is kept
// because the trailing path segments are the distinguishing part of catalog paths.
func SanitizeValue(value string) string {
	value = invalidValueChars.ReplaceAllString(value, ".")
	if len(value) > validation.LabelValueMaxLength {
		value = value[len(value)-validation.LabelValueMaxLength:]
	}

	return strings.Trim(value, valueBoundaryCutset)
}

// ValidateValue returns an error describing why the given string is not a
// valid label value, or nil.
func ValidateValue(value string) error {
	if msgs := validation.IsValidLabelValue(value); len(msgs) > 0 {
		return errors.Errorf("invalid label value %q: %s", value, strings.Join(msgs, ", "))
	}

	return nil
}
