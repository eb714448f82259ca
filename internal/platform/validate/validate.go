// Package validate holds format checks that are independent of storage.
package validate

import "regexp"

// nationalIDPattern is the fixed 5-7-1 digit national ID layout. Full-string
// anchored; no trimming or normalization is applied.
var nationalIDPattern = regexp.MustCompile(`^\d{5}-\d{7}-\d$`)

// NationalID reports whether s is a well-formed national ID
// (NNNNN-NNNNNNN-N).
func NationalID(s string) bool {
	return nationalIDPattern.MatchString(s)
}
