// Package domain defines domain-level errors for the symbols feature.
package domain

import "errors"

// ErrUnknownCategory indicates a pair category filter that does not exist.
var ErrUnknownCategory = errors.New("unknown category")
