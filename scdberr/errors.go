// Package scdberr defines the typed error kinds SCDB reports: precondition
// failures are hard errors, everything else (parse misses, ratchet
// rejections, capacity limits) is a soft, typed signal that processing
// continues past.
package scdberr

import "fmt"

// Code classifies an SCDB error.
type Code string

const (
	// Precondition is returned only by Update, when called with a null
	// block hash or an empty output set. The block is not consumed.
	Precondition Code = "PRECONDITION"

	// SoftReject marks a per-output parse failure or a ratchet rejection.
	// SCDB state is unchanged for that output; block processing continues.
	SoftReject Code = "SOFT_REJECT"

	// CapacityReject marks AddBundle failing because the target
	// sidechain's index is full. The bundle-tx cache has no capacity limit.
	CapacityReject Code = "CAPACITY_REJECT"
)

// Error is SCDB's typed error value. Callers that need to distinguish kinds
// use errors.As, not string matching.
type Error struct {
	Code Code
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Msg == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func New(code Code, msg string) error {
	return &Error{Code: code, Msg: msg}
}

func Preconditionf(format string, args ...any) error {
	return &Error{Code: Precondition, Msg: fmt.Sprintf(format, args...)}
}
