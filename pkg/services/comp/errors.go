package comp

import "errors"

var (
	// ErrNotApplicable means a payment template cannot produce the requested
	// metric kind. It is a defined "no value" outcome, not a failure.
	ErrNotApplicable = errors.New("metric not applicable to payment template")

	// ErrDivisionByZero means a per-hour or per-RVU metric was requested
	// with a zero denominator.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNonFiniteValue is the classifier's refusal to place a value that is
	// not a finite number.
	ErrNonFiniteValue = errors.New("value is not a finite number")
)
