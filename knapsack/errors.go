package knapsack

import "errors"

var (
	// ErrInvalidInput is the parent of every input-contract violation.
	// Use errors.Is(err, ErrInvalidInput) to detect malformed input in general.
	ErrInvalidInput = errors.New("knapsack: invalid input")

	// ErrLengthMismatch indicates values and weights differ in length.
	ErrLengthMismatch = wrapInvalid("values and weights must have the same length")

	// ErrNonPositiveWeight indicates an item weight ≤ 0.
	ErrNonPositiveWeight = wrapInvalid("item weight must be positive")

	// ErrNegativeCapacity indicates capacity < 0.
	ErrNegativeCapacity = wrapInvalid("capacity must be non-negative")

	// ErrInvalidValue indicates a negative, NaN or infinite item value.
	ErrInvalidValue = wrapInvalid("item value must be finite and non-negative")

	// ErrTableTooLarge indicates the DP grid exceeds MaxCells even after the
	// capacity was clamped to the total item weight.
	ErrTableTooLarge = errors.New("knapsack: DP grid exceeds MaxCells after clamping capacity to total weight")

	// ErrTooManyItems indicates BruteForce was asked to enumerate too many subsets.
	ErrTooManyItems = wrapInvalid("too many items for exhaustive search")

	// ErrSelectionNeedsTable indicates selection recovery requires MemoryMode=FullTable.
	ErrSelectionNeedsTable = errors.New("knapsack: ReturnSelection requires MemoryMode=FullTable")
)

// invalidInputError is a specific contract violation that also matches ErrInvalidInput.
type invalidInputError struct {
	msg string
}

func wrapInvalid(msg string) error { return &invalidInputError{msg: msg} }

func (e *invalidInputError) Error() string { return "knapsack: " + e.msg }

// Unwrap lets errors.Is(err, ErrInvalidInput) succeed for every contract error.
func (e *invalidInputError) Unwrap() error { return ErrInvalidInput }
