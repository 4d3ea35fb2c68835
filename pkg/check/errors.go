package check

import "errors"

// Engine-level errors. The assessment engine converts these into results
// with StatusError instead of aborting the run.
var (
	// ErrColumnNotFound means a rule references a column absent from the table.
	ErrColumnNotFound = errors.New("column not found")

	// ErrUnknownType means a data_type rule names an unrecognized type tag.
	ErrUnknownType = errors.New("unknown expected type")

	// ErrInvertedBounds means a range rule's lower bound exceeds its upper bound.
	ErrInvertedBounds = errors.New("lower bound greater than upper bound")

	// ErrInvalidPattern means a regex rule's pattern does not compile.
	ErrInvalidPattern = errors.New("invalid regular expression")

	// ErrInvalidDateBound means a fixed-range rule's date bound does not parse.
	ErrInvalidDateBound = errors.New("invalid date bound")
)
