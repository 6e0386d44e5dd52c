package winnow

import "github.com/rotisserie/eris"

// Programmer errors, signalled eagerly at construction rather than
// discovered mid-collect.
var (
	ErrEmptyID            = eris.New("winnow: question id must not be empty")
	ErrDuplicateID        = eris.New("winnow: duplicate question id")
	ErrEmptyBank          = eris.New("winnow: bank must contain at least one question")
	ErrNilOracle          = eris.New("winnow: oracle function must not be nil")
	ErrInvalidConcurrency = eris.New("winnow: concurrency must be at least 1")
)
