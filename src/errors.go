package taipower

import "github.com/pkg/errors"

var (
	// ErrMalformedGridCode means the input does not match the grid code grammar.
	ErrMalformedGridCode = errors.New("malformed grid code")

	// ErrUnknownGridLetter means a letter is not a key of the table it is looked up in.
	ErrUnknownGridLetter = errors.New("unknown grid letter")

	// ErrOutOfGrid means a TM2 coordinate lies outside every block.
	ErrOutOfGrid = errors.New("coordinate outside Taipower grid")

	// ErrBadTables means replacement lookup tables are unusable.
	ErrBadTables = errors.New("invalid grid tables")
)
