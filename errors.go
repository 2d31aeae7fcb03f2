// errors.go
// This file declares the named error kinds raised by move parsing,
// board play and the referee's validation step.

package skrafl

import "errors"

// ErrInvalidPosition means a move's row/col or board bounds are not
// well-formed.
var ErrInvalidPosition = errors.New("invalid position")

// ErrInvalidWord means a move's word is malformed: it contains a
// character other than an ASCII letter (or, in a trade word, '?' or
// an all-'*' mask), or its parentheses are nested or unbalanced.
var ErrInvalidWord = errors.New("invalid word")

// ErrInvalidMove means a move conflicts with the board it is applied
// to, or does not match any move the generator produced for the
// current position and rack.
var ErrInvalidMove = errors.New("invalid move")

// ErrExternalPlayer means an external-process player failed to
// respond with a well-formed move within protocol.
var ErrExternalPlayer = errors.New("external player error")
