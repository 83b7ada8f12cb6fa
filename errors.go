package postfix

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidArgument is the error that invalid classifier arguments and
	// unclassifiable tokens unwrap to.
	ErrInvalidArgument = errors.New("postfix: invalid argument")
	// ErrOutOfBounds is returned when peeking at or popping from an empty
	// Stack.
	ErrOutOfBounds = errors.New("postfix: empty stack")
	// ErrUnrecognizedCharacter is the error that a LexError unwraps to.
	ErrUnrecognizedCharacter = errors.New("postfix: unrecognized character")
	// ErrMismatchedBrackets is the error that a BracketError unwraps to.
	ErrMismatchedBrackets = errors.New("postfix: mismatched brackets")
)

// ArgumentError indicates an argument to a classifier that is empty or is
// more than one character long where one is required.
type ArgumentError struct {
	// Func is the name of the classifier.
	Func string
	// Arg is the rejected argument.
	Arg string
}

func (err *ArgumentError) Error() string {
	if err.Arg == "" {
		return err.Func + ": empty argument"
	}
	return err.Func + ": argument " + strconv.Quote(err.Arg) + " is not a single character"
}

func (err *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// LexError indicates a character outside the accepted alphabet. It implements
// InputError.
type LexError struct {
	// Text is the unrecognized character.
	Text string
	// Col is the total number of runes scanned by the lexer up to and
	// including the unrecognized one.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "unrecognized character "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Unwrap() error {
	return ErrUnrecognizedCharacter
}

// BracketError is an error indicating mismatched brackets in the input. It
// implements InputError.
type BracketError struct {
	// Col is the 1-based index of the offending bracket in the token sequence.
	Col int
	// Left is the opening bracket, if any.
	Left string
	// Right is the closing bracket, if any.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	if err.Right == "" {
		return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
	}
	return errpos(err.Col, "mismatched bracket: "+err.Left+"expr"+err.Right)
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Unwrap() error {
	return ErrMismatchedBrackets
}

// TokenError indicates a token given to Convert that is neither a number, an
// operator, nor a bracket. It implements InputError.
type TokenError struct {
	// Col is the 1-based index of the token in the token sequence.
	Col int
	// Token is the token that was not understood.
	Token Token
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "invalid token "+strconv.Quote(string(err.Token)))
}

func (err *TokenError) Pos() int {
	return err.Col
}

func (err *TokenError) Unwrap() error {
	return ErrInvalidArgument
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error. For LexError it counts runes of
	// the expression; for errors from Convert it counts tokens.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*TokenError)(nil)
)
