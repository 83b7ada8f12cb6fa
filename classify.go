package postfix

import (
	"strings"
	"unicode/utf8"
)

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/"

// OpenBrackets and CloseBrackets contain the runes which group expressions.
// The converter checks that a bracket in byte position k in OpenBrackets is
// matched with the bracket in byte position k in CloseBrackets.
const (
	OpenBrackets  = "(["
	CloseBrackets = ")]"
)

// Digits contains the runes which make up numbers.
const Digits = "0123456789"

// IsOperator reports whether c is one of the operators + - * /. The error is
// an *ArgumentError if c is not exactly one character.
func IsOperator(c string) (bool, error) {
	r, err := char("IsOperator", c)
	if err != nil {
		return false, err
	}
	return strings.ContainsRune(Operators, r), nil
}

// IsDigit reports whether c is a decimal digit 0 through 9. Any other single
// character is simply not a digit; the error is an *ArgumentError only if c is
// not exactly one character.
func IsDigit(c string) (bool, error) {
	r, err := char("IsDigit", c)
	if err != nil {
		return false, err
	}
	return isdigit(r), nil
}

// IsLeftBracket reports whether c is an opening bracket, ( or [.
func IsLeftBracket(c string) (bool, error) {
	r, err := char("IsLeftBracket", c)
	if err != nil {
		return false, err
	}
	return strings.ContainsRune(OpenBrackets, r), nil
}

// IsRightBracket reports whether c is a closing bracket, ) or ].
func IsRightBracket(c string) (bool, error) {
	r, err := char("IsRightBracket", c)
	if err != nil {
		return false, err
	}
	return strings.ContainsRune(CloseBrackets, r), nil
}

// IsNumber reports whether s is a whole number, i.e. one or more digits. Unlike
// the character classifiers, s may be any length except zero.
func IsNumber(s string) (bool, error) {
	if s == "" {
		return false, &ArgumentError{Func: "IsNumber"}
	}
	for _, r := range s {
		if !isdigit(r) {
			return false, nil
		}
	}
	return true, nil
}

// char decodes c as exactly one character.
func char(fn, c string) (rune, error) {
	r, sz := utf8.DecodeRuneInString(c)
	if sz == 0 || sz != len(c) {
		return 0, &ArgumentError{Func: fn, Arg: c}
	}
	return r, nil
}

func isdigit(r rune) bool {
	return '0' <= r && r <= '9'
}
