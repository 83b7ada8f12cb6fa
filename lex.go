package postfix

import (
	"errors"
	"io"
	"iter"
	"strconv"
	"strings"
)

// Token is a number, an operator, or a bracket. Tokens carry no position
// information.
type Token string

// Kind classifies the token.
func (t Token) Kind() Kind {
	if len(t) == 1 {
		switch {
		case strings.Contains(Operators, string(t)):
			return KindOperator
		case strings.Contains(OpenBrackets, string(t)):
			return KindLeftBracket
		case strings.Contains(CloseBrackets, string(t)):
			return KindRightBracket
		}
	}
	if ok, _ := IsNumber(string(t)); ok {
		return KindNumber
	}
	return KindInvalid
}

// Kind is the class of a token.
type Kind int8

const (
	// KindInvalid is any string that is not a token.
	KindInvalid Kind = iota
	// KindNumber is one or more digits.
	KindNumber
	// KindOperator is one of + - * /.
	KindOperator
	// KindLeftBracket is an open bracket, ( or [.
	KindLeftBracket
	// KindRightBracket is a close bracket, ) or ].
	KindRightBracket
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "Invalid"
	case KindNumber:
		return "Number"
	case KindOperator:
		return "Operator"
	case KindLeftBracket:
		return "LeftBracket"
	case KindRightBracket:
		return "RightBracket"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

func byteidcs(s string) []Token {
	v := make([]Token, len(s))
	for i, r := range s {
		v[i] = Token(r)
	}
	return v
}

var (
	opertoks      = byteidcs(Operators)
	openbrackets  = byteidcs(OpenBrackets)
	closebrackets = byteidcs(CloseBrackets)
)

// Lexer splits an expression into tokens. It is not safe to use a Lexer
// concurrently.
type Lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	err  error
}

// NewLexer creates a lexer reading from src.
func NewLexer(src io.RuneScanner) *Lexer {
	return &Lexer{src: src}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *Lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *Lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// Next scans the next token from the input. At the end of the input, the
// result is an empty token with io.EOF. Once Next returns an error, every
// subsequent call returns the same error.
func (l *Lexer) Next() (Token, error) {
	if l.err != nil {
		return "", l.err
	}
	tok, err := l.next()
	if err != nil {
		l.err = err
		return "", err
	}
	return tok, nil
}

func (l *Lexer) next() (Token, error) {
	r, err := l.readRune()
	if err != nil {
		return "", err
	}
	if isdigit(r) {
		l.unreadRune()
		return l.scanNum()
	}
	if k := strings.IndexRune(Operators, r); k >= 0 {
		return opertoks[k], nil
	}
	if k := strings.IndexRune(OpenBrackets, r); k >= 0 {
		return openbrackets[k], nil
	}
	if k := strings.IndexRune(CloseBrackets, r); k >= 0 {
		return closebrackets[k], nil
	}
	return "", &LexError{Text: string(r), Col: l.rune}
}

func (l *Lexer) scanNum() (Token, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// next unreads the digit that decides number scanning before
				// calling scanNum, so we have scanned at least one rune.
				break
			}
			return "", err
		}
		if !isdigit(r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	return Token(l.buf.String()), nil
}

// All returns the remaining tokens as a sequence. The sequence ends after the
// first error it yields. Like the lexer itself, it can only be consumed once:
// ranging over it again continues from where the previous range stopped.
func (l *Lexer) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := l.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(tok, err) || err != nil {
				return
			}
		}
	}
}

// Tokenize returns a lazy sequence of the tokens in expression. Expressions
// contain no whitespace; any character other than digits, operators, and
// brackets produces a *LexError.
func Tokenize(expression string) iter.Seq2[Token, error] {
	return NewLexer(strings.NewReader(expression)).All()
}

// Collect drains a token sequence into a slice. It stops at the first error
// and returns no tokens with it.
func Collect(tokens iter.Seq2[Token, error]) ([]Token, error) {
	var r []Token
	for tok, err := range tokens {
		if err != nil {
			return nil, err
		}
		r = append(r, tok)
	}
	return r, nil
}
