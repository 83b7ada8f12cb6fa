package postfix

import (
	"iter"
	"strings"
)

// opentry is an operator or left bracket waiting on the operator stack along
// with its position in the token sequence.
type opentry struct {
	tok Token
	col int
}

// Convert consumes an infix token sequence and returns the same tokens in
// postfix order using the shunting-yard algorithm. Numbers pass directly to
// the output, operators wait on a stack until an operator that binds no more
// tightly arrives, and brackets group subexpressions and never appear in the
// output.
//
// If the sequence yields an error, Convert stops consuming it and returns that
// error. Unbalanced or mismatched brackets produce a *BracketError, and tokens
// that are not numbers, operators, or brackets produce a *TokenError. Convert
// never returns partial output along with an error.
//
// Convert checks only bracket structure; e.g. "1+" converts to "1 +".
func Convert(tokens iter.Seq2[Token, error]) ([]Token, error) {
	var ops Stack[opentry]
	out := []Token{}
	col := 0
	for tok, err := range tokens {
		if err != nil {
			return nil, err
		}
		col++
		switch tok.Kind() {
		case KindNumber:
			out = append(out, tok)
		case KindLeftBracket:
			ops.Push(opentry{tok, col})
		case KindRightBracket:
			var err error
			out, err = closegroup(&ops, out, tok, col)
			if err != nil {
				return nil, err
			}
		case KindOperator:
			prec := binop(tok)
			for !ops.Empty() {
				top, _ := ops.Peek()
				if top.tok.Kind() == KindLeftBracket || prec.moreBinding(binop(top.tok)) {
					break
				}
				ops.Pop()
				out = append(out, top.tok)
			}
			ops.Push(opentry{tok, col})
		default:
			return nil, &TokenError{Col: col, Token: tok}
		}
	}
	for !ops.Empty() {
		top, _ := ops.Pop()
		if top.tok.Kind() == KindLeftBracket {
			return nil, &BracketError{Col: top.col, Left: string(top.tok)}
		}
		out = append(out, top.tok)
	}
	return out, nil
}

// closegroup moves operators from ops to out until reaching the left bracket
// that right closes, then discards that bracket.
func closegroup(ops *Stack[opentry], out []Token, right Token, col int) ([]Token, error) {
	for {
		top, err := ops.Pop()
		if err != nil {
			return nil, &BracketError{Col: col, Right: string(right)}
		}
		if top.tok.Kind() != KindLeftBracket {
			out = append(out, top.tok)
			continue
		}
		if closebrackets[rightbracket(top.tok)] != right {
			return nil, &BracketError{Col: col, Left: string(top.tok), Right: string(right)}
		}
		return out, nil
	}
}

// ConvertString is a shortcut to tokenize and convert an expression.
func ConvertString(expression string) ([]Token, error) {
	return Convert(Tokenize(expression))
}

// Join concatenates tokens with sep between each.
func Join(tokens []Token, sep string) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(string(tok))
	}
	return b.String()
}

// rightbracket gets the closing bracket index for an opening bracket.
func rightbracket(left Token) int {
	k := strings.Index(OpenBrackets, string(left))
	if k < 0 || len(left) != 1 {
		panic("postfix: invalid bracket " + string(left))
	}
	return k
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
}

// moreBinding reports whether p, arriving while than is on top of the operator
// stack, binds more tightly and so must wait on the stack above it. Equal
// precedence binds more tightly only for right-associative operators.
func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token. Panics if tok is not an operator.
func binop(tok Token) operator {
	switch tok {
	case "+", "-":
		return operator{1, false}
	case "*", "/":
		return operator{5, false}
	default:
		panic("postfix: unknown operator " + string(tok))
	}
}
