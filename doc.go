// Package postfix converts infix arithmetic expressions to postfix (reverse
// Polish) notation.
//
// Expressions are written over digits, the operators + - * /, and the brackets
// ( ) [ ], with no whitespace. "12+3*4" becomes "12 3 4 * +", and "(1+2)*3"
// becomes "1 2 + 3 *". Multiplication and division bind more tightly than
// addition and subtraction, and all four operators are left-associative, so
// "1-2-3" is "1 2 - 3 -".
//
// Tokenize splits an expression lazily, and Convert reorders the tokens with
// the shunting-yard algorithm. Neither holds any state between calls, so
// independent expressions may be converted concurrently.
//
package postfix
