package postfix_test

import (
	"testing"

	"github.com/zephyrtronium/postfix"
)

func FuzzConvert(f *testing.F) {
	f.Add("1+2*3")
	f.Add("(1+2)*3")
	f.Add("[1-(2/3)]")
	f.Add("1+2)")
	f.Fuzz(func(t *testing.T, s string) {
		toks, err := postfix.ConvertString(s)
		if err != nil {
			if toks != nil {
				t.Errorf("%q: partial output %q with error %v", s, toks, err)
			}
			return
		}
		in, err := postfix.Collect(postfix.Tokenize(s))
		if err != nil {
			t.Fatalf("%q: converted but failed to tokenize: %v", s, err)
		}
		brackets := 0
		for _, tok := range in {
			switch tok.Kind() {
			case postfix.KindLeftBracket, postfix.KindRightBracket:
				brackets++
			}
		}
		if len(toks)+brackets != len(in) {
			t.Errorf("%q: %d tokens in, %d brackets, %d tokens out", s, len(in), brackets, len(toks))
		}
		for _, tok := range toks {
			switch tok.Kind() {
			case postfix.KindNumber, postfix.KindOperator:
			default:
				t.Errorf("%q: invalid output token %q", s, tok)
			}
		}
	})
}

func FuzzTokenize(f *testing.F) {
	f.Add("12+345")
	f.Add("1 0")
	f.Add("[]")
	f.Fuzz(func(t *testing.T, s string) {
		for tok, err := range postfix.Tokenize(s) {
			if err != nil {
				return
			}
			if tok.Kind() == postfix.KindInvalid {
				t.Errorf("%q: tokenized invalid token %q", s, tok)
			}
		}
	})
}
