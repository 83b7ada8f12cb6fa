package postfix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/postfix"
)

func TestCharClassifiers(t *testing.T) {
	type classifier struct {
		name string
		f    func(string) (bool, error)
	}
	var (
		isop    = classifier{"IsOperator", postfix.IsOperator}
		isdigit = classifier{"IsDigit", postfix.IsDigit}
		isleft  = classifier{"IsLeftBracket", postfix.IsLeftBracket}
		isright = classifier{"IsRightBracket", postfix.IsRightBracket}
	)
	cases := []struct {
		fn   classifier
		c    string
		want bool
		err  bool
	}{
		{isop, "+", true, false},
		{isop, "-", true, false},
		{isop, "*", true, false},
		{isop, "/", true, false},
		{isop, "0", false, false},
		{isop, "^", false, false},
		{isop, "(", false, false},
		{isop, "21", false, true},
		{isop, "", false, true},

		{isdigit, "0", true, false},
		{isdigit, "9", true, false},
		{isdigit, "a", false, false},
		{isdigit, "+", false, false},
		{isdigit, "٣", false, false},
		{isdigit, "666", false, true},
		{isdigit, "", false, true},

		{isleft, "(", true, false},
		{isleft, "[", true, false},
		{isleft, "]", false, false},
		{isleft, ")", false, false},
		{isleft, "{", false, false},
		{isleft, "a", false, false},
		{isleft, "[(", false, true},
		{isleft, "", false, true},

		{isright, ")", true, false},
		{isright, "]", true, false},
		{isright, "(", false, false},
		{isright, "[", false, false},
		{isright, "}", false, false},
		{isright, "a", false, false},
		{isright, ")]", false, true},
		{isright, "", false, true},
	}
	for _, c := range cases {
		t.Run(c.fn.name+"/"+c.c, func(t *testing.T) {
			got, err := c.fn.f(c.c)
			if c.err {
				require.ErrorIs(t, err, postfix.ErrInvalidArgument)
				var ae *postfix.ArgumentError
				require.True(t, errors.As(err, &ae))
				assert.Equal(t, c.fn.name, ae.Func)
				assert.Equal(t, c.c, ae.Arg)
				assert.False(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestCharClassifiersIdempotent(t *testing.T) {
	fns := []func(string) (bool, error){
		postfix.IsOperator,
		postfix.IsDigit,
		postfix.IsLeftBracket,
		postfix.IsRightBracket,
	}
	for _, f := range fns {
		for _, c := range []string{"+", "7", "(", "]", "x", "", "12"} {
			in := c
			a, aerr := f(in)
			b, berr := f(in)
			assert.Equal(t, c, in)
			assert.Equal(t, a, b)
			assert.Equal(t, aerr == nil, berr == nil)
		}
	}
}

func TestIsNumber(t *testing.T) {
	cases := []struct {
		s    string
		want bool
	}{
		{"0", true},
		{"420", true},
		{"9876543210", true},
		{"A113", false},
		{"12a", false},
		{"1.5", false},
		{"-1", false},
		{"+", false},
	}
	for _, c := range cases {
		got, err := postfix.IsNumber(c.s)
		require.NoError(t, err, c.s)
		assert.Equal(t, c.want, got, c.s)
	}

	_, err := postfix.IsNumber("")
	assert.ErrorIs(t, err, postfix.ErrInvalidArgument)
}
