// Package batch runs files of named infix expressions through the converter.
package batch

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/postfix"
)

// File is a batch of expressions to convert.
//
//	cases:
//	  - name: precedence
//	    infix: "1+2*3"
//	    want: "1 2 3 * +"
type File struct {
	Cases []Case `yaml:"cases"`
}

// Case is one named expression. Want, if non-empty, is the expected postfix
// output with tokens separated by single spaces.
type Case struct {
	Name  string `yaml:"name"`
	Infix string `yaml:"infix"`
	Want  string `yaml:"want,omitempty"`
}

// Validate checks that every case is named uniquely and has an expression.
func (f *File) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(f.Cases))
	for i, c := range f.Cases {
		switch {
		case c.Name == "":
			errs = append(errs, fmt.Errorf("case %d: missing name", i+1))
		case seen[c.Name]:
			errs = append(errs, fmt.Errorf("case %d: duplicate name %q", i+1, c.Name))
		}
		seen[c.Name] = true
		if c.Infix == "" {
			errs = append(errs, fmt.Errorf("case %d (%s): missing infix expression", i+1, c.Name))
		}
	}
	return errors.Join(errs...)
}

// Loader decodes batch files.
type Loader struct {
	reader io.Reader
}

func NewLoader(reader io.Reader) *Loader {
	return &Loader{
		reader: reader,
	}
}

// Load decodes the batch file, optionally validating it.
func (l *Loader) Load(validate bool) (*File, error) {
	decoder := yaml.NewDecoder(l.reader)
	decoder.KnownFields(true)
	var f File
	if err := decoder.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			// An empty document is an empty batch.
			return &f, nil
		}
		return nil, fmt.Errorf("decoding batch: %w", err)
	}
	if validate {
		if err := f.Validate(); err != nil {
			return nil, err
		}
	}
	return &f, nil
}

// Result is the outcome of converting one case.
type Result struct {
	Case Case
	// Postfix is the converted expression joined by the run's separator. It is
	// empty if Err is non-nil.
	Postfix string
	// Err is the conversion error, if any.
	Err error
	// Mismatch is set when the case has a Want that differs from the output.
	Mismatch bool
}

// Failed reports whether the case failed to convert or gave unexpected
// output.
func (r Result) Failed() bool {
	return r.Err != nil || r.Mismatch
}

// Run converts every case in f. Outputs are joined with sep; comparisons
// against Want always use single spaces.
func Run(f *File, sep string) []Result {
	results := make([]Result, 0, len(f.Cases))
	for _, c := range f.Cases {
		r := Result{Case: c}
		toks, err := postfix.ConvertString(c.Infix)
		if err != nil {
			r.Err = err
		} else {
			r.Postfix = postfix.Join(toks, sep)
			r.Mismatch = c.Want != "" && postfix.Join(toks, " ") != c.Want
		}
		results = append(results, r)
	}
	return results
}
