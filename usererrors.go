package ssss

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/goware/prefixer"
	wordwrap "github.com/mitchellh/go-wordwrap"
)

// UserError is a well-formatted error for the purpose of being displayed to
// the end user.
type UserError interface {
	error
	UserError() string
}

var statusOK = color.New(color.FgGreen).Sprint("OK")
var statusDuplicate = color.New(color.FgRed).Sprint("DUPLICATE")

// combineError decorates a reconstruction failure with the share batch
// that produced it, so the operator can see which entries collide.
type combineError struct {
	err    error
	shares []Share
}

func newCombineError(err error, shares []Share) error {
	return &combineError{err: err, shares: shares}
}

func (e *combineError) Error() string {
	return e.err.Error()
}

func (e *combineError) Unwrap() error {
	return e.err
}

func (e *combineError) UserError() string {
	trailer := wordwrap.WrapString("The shares entered do not determine a "+
		"unique secret. This usually means the same share was entered "+
		"twice, or that shares from different splits were mixed. Check the "+
		"indices below and retry with a consistent set.", 75)

	counts := make(map[uint8]int)
	for _, s := range e.shares {
		counts[s.Index]++
	}
	var list strings.Builder
	for _, s := range e.shares {
		status := statusOK
		if counts[s.Index] > 1 {
			status = statusDuplicate
		}
		fmt.Fprintf(&list, "share %d: %s\n", s.Index, status)
	}
	reader := prefixer.New(strings.NewReader(list.String()), "  ")
	// Safe to ignore this error, as reading from a strings.Reader can't fail
	indented, _ := io.ReadAll(reader)

	return fmt.Sprintf("Failed to reconstruct the secret from the shares "+
		"provided.\n\n%s\n%s", string(indented), trailer)
}
