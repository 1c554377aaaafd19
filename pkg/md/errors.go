package md

import (
	"errors"
	"fmt"
)

// Sentinel errors for matching with errors.Is.
var (
	ErrUnsupportedTag  = errors.New("unsupported tag")
	ErrUnbalancedFence = errors.New("unbalanced code fence")
)

// UnsupportedTagError reports an open tag outside the allow-list. Last is the
// node appended just before the tag, or nil if nothing had been converted.
type UnsupportedTagError struct {
	Tag  string
	Last Node
}

func (e *UnsupportedTagError) Error() string {
	last := "(none)"
	if e.Last != nil {
		last = fmt.Sprintf("%q", e.Last.Markdown())
	}
	return fmt.Sprintf("%s tags are not implemented (last output: %s)", e.Tag, last)
}

// Unwrap lets errors.Is match ErrUnsupportedTag.
func (e *UnsupportedTagError) Unwrap() error {
	return ErrUnsupportedTag
}

// UnbalancedFenceError reports an odd number of ``` fence markers.
type UnbalancedFenceError struct {
	Markers int
}

func (e *UnbalancedFenceError) Error() string {
	return fmt.Sprintf("found %d code fence markers, expected an even number", e.Markers)
}

// Unwrap lets errors.Is match ErrUnbalancedFence.
func (e *UnbalancedFenceError) Unwrap() error {
	return ErrUnbalancedFence
}
