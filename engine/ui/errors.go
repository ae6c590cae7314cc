package ui

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every *LookupError.
	ErrNotFound = errors.New("widget not found")
	// ErrUnknownTag marks a declarative item whose tag names no widget.
	ErrUnknownTag = errors.New("unknown tag")
	// ErrValueShape marks a declarative item whose value has the wrong kind
	// for its tag (a list on a leaf, a scalar on a container).
	ErrValueShape = errors.New("wrong value shape")
)

// LookupError is returned by Ui.Find when no node carries the key.
type LookupError struct {
	Key  string
	From WidgetUID // where the search started
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("find %q from %s: %v", e.Key, e.From, ErrNotFound)
}

func (e *LookupError) Unwrap() error { return ErrNotFound }

// ConstructionError reports malformed declarative input. The tree being built
// when it occurs must not be laid out or painted.
type ConstructionError struct {
	Tag   string
	Index int       // position of the item within its list
	Path  WidgetUID // cursor the item was being appended to
	Err   error     // ErrUnknownTag or ErrValueShape
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("build %s item %d (%q): %v", e.Path, e.Index, e.Tag, e.Err)
}

func (e *ConstructionError) Unwrap() error { return e.Err }
