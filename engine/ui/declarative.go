package ui

import "github.com/hubastard/grui/engine/decl"

// Tags understood by Populate.
const (
	TagLabel      = "label"
	TagButton     = "button"
	TagHorizontal = "horizontal"
	TagVertical   = "vertical"
)

// Populate appends items under the cursor in order. Leaves need a string
// value, containers a list. The first malformed item aborts with a
// *ConstructionError; whatever was appended before it must be thrown away by
// the caller together with the rest of the frame.
func (u *Ui) Populate(items []decl.Item) error {
	for i, it := range items {
		if err := u.populateItem(i, it); err != nil {
			return err
		}
	}
	return nil
}

func (u *Ui) populateItem(index int, it decl.Item) error {
	fail := func(err error) error {
		return &ConstructionError{Tag: it.Tag, Index: index, Path: u.uid, Err: err}
	}

	var c *Ui
	switch it.Tag {
	case TagLabel, TagButton:
		if it.Value.Kind != decl.ValueString {
			return fail(ErrValueShape)
		}
		if it.Tag == TagLabel {
			c = u.Label(it.Value.Str)
		} else {
			c = u.Button(it.Value.Str)
		}
	case TagHorizontal, TagVertical:
		if !it.Value.IsList() {
			return fail(ErrValueShape)
		}
		var err error
		build := func(sub *Ui) { err = sub.Populate(it.Value.List) }
		if it.Tag == TagHorizontal {
			c = u.Horizontal(build)
		} else {
			c = u.Vertical(build)
		}
		if err != nil {
			return err
		}
	default:
		return fail(ErrUnknownTag)
	}

	if it.Key != "" {
		c.Key(it.Key)
	}
	return nil
}
