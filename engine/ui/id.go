package ui

import (
	"strconv"
	"strings"
)

// WidgetID is the position of a child within its parent for the current
// frame. It is only unique among siblings.
type WidgetID int

// WidgetUID is the root-to-node path of WidgetIDs. The root has the empty path.
//
// Identity is positional: a widget keeps its uid across frames as long as the
// appends leading to it happen in the same order with the same kinds.
type WidgetUID []WidgetID

// Child returns the path of the child with the given id. The result never
// shares its backing array with the receiver.
func (u WidgetUID) Child(id WidgetID) WidgetUID {
	out := make(WidgetUID, len(u)+1)
	copy(out, u)
	out[len(u)] = id
	return out
}

// Parent returns the path without its last element; false for the root.
// Like Child, the result is a fresh copy.
func (u WidgetUID) Parent() (WidgetUID, bool) {
	if len(u) == 0 {
		return nil, false
	}
	return append(WidgetUID{}, u[:len(u)-1]...), true
}

func (u WidgetUID) IsRoot() bool { return len(u) == 0 }

func (u WidgetUID) Equal(other WidgetUID) bool {
	if len(u) != len(other) {
		return false
	}
	for i := range u {
		if u[i] != other[i] {
			return false
		}
	}
	return true
}

func (u WidgetUID) String() string {
	if len(u) == 0 {
		return "/"
	}
	var sb strings.Builder
	for _, id := range u {
		sb.WriteByte('/')
		sb.WriteString(strconv.Itoa(int(id)))
	}
	return sb.String()
}

// Target is an optional WidgetUID. The zero value holds nothing.
type Target struct {
	uid WidgetUID
	ok  bool
}

// None is the empty Target.
var None = Target{}

func Some(uid WidgetUID) Target { return Target{uid: uid, ok: true} }

func (t Target) Get() (WidgetUID, bool) { return t.uid, t.ok }
func (t Target) Valid() bool            { return t.ok }

// Is reports whether t holds exactly uid.
func (t Target) Is(uid WidgetUID) bool { return t.ok && t.uid.Equal(uid) }

// Same reports whether both targets are empty or hold equal paths.
func (t Target) Same(other Target) bool {
	if t.ok != other.ok {
		return false
	}
	return !t.ok || t.uid.Equal(other.uid)
}

func (t Target) String() string {
	if !t.ok {
		return "none"
	}
	return t.uid.String()
}
