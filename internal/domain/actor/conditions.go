package actor

import "slices"

// Conditions is an ordered, duplicate-free list of opaque status labels.
// Insertion order is significant: the first label is the one removed by the
// "remove first condition" shortcut and moved to the back by Rotate.
//
// Mutators report whether the list changed so callers can skip persisting
// no-op edits.
type Conditions []string

// Add appends label unless an identical (case-sensitive) label is present.
func (c *Conditions) Add(label string) bool {
	if slices.Contains(*c, label) {
		return false
	}
	*c = append(*c, label)
	return true
}

// Remove deletes label from the list. It is a no-op if label is absent.
func (c *Conditions) Remove(label string) bool {
	i := slices.Index(*c, label)
	if i < 0 {
		return false
	}
	*c = slices.Delete(*c, i, i+1)
	return true
}

// RemoveAll clears the list.
func (c *Conditions) RemoveAll() bool {
	if len(*c) == 0 {
		return false
	}
	*c = Conditions{}
	return true
}

// Rotate moves the first label to the end of the list.
func (c *Conditions) Rotate() bool {
	if len(*c) < 2 {
		return false
	}
	first := (*c)[0]
	*c = append(slices.Clone((*c)[1:]), first)
	return true
}

// First returns the first label, or false when the list is empty.
func (c Conditions) First() (string, bool) {
	if len(c) == 0 {
		return "", false
	}
	return c[0], true
}

// Contains reports whether label is in the list.
func (c Conditions) Contains(label string) bool {
	return slices.Contains(c, label)
}

// Clone returns an independent copy. A nil list clones to an empty one.
func (c Conditions) Clone() Conditions {
	if c == nil {
		return Conditions{}
	}
	return slices.Clone(c)
}
