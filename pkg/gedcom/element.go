package gedcom

import (
	"strconv"
	"strings"
)

// Element is one generic node of the parsed tree: a single source line plus
// its nested lines. Children are owned exclusively by their parent and keep
// source order. Every child's level equals the parent's level plus one.
type Element struct {
	Level    int
	XRef     string
	Tag      string
	Value    string
	Children []*Element
}

// NewElement builds an element from its own tokenized line plus the raw
// buffer of all deeper lines that follow it. The buffer is partitioned
// recursively: each line at level+1 opens a new child, and the lines of
// greater level immediately after it form that child's own buffer.
//
// Blank lines in the buffer are skipped. A malformed buffer line aborts
// construction.
func NewElement(level int, xref, tag, value string, buffer []string) (*Element, error) {
	el := &Element{Level: level, XRef: xref, Tag: tag, Value: value}

	var open *Line
	var childBuf []string
	flush := func() error {
		if open == nil {
			return nil
		}
		child, err := NewElement(open.Level, open.XRef, open.Tag, open.Value, childBuf)
		if err != nil {
			return err
		}
		el.Children = append(el.Children, child)
		open = nil
		childBuf = nil
		return nil
	}

	for _, raw := range buffer {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		line, err := ParseLine(raw)
		if err != nil {
			return nil, err
		}
		switch {
		case line.Level == level+1:
			if err := flush(); err != nil {
				return nil, err
			}
			open = &line
		case open != nil:
			// Deeper line inside the currently open child.
			childBuf = append(childBuf, raw)
		}
		// Lines deeper than level+1 before any child opened have no valid
		// parent and are dropped; Verify reports them.
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return el, nil
}

// SubElements returns the ordered list of immediate children whose tag
// matches. It returns an empty slice when none match and never inspects
// deeper descendants. This is the sole navigation primitive the specialized
// record types use to derive their fields.
func (e *Element) SubElements(tag string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// firstSub returns the first immediate child with the given tag, or nil.
func (e *Element) firstSub(tag string) *Element {
	for _, c := range e.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// firstValue returns the value of the first immediate child with the given
// tag, or the empty string when absent.
func (e *Element) firstValue(tag string) string {
	if c := e.firstSub(tag); c != nil {
		return c.Value
	}
	return ""
}

// Gedcom reconstitutes the original line format for this element and its
// whole subtree. Each node emits "<level> [<xref> ]<tag>[ <value>]" followed
// by a newline, depth-first in source order.
func (e *Element) Gedcom() string {
	var sb strings.Builder
	e.writeGedcom(&sb)
	return sb.String()
}

func (e *Element) writeGedcom(sb *strings.Builder) {
	sb.WriteString(strconv.Itoa(e.Level))
	if e.XRef != "" {
		sb.WriteByte(' ')
		sb.WriteString(e.XRef)
	}
	sb.WriteByte(' ')
	sb.WriteString(e.Tag)
	if e.Value != "" {
		sb.WriteByte(' ')
		sb.WriteString(e.Value)
	}
	sb.WriteByte('\n')
	for _, c := range e.Children {
		c.writeGedcom(sb)
	}
}
