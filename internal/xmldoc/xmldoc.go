// Package xmldoc materializes an XML document as an ordered element tree.
// Proteus files are small enough that a full tree is cheaper than
// streaming, and sibling order is semantically significant for several
// element types, so the tree preserves child and attribute order exactly
// as they appear in the source.
package xmldoc

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Attr is a single element attribute.
type Attr struct {
	Name  string
	Value string
}

// Element is one XML element with its attributes and children in
// document order. Text holds the concatenated character data directly
// inside the element, trimmed of surrounding whitespace.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []*Element
	Text     string
}

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttrValue returns the named attribute's value, or "" when absent.
func (e *Element) AttrValue(name string) string {
	v, _ := e.Attr(name)
	return v
}

// ChildrenByTag returns the direct children with the given tag, in order.
func (e *Element) ChildrenByTag(tag string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// FirstChild returns the first direct child with the given tag, or nil.
func (e *Element) FirstChild(tag string) *Element {
	for _, c := range e.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// Parse decodes a document from r into an element tree rooted at the
// document element.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)

	var root *Element
	var stack []*Element
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Tag: t.Name.Local}
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
					continue
				}
				el.Attrs = append(el.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("parse xml: multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("parse xml: unbalanced end element %s", t.Name.Local)
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			text := strings.TrimSpace(string(t))
			if text == "" {
				continue
			}
			cur := stack[len(stack)-1]
			if cur.Text != "" {
				cur.Text += " "
			}
			cur.Text += text
		}
	}

	if root == nil {
		return nil, fmt.Errorf("parse xml: no root element")
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("parse xml: unexpected end of document")
	}
	return root, nil
}
