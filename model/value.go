package model

import (
	"fmt"
	"strings"
)

// Value is a decoded generic-attribute value.
type Value interface {
	isValue()
	String() string
}

// String is a plain text attribute value.
type String string

func (String) isValue() {}

func (s String) String() string { return string(s) }

// Integer is a whole-number attribute value.
type Integer int

func (Integer) isValue() {}

func (i Integer) String() string { return fmt.Sprintf("%d", int(i)) }

// LocalizedText is one language variant of a multi-language attribute.
type LocalizedText struct {
	Language string
	Text     string
}

// MultiLanguageString accumulates the language variants of one attribute
// in the order they appear in the source.
type MultiLanguageString []LocalizedText

func (MultiLanguageString) isValue() {}

func (m MultiLanguageString) String() string {
	parts := make([]string, 0, len(m))
	for _, t := range m {
		if t.Language == "" {
			parts = append(parts, t.Text)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s [%s]", t.Text, t.Language))
	}
	return strings.Join(parts, "; ")
}

// Quantity is a unit-bearing physical attribute value.
type Quantity struct {
	Value float64
	Unit  string
}

func (Quantity) isValue() {}

func (q Quantity) String() string { return fmt.Sprintf("%g %s", q.Value, q.Unit) }

// EnumValue is a closed-vocabulary attribute value. Set names the
// vocabulary the value was validated against.
type EnumValue struct {
	Set   string
	Value string
}

func (EnumValue) isValue() {}

func (e EnumValue) String() string { return e.Value }
