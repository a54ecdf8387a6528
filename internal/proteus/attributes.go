package proteus

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jacoelho/dexpi/internal/xmldoc"
	"github.com/jacoelho/dexpi/model"
)

// Generic-attribute set kinds recognized on GenericAttributes blocks.
var attributeSetKinds = map[string]bool{
	"DexpiAttributes":       true,
	"CustomAttributes":      true,
	"DexpiCustomAttributes": true,
}

var attributeNameSuffixes = []string{"AssignmentClass", "Specialization"}

// normalizeAttributeName maps a declared attribute name to its candidate
// field name: known suffixes are stripped and the first rune is
// lower-cased.
func normalizeAttributeName(name string) string {
	for _, suffix := range attributeNameSuffixes {
		if trimmed, ok := strings.CutSuffix(name, suffix); ok && trimmed != "" {
			name = trimmed
			break
		}
	}
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToLower(r)) + name[size:]
}

// decodeAttributes decodes the GenericAttributes blocks of an element
// into the target's attribute map, guided by the target's field schema.
// Blocks are processed in document order and attributes in block order;
// a field set by an earlier block wins, later occurrences are dropped
// and reported once as a single ERROR naming every duplicate.
func decodeAttributes(ctx Context, el *xmldoc.Element, target model.Attributed) {
	schema := target.AttrSchema()
	specs := make(map[string]model.AttrSpec, len(schema))
	for _, s := range schema {
		specs[s.Name] = s
	}

	multi := make(map[string]model.MultiLanguageString)
	var multiOrder []string
	duplicates := make(map[string]bool)

	for _, block := range el.ChildrenByTag("GenericAttributes") {
		if set := block.AttrValue("Set"); !attributeSetKinds[set] {
			ctx.Warn(msgAttributeSetUnknown(set))
			continue
		}
		for _, attr := range block.ChildrenByTag("GenericAttribute") {
			field := normalizeAttributeName(attr.AttrValue("Name"))
			spec, ok := specs[field]
			if !ok {
				continue
			}
			value, ok := attr.Attr("Value")
			if !ok {
				continue
			}

			if spec.Kind == model.AttrMultiLanguage {
				if _, seen := multi[field]; !seen {
					multiOrder = append(multiOrder, field)
				}
				multi[field] = append(multi[field], model.LocalizedText{
					Language: attr.AttrValue("Language"),
					Text:     value,
				})
				continue
			}

			if _, seen := target.Attribute(field); seen {
				duplicates[field] = true
				continue
			}

			decoded, err := coerceAttribute(spec, value, attr)
			if err != nil {
				ctx.Error(err.Error())
				continue
			}
			target.SetAttribute(field, decoded)
		}
	}

	for _, field := range multiOrder {
		target.SetAttribute(field, multi[field])
	}

	if len(duplicates) > 0 {
		ctx.Error(msgDuplicateAttributes(duplicates))
	}
}

func coerceAttribute(spec model.AttrSpec, value string, attr *xmldoc.Element) (model.Value, error) {
	switch spec.Kind {
	case model.AttrString:
		return model.String(value), nil
	case model.AttrInteger:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("attribute %s: invalid integer %q", spec.Name, value)
		}
		return model.Integer(n), nil
	case model.AttrQuantity:
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: invalid number %q", spec.Name, value)
		}
		unit := attr.AttrValue("Units")
		if !containsString(spec.Units, unit) {
			return nil, fmt.Errorf("attribute %s: unknown unit %q", spec.Name, unit)
		}
		return model.Quantity{Value: f, Unit: unit}, nil
	case model.AttrEnum:
		if !containsString(spec.Enum, value) {
			return nil, fmt.Errorf("attribute %s: unknown enumeration value %q", spec.Name, value)
		}
		return model.EnumValue{Set: spec.Name, Value: value}, nil
	default:
		return nil, fmt.Errorf("attribute %s: unrecognized declared type", spec.Name)
	}
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
