package proteus

import (
	"fmt"
	"sort"
	"strings"
)

// Diagnostic message templates. Wording is stable: callers and tests
// match on it, and downstream tooling keys summaries off these strings.

func msgIDNotFound(tag string) string {
	return fmt.Sprintf("ID not found for element '%s'. Element Skipped.", tag)
}

func msgDuplicateID(id, tag string) string {
	return fmt.Sprintf("Duplicate ID '%s' for element '%s'. Element Skipped.", id, tag)
}

func msgPassSkipped(pass, tag string) string {
	return fmt.Sprintf("Pass %s skipped for element '%s': no object produced in compositional pass.", pass, tag)
}

func msgPhaseError(pass, tag string, err error) string {
	return fmt.Sprintf("Error in parsing step %s in %s: %v", pass, tag, err)
}

func msgUnknownClass(class, tag string) string {
	return fmt.Sprintf("Unknown ComponentClass '%s' for element '%s'. Falling back to custom class.", class, tag)
}

func msgAssociationInvalid(tag string) string {
	return fmt.Sprintf("Invalid association in element '%s': missing target id, relation type, or unresolved target. Association dropped.", tag)
}

func msgAssociationTypeUnknown(relation, tag string) string {
	return fmt.Sprintf("Association type '%s' is not supported for element '%s'. Association dropped.", relation, tag)
}

func msgAssociationUnsupported(relation, tag string) string {
	return fmt.Sprintf("Association type '%s' on element '%s' is not resolved: the relation is ill-defined in the source format. Association dropped.", relation, tag)
}

func msgAssociationAdded(field string, reversed bool) string {
	if reversed {
		return fmt.Sprintf("Association added in control pass to field '%s' (reverse order).", field)
	}
	return fmt.Sprintf("Association added in control pass to field '%s'.", field)
}

func msgAssociationNotAdded(ownerID, targetID string) string {
	return fmt.Sprintf("Association between '%s' and '%s' could not be added in control pass.", ownerID, targetID)
}

func msgDuplicateAttributes(names map[string]bool) string {
	dup := make([]string, 0, len(names))
	for name := range names {
		dup = append(dup, name)
	}
	sort.Strings(dup)
	return fmt.Sprintf("Duplicate generic attributes across blocks: %s. First occurrence kept.", strings.Join(dup, ", "))
}

func msgAttributeSetUnknown(set string) string {
	return fmt.Sprintf("Unknown generic attribute set '%s'. Block skipped.", set)
}

func msgNumPointsMismatch(declared, actual int) string {
	return fmt.Sprintf("NumPoints declares %d connection nodes but %d were found.", declared, actual)
}

func msgPortIndexOutOfRange(kind string, index, count int) string {
	return fmt.Sprintf("Main %s port index %d is out of range for %d nodes. Falling back to default.", kind, index, count)
}

func msgDuplicatePortDeclaration(kind, tag string) string {
	return fmt.Sprintf("Main %s port declared more than once for element '%s'. First declaration kept.", kind, tag)
}

func msgDuplicateConnection(tag string) string {
	return fmt.Sprintf("Multiple Connection declarations for element '%s'. First declaration kept.", tag)
}

func msgSegmentsChained(fromID, toID string) string {
	return fmt.Sprintf("Inferred connection from segment '%s' to segment '%s'.", fromID, toID)
}

func msgMissingMetadata(fields []string) string {
	return fmt.Sprintf("PlantInformation is missing required fields: %s. Load aborted.", strings.Join(fields, ", "))
}

func msgMetadataMismatch(field, want, got string) string {
	return fmt.Sprintf("PlantInformation field %s is '%s', expected '%s'.", field, got, want)
}

func msgTimestampInvalid(date, clock string, err error) string {
	return fmt.Sprintf("Could not parse export timestamp from Date '%s' and Time '%s': %v.", date, clock, err)
}
