package dwarfdump

import "strings"

// Attr one attribute rendered on a debug-info entry, e.g. Name
// "DW_AT_type" with Value `(0x00000023 "int")`.
type Attr struct {
	Name  string
	Value string
}

// ExtractAttrs returns the attributes of an entry block in source order.
//
// Any line whose whitespace-trimmed form starts with the DW_AT_ marker is
// an attribute line; the name runs up to the first whitespace, the value is
// the rest of the line with its whitespace runs collapsed to single spaces
// (the dumper tab-separates the value and may render multi-token payloads
// like "0x4 DW_OP_fbreg"). Names may repeat; callers wanting one value take
// the first match, which sits closest to the entry's own line.
func ExtractAttrs(block []string) []Attr {
	var attrs []Attr
	for _, line := range block {
		trimmed := strings.TrimLeft(line, " \t")
		if !strings.HasPrefix(trimmed, attrMarker) {
			continue
		}
		fields := strings.Fields(trimmed)
		attrs = append(attrs, Attr{
			Name:  fields[0],
			Value: strings.Join(fields[1:], " "),
		})
	}
	return attrs
}
