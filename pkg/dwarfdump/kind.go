// Package dwarfdump resolves and queries DWARF debug-info entries inside
// the textual output of llvm-dwarfdump.
//
// The dumper renders .debug_info as indented entry blocks separated by
// blank lines; each attribute sits on its own line:
//
//	0x0000001e:   DW_TAG_subprogram
//	                DW_AT_low_pc	(0x0000000000001040)
//	                DW_AT_name	("main")
//
// This package works on that text form only, it never decodes binary
// DWARF data.
package dwarfdump

import "strings"

const (
	// attrMarker prefix of every attribute name the dumper renders
	attrMarker = "DW_AT_"

	// entryIndent indentation the dumper uses for attribute lines of
	// top-level entries, sixteen spaces
	entryIndent = "                "
)

// SymbolKind selects the anchor format used to locate a symbol's entry.
type SymbolKind int

const (
	// KindFunction anchors on DW_AT_low_pc
	KindFunction SymbolKind = iota
	// KindVariable anchors on DW_AT_location with a DW_OP_addr operand
	KindVariable
)

func (k SymbolKind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindVariable:
		return "variable"
	default:
		return "unknown"
	}
}

// anchor builds the exact dump line identifying a symbol's entry.
//
// llvm-dwarfdump renders low_pc addresses zero-padded to fixed width but
// DW_OP_addr operands without leading zeros, so the variable form strips
// them from the symbol-table address before embedding it.
func (k SymbolKind) anchor(addr string) string {
	if k == KindVariable {
		return entryIndent + "DW_AT_location\t(DW_OP_addr 0x" + strings.TrimLeft(addr, "0") + ")"
	}
	return entryIndent + "DW_AT_low_pc\t(0x" + addr + ")"
}
