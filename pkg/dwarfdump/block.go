package dwarfdump

import "strings"

// ResolveEntry returns the contiguous block of dump lines describing the
// entry of the symbol with the given kind and symbol-table address.
//
// Entries are delimited by blank lines; the block is the slice strictly
// between the nearest blank line before the anchor and the nearest blank
// line after it. When the entry is the first or last of the dump and a
// delimiter is missing on one side, the sequence boundary stands in for it.
//
// The anchor must match a dump line exactly, indentation included: shorter
// attribute names are prefixes of longer ones, and the fixed indentation
// pins the nesting depth as well as the content.
func ResolveEntry(dump []string, kind SymbolKind, addr string) ([]string, error) {
	pattern := kind.anchor(addr)

	anchor := -1
	var blanks []int
	for i, line := range dump {
		if strings.TrimSpace(line) == "" {
			blanks = append(blanks, i)
			continue
		}
		if anchor < 0 && line == pattern {
			anchor = i
		}
	}
	if anchor < 0 {
		return nil, &ErrEntryNotFound{Pattern: pattern}
	}

	start, end := -1, len(dump)
	for _, i := range blanks {
		if i < anchor {
			start = i
		} else {
			end = i
			break
		}
	}

	block := dump[start+1 : end]
	if len(block) == 0 {
		return nil, &ErrMalformedDump{Pattern: pattern}
	}
	return block, nil
}
