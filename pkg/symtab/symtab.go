// Package symtab locates symbol addresses in the textual output of nm.
package symtab

import (
	"fmt"
	"strings"
)

// ErrSymbolNotFound symbol missing from the symbol table listing.
//
// This usually points at the build or stripping pipeline under test, so it
// must reach the caller instead of degrading into "no attributes".
type ErrSymbolNotFound struct {
	Symbol string
}

func (e *ErrSymbolNotFound) Error() string {
	return fmt.Sprintf("symbol %s not found in symbol table", e.Symbol)
}

// Locate returns the address token of symbol within the nm output lines.
//
// A line matches when its last field equals symbol; the first field of the
// first matching line is the address. The address stays a text token (nm
// renders hex), it is only ever used to build a search pattern.
func Locate(symbol string, lines []string) (string, error) {
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		if fields[len(fields)-1] == symbol {
			return fields[0], nil
		}
	}
	return "", &ErrSymbolNotFound{Symbol: symbol}
}
