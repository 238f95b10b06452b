package dwarfdump

import "github.com/hitzhangjie/dwat/pkg/symtab"

// Query answers attribute questions about one captured pair of tool
// outputs. It holds no other state: every call re-resolves from scratch,
// so repeated calls with identical inputs return identical results.
type Query struct {
	Dump   []string // llvm-dwarfdump output for the inspected binary
	Symtab []string // nm output providing the symbol addresses
}

// Attrs lists all attributes of the symbol's entry in block order.
func (q *Query) Attrs(kind SymbolKind, symbol string) ([]Attr, error) {
	addr, err := symtab.Locate(symbol, q.Symtab)
	if err != nil {
		return nil, err
	}
	block, err := ResolveEntry(q.Dump, kind, addr)
	if err != nil {
		return nil, tagSymbol(err, symbol)
	}
	return ExtractAttrs(block), nil
}

// HasAttr reports whether the symbol's entry carries DW_AT_<attr>.
// A missing attribute is an ordinary false, only resolution failures error.
func (q *Query) HasAttr(kind SymbolKind, symbol, attr string) (bool, error) {
	attrs, err := q.Attrs(kind, symbol)
	if err != nil {
		return false, err
	}
	name := attrMarker + attr
	for _, a := range attrs {
		if a.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// AttrValue returns the value of the first DW_AT_<attr> on the symbol's
// entry. ok reports presence: an entry without the attribute yields
// ("", false, nil), not an error.
func (q *Query) AttrValue(kind SymbolKind, symbol, attr string) (value string, ok bool, err error) {
	attrs, err := q.Attrs(kind, symbol)
	if err != nil {
		return "", false, err
	}
	name := attrMarker + attr
	for _, a := range attrs {
		if a.Name == name {
			return a.Value, true, nil
		}
	}
	return "", false, nil
}

// tagSymbol records the queried symbol on resolver errors for diagnosis.
func tagSymbol(err error, symbol string) error {
	switch e := err.(type) {
	case *ErrEntryNotFound:
		e.Symbol = symbol
	case *ErrMalformedDump:
		e.Symbol = symbol
	}
	return err
}
