package dwarfdump

import "fmt"

// ErrEntryNotFound no dump line matches the anchor pattern: the symbol
// resolved to an address but its debug-info entry is missing, typically
// stripped or never emitted by the compiler.
type ErrEntryNotFound struct {
	Symbol  string
	Pattern string
}

func (e *ErrEntryNotFound) Error() string {
	if e.Symbol != "" {
		return fmt.Sprintf("no debug-info entry for %s (anchor %q)", e.Symbol, e.Pattern)
	}
	return fmt.Sprintf("no debug-info entry matching anchor %q", e.Pattern)
}

// ErrMalformedDump the anchor line was found but no consistent entry block
// could be established around it.
type ErrMalformedDump struct {
	Symbol  string
	Pattern string
}

func (e *ErrMalformedDump) Error() string {
	if e.Symbol != "" {
		return fmt.Sprintf("cannot delimit debug-info entry for %s (anchor %q)", e.Symbol, e.Pattern)
	}
	return fmt.Sprintf("cannot delimit debug-info entry around anchor %q", e.Pattern)
}
