// Package inspect ties the external tools together: it captures nm and
// llvm-dwarfdump output for concrete binaries and answers attribute
// queries against the capture.
package inspect

import (
	"errors"

	"github.com/hitzhangjie/dwat/pkg/dump"
	"github.com/hitzhangjie/dwat/pkg/dwarfdump"
)

// Config configures an Inspector. Dumper must be a resolved executable
// path, see dump.DiscoverDumper; constructing the config once up front
// keeps tool resolution out of the query path.
type Config struct {
	Dumper string      // llvm-dwarfdump executable
	NM     string      // symbol lister, defaults to "nm"
	Runner dump.Runner // defaults to a shared ExecRunner
}

// Inspector runs the tools per query. It is immutable after New and holds
// no per-binary state, every query captures fresh output.
type Inspector struct {
	dumper string
	nm     string
	runner dump.Runner
}

// New builds an Inspector from cfg.
func New(cfg Config) (*Inspector, error) {
	if cfg.Dumper == "" {
		return nil, errors.New("inspect: dumper executable not configured")
	}
	ins := &Inspector{
		dumper: cfg.Dumper,
		nm:     cfg.NM,
		runner: cfg.Runner,
	}
	if ins.nm == "" {
		ins.nm = "nm"
	}
	if ins.runner == nil {
		ins.runner = &dump.ExecRunner{}
	}
	return ins, nil
}

// On binds the inspector to a pair of binaries: symBin provides the symbol
// table, dumpBin the debug-info dump. Stripping workflows keep symbols in
// the unstripped copy while the dump comes from the stripped one; passing
// the same path twice inspects a single binary.
func (ins *Inspector) On(symBin, dumpBin string) *View {
	return &View{ins: ins, symBin: symBin, dumpBin: dumpBin}
}

// View is an Inspector bound to concrete binaries.
type View struct {
	ins     *Inspector
	symBin  string
	dumpBin string
}

func (v *View) capture() (*dwarfdump.Query, error) {
	symLines, err := v.ins.runner.Run(v.ins.nm, []string{v.symBin}, nil)
	if err != nil {
		return nil, err
	}
	dumpLines, err := v.ins.runner.Run(v.ins.dumper, []string{v.dumpBin}, nil)
	if err != nil {
		return nil, err
	}
	return &dwarfdump.Query{Dump: dumpLines, Symtab: symLines}, nil
}

// Attrs lists the attributes of the symbol's debug-info entry.
func (v *View) Attrs(kind dwarfdump.SymbolKind, symbol string) ([]dwarfdump.Attr, error) {
	q, err := v.capture()
	if err != nil {
		return nil, err
	}
	return q.Attrs(kind, symbol)
}

// HasAttr reports whether the symbol's entry carries DW_AT_<attr>.
func (v *View) HasAttr(kind dwarfdump.SymbolKind, symbol, attr string) (bool, error) {
	q, err := v.capture()
	if err != nil {
		return false, err
	}
	return q.HasAttr(kind, symbol, attr)
}

// AttrValue returns the value of DW_AT_<attr> on the symbol's entry,
// ok=false when the entry lacks that attribute.
func (v *View) AttrValue(kind dwarfdump.SymbolKind, symbol, attr string) (string, bool, error) {
	q, err := v.capture()
	if err != nil {
		return "", false, err
	}
	return q.AttrValue(kind, symbol, attr)
}

// FunctionHasAttr shorthand for HasAttr on a function symbol.
func (v *View) FunctionHasAttr(symbol, attr string) (bool, error) {
	return v.HasAttr(dwarfdump.KindFunction, symbol, attr)
}

// FunctionAttrValue shorthand for AttrValue on a function symbol.
func (v *View) FunctionAttrValue(symbol, attr string) (string, bool, error) {
	return v.AttrValue(dwarfdump.KindFunction, symbol, attr)
}

// VariableHasAttr shorthand for HasAttr on a variable symbol.
func (v *View) VariableHasAttr(symbol, attr string) (bool, error) {
	return v.HasAttr(dwarfdump.KindVariable, symbol, attr)
}

// VariableAttrValue shorthand for AttrValue on a variable symbol.
func (v *View) VariableAttrValue(symbol, attr string) (string, bool, error) {
	return v.AttrValue(dwarfdump.KindVariable, symbol, attr)
}
