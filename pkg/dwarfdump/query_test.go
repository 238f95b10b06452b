package dwarfdump

import (
	"errors"
	"testing"

	"github.com/hitzhangjie/dwat/pkg/symtab"
	"github.com/stretchr/testify/require"
)

func testSymtab() []string {
	return []string{
		"0000000000001040 T main",
		"0000000000001060 T just_loop",
		"0000000000001080 T helper",
		"0000000000002000 B xp",
		"0000000000003000 T stripped_fn",
	}
}

func testQueryDump() []string {
	return []string{
		".debug_info contents:",
		"",
		"0x0000002a:   DW_TAG_subprogram",
		entryIndent + "DW_AT_low_pc\t(0x0000000000001040)",
		entryIndent + "DW_AT_name\t(\"main\")",
		entryIndent + "DW_AT_type\t(0x00000023 \"int\")",
		"",
		"0x00000050:   DW_TAG_subprogram",
		entryIndent + "DW_AT_low_pc\t(0x0000000000001060)",
		entryIndent + "DW_AT_name\t(\"just_loop\")",
		entryIndent + "DW_AT_noreturn\t(true)",
		"",
		"0x00000070:   DW_TAG_subprogram",
		entryIndent + "DW_AT_low_pc\t(0x0000000000001080)",
		entryIndent + "DW_AT_name\t(\"helper\")",
		"",
		"0x00000090:   DW_TAG_variable",
		entryIndent + "DW_AT_name\t(\"xp\")",
		entryIndent + "DW_AT_type\t(0x000000a0 \"int32_t *\")",
		entryIndent + "DW_AT_location\t(DW_OP_addr 0x2000)",
	}
}

func testQuery() *Query {
	return &Query{Dump: testQueryDump(), Symtab: testSymtab()}
}

func TestQueryHasAttr(t *testing.T) {
	q := testQuery()

	ok, err := q.HasAttr(KindFunction, "main", "name")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = q.HasAttr(KindFunction, "just_loop", "noreturn")
	require.NoError(t, err)
	require.True(t, ok)

	// helper has no noreturn marking, an ordinary false
	ok, err = q.HasAttr(KindFunction, "helper", "noreturn")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestQueryHasAttrExactName(t *testing.T) {
	q := testQuery()

	// "low" must not match DW_AT_low_pc by prefix
	ok, err := q.HasAttr(KindFunction, "main", "low")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestQueryAttrValue(t *testing.T) {
	q := testQuery()

	val, ok, err := q.AttrValue(KindFunction, "main", "type")
	require.NoError(t, err)
	require.True(t, ok)
	require.Contains(t, val, "int")
}

func TestQueryAttrValueAbsent(t *testing.T) {
	q := testQuery()

	// present entry, missing attribute: explicit absence, not an error
	val, ok, err := q.AttrValue(KindFunction, "helper", "noreturn")
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, val)
}

func TestQuerySymbolNotFound(t *testing.T) {
	q := testQuery()

	_, err := q.Attrs(KindFunction, "missing_fn")
	require.Error(t, err)

	var notFound *symtab.ErrSymbolNotFound
	require.True(t, errors.As(err, &notFound))

	// value queries report the same failure, never a silent absence
	_, _, err = q.AttrValue(KindFunction, "missing_fn", "name")
	require.True(t, errors.As(err, &notFound))
}

func TestQueryEntryNotFound(t *testing.T) {
	q := testQuery()

	// stripped_fn is in the symbol table but its entry is gone from the dump
	_, err := q.Attrs(KindFunction, "stripped_fn")
	require.Error(t, err)

	var notFound *ErrEntryNotFound
	require.True(t, errors.As(err, &notFound))
	require.Equal(t, "stripped_fn", notFound.Symbol)
}

func TestQueryVariable(t *testing.T) {
	q := testQuery()

	// nm lists 0000000000002000 while the dump renders DW_OP_addr 0x2000
	val, ok, err := q.AttrValue(KindVariable, "xp", "type")
	require.NoError(t, err)
	require.True(t, ok)
	require.Contains(t, val, "int32_t *")

	ok, err = q.HasAttr(KindVariable, "xp", "name")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestQueryAttrsOrder(t *testing.T) {
	q := testQuery()

	attrs, err := q.Attrs(KindFunction, "main")
	require.NoError(t, err)

	names := make([]string, 0, len(attrs))
	for _, a := range attrs {
		names = append(names, a.Name)
	}
	require.Equal(t, []string{"DW_AT_low_pc", "DW_AT_name", "DW_AT_type"}, names)
}

func TestQueryIdempotent(t *testing.T) {
	q := testQuery()

	first, err := q.Attrs(KindFunction, "main")
	require.NoError(t, err)
	second, err := q.Attrs(KindFunction, "main")
	require.NoError(t, err)
	require.Equal(t, first, second)
}
