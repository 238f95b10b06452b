package dwarfdump

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// testDump mimics llvm-dwarfdump output: a header, a compile-unit entry,
// one function entry and one variable entry, blank-line separated.
func testDump() []string {
	return []string{
		"bin/a.out:\tfile format elf64-x86-64",
		"",
		".debug_info contents:",
		"0x00000000: Compile Unit: length = 0x0000004e, format = DWARF32, version = 0x0004",
		"",
		"0x0000000b: DW_TAG_compile_unit",
		entryIndent + "DW_AT_producer\t(\"clang version 12.0.0\")",
		entryIndent + "DW_AT_language\t(DW_LANG_C99)",
		"",
		"0x0000002a:   DW_TAG_subprogram",
		entryIndent + "DW_AT_low_pc\t(0x0000000000001040)",
		entryIndent + "DW_AT_high_pc\t(0x0000000000001050)",
		entryIndent + "DW_AT_name\t(\"main\")",
		entryIndent + "DW_AT_type\t(0x00000023 \"int\")",
		entryIndent + "DW_AT_external\t(true)",
		"",
		"0x00000040:   DW_TAG_variable",
		entryIndent + "DW_AT_name\t(\"xp\")",
		entryIndent + "DW_AT_type\t(0x00000050 \"int32_t *\")",
		entryIndent + "DW_AT_location\t(DW_OP_addr 0x4010)",
		"",
		"0x0000004e:   NULL",
	}
}

func TestResolveEntryFunction(t *testing.T) {
	block, err := ResolveEntry(testDump(), KindFunction, "0000000000001040")
	require.NoError(t, err)

	require.Equal(t, "0x0000002a:   DW_TAG_subprogram", block[0])
	require.Equal(t, entryIndent+"DW_AT_external\t(true)", block[len(block)-1])

	// blank lines bound the block, they never appear inside it
	for _, line := range block {
		require.NotEmpty(t, strings.TrimSpace(line))
	}
}

func TestResolveEntryVariableStripsLeadingZeros(t *testing.T) {
	// nm prints 0000000000004010 but the dumper renders DW_OP_addr 0x4010
	block, err := ResolveEntry(testDump(), KindVariable, "0000000000004010")
	require.NoError(t, err)
	require.Equal(t, "0x00000040:   DW_TAG_variable", block[0])
}

func TestResolveEntryNotFound(t *testing.T) {
	_, err := ResolveEntry(testDump(), KindFunction, "00000000deadbeef")
	require.Error(t, err)

	var notFound *ErrEntryNotFound
	require.True(t, errors.As(err, &notFound))
	require.Contains(t, notFound.Pattern, "DW_AT_low_pc")
}

func TestResolveEntryExactMatchOnly(t *testing.T) {
	// the address is embedded in a wrapper, a prefix of it must not match
	_, err := ResolveEntry(testDump(), KindFunction, "0000000000001")
	require.Error(t, err)
}

func TestResolveEntryFirstBlock(t *testing.T) {
	dump := []string{
		entryIndent + "DW_AT_low_pc\t(0x0000000000001040)",
		entryIndent + "DW_AT_name\t(\"main\")",
		"",
		"trailer",
	}

	block, err := ResolveEntry(dump, KindFunction, "0000000000001040")
	require.NoError(t, err)
	require.Len(t, block, 2)
}

func TestResolveEntryLastBlock(t *testing.T) {
	dump := []string{
		"header",
		"",
		entryIndent + "DW_AT_low_pc\t(0x0000000000001040)",
		entryIndent + "DW_AT_name\t(\"main\")",
	}

	block, err := ResolveEntry(dump, KindFunction, "0000000000001040")
	require.NoError(t, err)
	require.Len(t, block, 2)
	require.Equal(t, entryIndent+"DW_AT_name\t(\"main\")", block[1])
}

func TestResolveEntryNoBlankLinesAtAll(t *testing.T) {
	dump := []string{
		entryIndent + "DW_AT_low_pc\t(0x0000000000001040)",
		entryIndent + "DW_AT_name\t(\"main\")",
	}

	block, err := ResolveEntry(dump, KindFunction, "0000000000001040")
	require.NoError(t, err)
	require.Equal(t, dump, block)
}
