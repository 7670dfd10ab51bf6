package abi

import "testing"

func TestEnumCodeKnownSymbols(t *testing.T) {
	tests := []struct {
		table  string
		symbol string
		code   uint32
	}{
		{"texture-format", "rgba8unorm", 0x16},
		{"texture-format", "depth24plus-stencil8", 0x2F},
		{"vertex-format", "uint32x4", 0x23},
		{"present-mode", "mailbox", 4},
		{"alpha-mode", "opaque", 1},
		{"load-op", "load", 1},
		{"store-op", "discard", 2},
		{"compare-function", "less-equal", 4},
		{"blend-factor", "one-minus-src-alpha", 6},
		{"buffer-binding-type", "read-only-storage", 3},
	}
	for _, tt := range tests {
		t.Run(tt.table+"/"+tt.symbol, func(t *testing.T) {
			if got := EnumCode(tt.table, tt.symbol); got != tt.code {
				t.Errorf("EnumCode = %#x, want %#x", got, tt.code)
			}
		})
	}
}

func TestEnumFallbackReported(t *testing.T) {
	var gotTable, gotValue string
	ReportFallback = func(table, value string) {
		gotTable, gotValue = table, value
	}
	defer func() { ReportFallback = nil }()

	code := EnumCode("texture-format", "bgra8unorm-typo")
	if code != 0x1B {
		t.Errorf("fallback code = %#x, want table default %#x", code, 0x1B)
	}
	if gotTable != "texture-format" || gotValue != "bgra8unorm-typo" {
		t.Errorf("fallback reported (%q, %q), want (%q, %q)",
			gotTable, gotValue, "texture-format", "bgra8unorm-typo")
	}

	gotTable, gotValue = "", ""
	if EnumCode("texture-format", "rgba8unorm") != 0x16 {
		t.Error("known symbol mapped through fallback path")
	}
	if gotTable != "" {
		t.Errorf("fallback fired for known symbol: %q/%q", gotTable, gotValue)
	}
}

func TestKnownEnum(t *testing.T) {
	if !KnownEnum("texture-format", "bgra8unorm") {
		t.Error("bgra8unorm not recognized")
	}
	if KnownEnum("texture-format", "bgra8") {
		t.Error("truncated symbol recognized")
	}
	if KnownEnum("no-such-table", "bgra8unorm") {
		t.Error("unknown table recognized")
	}
}

func TestEnumSymbolReverse(t *testing.T) {
	sym, ok := EnumSymbol("texture-format", 0x1B)
	if !ok || sym != "bgra8unorm" {
		t.Errorf("EnumSymbol(0x1B) = %q,%v, want bgra8unorm,true", sym, ok)
	}
	if _, ok := EnumSymbol("texture-format", 0xFFFF); ok {
		t.Error("unknown code resolved to a symbol")
	}
}
