package cheat

import "testing"

func TestParseGameShark(t *testing.T) {
	tests := []struct {
		code    string
		want    Patch
		wantErr bool
	}{
		{code: "01FF56D3", want: Patch{Kind: PatchRAM, Addr: 0xD356, Value: 0xFF}},
		{code: "010A00C0", want: Patch{Kind: PatchRAM, Addr: 0xC000, Value: 0x0A}},
		{code: "0099ffa0", want: Patch{Kind: PatchRAM, Addr: 0xA0FF, Value: 0x99}}, // lowercase accepted
		{code: "01FF5612", wantErr: true},                                         // address below RAM
		{code: "01FF56F3", wantErr: true},                                         // address above RAM
		{code: "91FF56D3", wantErr: true},                                         // unsupported type
		{code: "01FF56D", wantErr: true},                                          // short
		{code: "01FG56D3", wantErr: true},                                         // bad digit
		{code: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := Parse(tt.code)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) succeeded, want error", tt.code)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.code, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.code, got, tt.want)
			}
		})
	}
}

func TestParseGameGenie(t *testing.T) {
	// 6-digit form: value AB, address from CDEF xor F000.
	got, err := Parse("00A-17B")
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind != PatchROM {
		t.Error("want ROM patch")
	}
	if got.Value != 0x00 {
		t.Errorf("value = %02X, want 00", got.Value)
	}
	// digits: A=0 B=0 C=A D=1 E=7 F=B -> addr BA17 ^ F000 = 4A17
	if got.Addr != 0x4A17 {
		t.Errorf("addr = %04X, want 4A17", got.Addr)
	}
	if got.HasCompare {
		t.Error("6-digit code should have no compare byte")
	}
}

func TestParseGameGenieCompare(t *testing.T) {
	got, err := Parse("00A-17B-C49")
	if err != nil {
		t.Fatal(err)
	}
	if !got.HasCompare {
		t.Fatal("9-digit code should carry a compare byte")
	}
	// G=C I=9: C9 ^ BA = 73, rotated right two = DC
	if got.Compare != 0xDC {
		t.Errorf("compare = %02X, want DC", got.Compare)
	}
}

func TestParseGameGenieRejects(t *testing.T) {
	for _, code := range []string{
		"00A-17",     // 5 digits
		"00A-17B-C4", // 8 digits
		"00G-17B",    // bad digit
	} {
		if _, err := Parse(code); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", code)
		}
	}

	// Address decoding that lands outside ROM must be rejected: digit F=7
	// keeps the xor inside ROM, F=0 flips it out.
	if _, err := Parse("00A-170"); err == nil {
		t.Error("address outside ROM accepted")
	}
}
