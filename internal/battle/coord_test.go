package battle

import "testing"

func TestParseCoord(t *testing.T) {
	tests := []struct {
		in      string
		want    Coord
		wantErr bool
	}{
		{in: "A1", want: Coord{Row: 0, Col: 0}},
		{in: "J10", want: Coord{Row: 9, Col: 9}},
		{in: "E7", want: Coord{Row: 6, Col: 4}},
		{in: "e7", want: Coord{Row: 6, Col: 4}},  // lowercase accepted
		{in: " b2 ", want: Coord{Row: 1, Col: 1}}, // whitespace trimmed
		{in: "K1", wantErr: true},                 // column past J
		{in: "A0", wantErr: true},                 // row below 1
		{in: "A11", wantErr: true},                // row past 10
		{in: "A", wantErr: true},
		{in: "", wantErr: true},
		{in: "5A", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseCoord(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseCoord(%q) = %v, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCoord(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCoord(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatCoord(t *testing.T) {
	tests := []struct {
		in   Coord
		want string
	}{
		{Coord{Row: 0, Col: 0}, "A1"},
		{Coord{Row: 9, Col: 9}, "J10"},
		{Coord{Row: 6, Col: 4}, "E7"},
		{Coord{Row: -1, Col: 0}, "??"},
		{Coord{Row: 0, Col: 10}, "??"},
	}

	for _, tt := range tests {
		if got := FormatCoord(tt.in); got != tt.want {
			t.Errorf("FormatCoord(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			orig := Coord{Row: r, Col: c}
			got, err := ParseCoord(FormatCoord(orig))
			if err != nil {
				t.Fatalf("ParseCoord(FormatCoord(%v)) failed: %v", orig, err)
			}
			if got != orig {
				t.Fatalf("round trip %v -> %q -> %v", orig, FormatCoord(orig), got)
			}
		}
	}
}
