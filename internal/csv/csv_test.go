package csv

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][]string
	}{
		{
			name:  "two simple rows",
			input: "a,b\nc,d",
			want:  [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:  "quoted field with comma",
			input: "a,\"b,c\"\n",
			want:  [][]string{{"a", "b,c"}},
		},
		{
			name:  "doubled quote inside quoted field",
			input: `"a""b",x`,
			want:  [][]string{{`a"b`, "x"}},
		},
		{
			name:  "crlf row terminator",
			input: "a,b\r\nc,d\r\n",
			want:  [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:  "bare cr row terminator",
			input: "a,b\rc,d",
			want:  [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:  "newline inside quoted field",
			input: "\"line1\nline2\",x",
			want:  [][]string{{"line1\nline2", "x"}},
		},
		{
			name:  "crlf inside quoted field is data",
			input: "\"line1\r\nline2\",x",
			want:  [][]string{{"line1\r\nline2", "x"}},
		},
		{
			name:  "trailing newline yields no empty row",
			input: "a,b\n",
			want:  [][]string{{"a", "b"}},
		},
		{
			name:  "multiple trailing newlines yield no empty rows",
			input: "a,b\n\n\n",
			want:  [][]string{{"a", "b"}},
		},
		{
			name:  "pending field flushed at end of input",
			input: "a,b\nc",
			want:  [][]string{{"a", "b"}, {"c"}},
		},
		{
			name:  "empty middle and trailing fields",
			input: "a,,c\nd,e,\n",
			want:  [][]string{{"a", "", "c"}, {"d", "e", ""}},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "fully quoted row",
			input: "\"a\",\"b\"\n\"c\",\"d\"",
			want:  [][]string{{"a", "b"}, {"c", "d"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSerialize(t *testing.T) {
	t.Run("no rows emits header only", func(t *testing.T) {
		got := Serialize(nil)
		want := "title,category,mnemonic,lyrics,mediaLink"
		if got != want {
			t.Errorf("Serialize(nil) = %q, want %q", got, want)
		}
	})

	t.Run("empty optional fields serialize as empty quoted strings", func(t *testing.T) {
		got := Serialize([][]string{{"Paranaue", "angola", "", "", ""}})
		want := "title,category,mnemonic,lyrics,mediaLink\n\"Paranaue\",\"angola\",\"\",\"\",\"\""
		if got != want {
			t.Errorf("Serialize = %q, want %q", got, want)
		}
	})

	t.Run("interior quotes are doubled", func(t *testing.T) {
		got := Serialize([][]string{{`o "mestre"`, "angola", "", "", ""}})
		want := "title,category,mnemonic,lyrics,mediaLink\n\"o \"\"mestre\"\"\",\"angola\",\"\",\"\",\"\""
		if got != want {
			t.Errorf("Serialize = %q, want %q", got, want)
		}
	})
}

// TestRoundTrip checks Serialize then Parse reproduces the original fields
// byte-for-byte, including commas, quotes, and embedded newlines.
func TestRoundTrip(t *testing.T) {
	rows := [][]string{
		{"Paranaue", "angola", "", "", ""},
		{"Sim, sim, sim", "saoBentoGrande", "nao, nao, nao", "Sim, sim, sim\nNao, nao, nao", "https://example.com/v?id=1"},
		{`A "volta" do mundo`, "saoBentoPequeno", `quote " inside`, "line1\nline2\nline3", ""},
		{"", "angola", "starts with mnemonic", "\nleading and trailing\n", ""},
	}

	parsed := Parse(Serialize(rows))
	if len(parsed) != len(rows)+1 {
		t.Fatalf("parsed %d rows, want %d (header + data)", len(parsed), len(rows)+1)
	}
	if !reflect.DeepEqual(parsed[0], Columns) {
		t.Errorf("header = %#v, want %#v", parsed[0], Columns)
	}
	if !reflect.DeepEqual(parsed[1:], rows) {
		t.Errorf("round trip mismatch:\ngot  %#v\nwant %#v", parsed[1:], rows)
	}
}

func TestCleanHeader(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Title", "title"},
		{"  CATEGORY  ", "category"},
		{"mediaLink", "medialink"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanHeader(tt.input); got != tt.want {
			t.Errorf("CleanHeader(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCleanCell(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain value untouched", "abc", "abc"},
		{"wrapping quotes stripped", `"abc"`, "abc"},
		{"leading quote only", `"abc`, "abc"},
		{"trailing quote only", `abc"`, "abc"},
		{"doubled quotes undoubled", `a""b`, `a"b`},
		{"wrapped and doubled", `"a""b"`, `a"b`},
		{"empty", "", ""},
		{"single quote char", `"`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanCell(tt.input); got != tt.want {
				t.Errorf("CleanCell(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
