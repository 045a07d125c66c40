package love

import (
	"strings"
	"testing"
)

func TestComputeScoreKnownVectors(t *testing.T) {
	// These values have been shown to users; they must never change.
	tests := []struct {
		subject, target string
		want            int
	}{
		{"alice", "bob", 81},
		{"bob", "alice", 66},
		{"john", "mary", 84},
		{"mary", "john", 62},
		{"", "", 29},
		{"romeo", "juliet", 52},
		{"José", "Zoë", 34},
	}

	for _, tt := range tests {
		got := ComputeScore(tt.subject, tt.target)
		if got != tt.want {
			t.Errorf("ComputeScore(%q, %q) = %d, want %d", tt.subject, tt.target, got, tt.want)
		}
	}
}

func TestComputeScoreDeterministic(t *testing.T) {
	first := ComputeScore("Ada", "Grace")
	for i := 0; i < 100; i++ {
		if got := ComputeScore("Ada", "Grace"); got != first {
			t.Fatalf("call %d returned %d, first call returned %d", i, got, first)
		}
	}
}

func TestComputeScoreRange(t *testing.T) {
	names := []string{
		"", " ", "a", "Ada", "Grace Hopper", "日本語", "🔥💘", "\t\n",
		strings.Repeat("x", 4096), "o'neil", "jo hn", "JOHN",
	}
	for _, a := range names {
		for _, b := range names {
			got := ComputeScore(a, b)
			if got < 0 || got > MaxScore {
				t.Errorf("ComputeScore(%q, %q) = %d, outside [0, %d]", a, b, got, MaxScore)
			}
		}
	}
}

func TestComputeScoreNormalization(t *testing.T) {
	want := ComputeScore("john", "mary")
	for _, pair := range [][2]string{
		{"  John ", "Mary"},
		{"JOHN", "MARY"},
		{"\tjohn\n", "  mArY  "},
	} {
		if got := ComputeScore(pair[0], pair[1]); got != want {
			t.Errorf("ComputeScore(%q, %q) = %d, want %d", pair[0], pair[1], got, want)
		}
	}
}

func TestComputeScoreOrderSensitive(t *testing.T) {
	ab := ComputeScore("alice", "bob")
	ba := ComputeScore("bob", "alice")
	if ab == ba {
		t.Fatalf("ComputeScore is symmetric for alice/bob (%d); the pair must not be sorted", ab)
	}
}

func TestNormalizeSpecialCasing(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  John ", "john"},
		{"İlker", "i\u0307lker"},
		{"ΟΔΥΣΣΕΥΣ", "οδυσσευς"},
		{"Pınar", "pınar"},
		{"Zoë", "zoë"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestComputeScoreSpecialCasingVectors(t *testing.T) {
	// strings.ToLower would give 3 and 70 here.
	tests := []struct {
		subject, target string
		want            int
	}{
		{"İlker", "Pınar", 6},
		{"ΟΔΥΣΣΕΥΣ", "ΠΗΝΕΛΟΠΗ", 58},
	}
	for _, tt := range tests {
		if got := ComputeScore(tt.subject, tt.target); got != tt.want {
			t.Errorf("ComputeScore(%q, %q) = %d, want %d", tt.subject, tt.target, got, tt.want)
		}
	}
}

func TestComputeScoreInnerWhitespaceKept(t *testing.T) {
	if CompositeKey("Jo hn", "x") == CompositeKey("John", "x") {
		t.Fatal("inner whitespace should survive normalization")
	}
}

func TestCompositeKey(t *testing.T) {
	tests := []struct {
		subject, target, want string
	}{
		{"Alice", "Bob", "love_test_v1|alice|bob"},
		{"  Alice  ", " BOB ", "love_test_v1|alice|bob"},
		{"", "", "love_test_v1||"},
		{"Mary-Jane", "O'Neil", "love_test_v1|mary-jane|o'neil"},
	}
	for _, tt := range tests {
		if got := CompositeKey(tt.subject, tt.target); got != tt.want {
			t.Errorf("CompositeKey(%q, %q) = %q, want %q", tt.subject, tt.target, got, tt.want)
		}
	}
}

func TestReduce(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
		want  int
	}{
		{"zero", []byte{0x00, 0x00, 0x00, 0x00}, 0},
		{"max positive", []byte{0x7f, 0xff, 0xff, 0xff}, 33},
		{"min int32", []byte{0x80, 0x00, 0x00, 0x00}, 34},
		{"minus one", []byte{0xff, 0xff, 0xff, 0xff}, 1},
		{"alice bob digest prefix", []byte{0xfa, 0x94, 0x50, 0xb3}, 81},
		{"exactly 101", []byte{0x00, 0x00, 0x00, 0x65}, 0},
		{"100", []byte{0x00, 0x00, 0x00, 0x64}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reduce(tt.bytes); got != tt.want {
				t.Errorf("reduce(% x) = %d, want %d", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"   ", ""},
		{" Ada ", "ada"},
		{"GRACE HOPPER", "grace hopper"},
		{"Zoë", "zoë"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCanTest(t *testing.T) {
	tests := []struct {
		subject, target string
		want            bool
	}{
		{"ada", "grace", true},
		{"", "grace", false},
		{"ada", "   ", false},
		{" \t", "\n", false},
	}
	for _, tt := range tests {
		if got := CanTest(tt.subject, tt.target); got != tt.want {
			t.Errorf("CanTest(%q, %q) = %v, want %v", tt.subject, tt.target, got, tt.want)
		}
	}
}
