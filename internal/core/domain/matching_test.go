package domain

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0412345678", "+61412345678"},
		{"+61412345678", "+61412345678"}, // no double prefixing
		{"0412 345 678", "+61412345678"},
		{"(04) 1234-5678", "+61412345678"},
		{"61412345678", "61412345678"}, // neither + nor leading 0: untouched
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizePhone(tt.in); got != tt.want {
			t.Fatalf("NormalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Jane.Doe@Example.COM "); got != "jane.doe@example.com" {
		t.Fatalf("unexpected email: %q", got)
	}
}

func TestSplitName(t *testing.T) {
	first, last := SplitName("Jane Van Der Berg")
	if first != "Jane" || last != "Van Der Berg" {
		t.Fatalf("unexpected split: %q %q", first, last)
	}
	first, last = SplitName("Cher")
	if first != "Cher" || last != "" {
		t.Fatalf("unexpected single-token split: %q %q", first, last)
	}
	first, last = SplitName("")
	if first != "" || last != "" {
		t.Fatalf("unexpected empty split: %q %q", first, last)
	}
}

func TestHashMatchValue(t *testing.T) {
	// sha256 of "test@example.com"
	const want = "973dfe463ec85785f5f95af5ba3906eedb2d931c24e69824a89ea65dba4e813b"
	if got := HashMatchValue("  Test@Example.com "); got != want {
		t.Fatalf("unexpected hash: %q", got)
	}
	if got := HashMatchValue("   "); got != "" {
		t.Fatalf("expected empty hash for blank input, got %q", got)
	}
}
