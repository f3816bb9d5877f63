package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if n := FirstNonZero(0, 0, 21, 42); n != 21 {
		t.Fatalf("got %v", n)
	}
	if s := FirstNonZero("", ""); s != "" {
		t.Fatalf("got %q", s)
	}
}

func TestStrToBool(t *testing.T) {
	for _, c := range []struct {
		str      string
		expected bool
	}{
		{"true", true},
		{"Y", true},
		{" on ", true},
		{"1", true},
		{"no", false},
		{"", false},
		{"foo", false},
	} {
		if b := StrToBool(c.str); b != c.expected {
			t.Fatalf("%q: got %v", c.str, b)
		}
	}
}
