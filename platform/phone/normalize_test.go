package phone

import "testing"

func TestNormalizeE164(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "domestic number", input: "(415) 555-2671", want: "+14155552671"},
		{name: "already e164", input: "+14155552671", want: "+14155552671"},
		{name: "international", input: "+31 20 794 0000", want: "+31207940000"},
		{name: "garbage passes through", input: "not-a-number", want: "not-a-number"},
		{name: "whitespace only", input: "   ", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeE164(tc.input); got != tc.want {
				t.Fatalf("NormalizeE164(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
