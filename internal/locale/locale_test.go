package locale

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		override string
		accept   string
		want     string
	}{
		{"query override wins", "sl", "hr,en;q=0.8", "sl"},
		{"accept header", "", "hr-HR,hr;q=0.9,en;q=0.5", "hr"},
		{"regional variant", "", "sl-SI", "sl"},
		{"unsupported falls back", "", "de-DE,de;q=0.9", "en"},
		{"empty input", "", "", "en"},
		{"garbage override", "not-a-tag", "", "en"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Resolve(tc.override, tc.accept); got != tc.want {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tc.override, tc.accept, got, tc.want)
			}
		})
	}
}
