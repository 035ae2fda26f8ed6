package theme

import "testing"

func TestByName(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"garden", "garden"},
		{"flexoki-dark", "flexoki-dark"},
		{"terminal", "terminal"},
		{"no-such-theme", "flexoki-dark"},
		{"", "flexoki-dark"},
	}
	for _, tc := range cases {
		if got := ByName(tc.name).Name; got != tc.want {
			t.Errorf("ByName(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestAllThemesFillEveryRole(t *testing.T) {
	for _, th := range All {
		if th.Name == "" {
			t.Fatal("theme with empty name")
		}
		for _, c := range []string{
			string(th.Background), string(th.Surface), string(th.Border),
			string(th.TextPrimary), string(th.Accent), string(th.Green),
			string(th.Orange), string(th.Red),
		} {
			if c == "" {
				t.Errorf("theme %s leaves a color role empty", th.Name)
			}
		}
	}
}
