package locales

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"already canonical", "en", "en"},
		{"region uppercased", "en-us", "en-US"},
		{"underscore separator", "pt_br", "pt-BR"},
		{"mixed case", "EN_us", "en-US"},
		{"whitespace trimmed", "  sv ", "sv"},
		{"empty", "", ""},
		{"unparseable lowercased", "not a locale", "not a locale"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.code); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	known := []string{"en", "pt_br", "sv"}

	tests := []struct {
		name string
		code string
		want bool
	}{
		{"exact match", "en", true},
		{"canonical vs underscore", "pt-BR", true},
		{"case insensitive", "SV", true},
		{"absent", "de", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(known, tt.code); got != tt.want {
				t.Errorf("Contains(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"language", "en", "English"},
		{"language and region", "pt-BR", "Brazilian Portuguese"},
		{"empty", "", "Unknown"},
		{"unrecognized", "??", "??"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayName(tt.code); got != tt.want {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}
