package content

import "testing"

func TestCamelKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"title", "title"},
		{"seo_settings", "seoSettings"},
		{"main_image", "mainImage"},
		{"related_blog_posts", "relatedBlogPosts"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := CamelKey(tt.input); got != tt.expected {
				t.Errorf("CamelKey(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSnakeKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"title", "title"},
		{"seoSettings", "seo_settings"},
		{"relatedBlogPosts", "related_blog_posts"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SnakeKey(tt.input); got != tt.expected {
				t.Errorf("SnakeKey(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestKeyRoundTrip(t *testing.T) {
	for _, apiKey := range []string{"title", "seo_settings", "main_image"} {
		if got := SnakeKey(CamelKey(apiKey)); got != apiKey {
			t.Errorf("SnakeKey(CamelKey(%q)) = %q", apiKey, got)
		}
	}
}
