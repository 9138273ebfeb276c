package validation

import (
	"net"
	"strings"
	"testing"
)

func TestValidateKeyword(t *testing.T) {
	tests := []struct {
		name     string
		keyword  string
		expected bool
	}{
		{"simple word", "hosting", true},
		{"phrase with spaces", "go web framework", true},
		{"hyphenated", "e-commerce seo", true},
		{"digits", "top 10 tools", true},
		{"unicode letters", "suchmaschinenoptimierung für anfänger", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"leading space trimmed", " seo audit ", true},
		{"too long", strings.Repeat("k", 101), false},
		{"script injection", "<script>alert(1)</script>", false},
		{"punctuation", "seo?!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateKeyword(tt.keyword); got != tt.expected {
				t.Errorf("ValidateKeyword(%q) = %v, want %v", tt.keyword, got, tt.expected)
			}
		})
	}
}

func TestNormalizeKeyword(t *testing.T) {
	if got := NormalizeKeyword("  SEO Audit "); got != "seo audit" {
		t.Errorf("NormalizeKeyword = %q, want %q", got, "seo audit")
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected bool
	}{
		{"https", "https://example.com/page", true},
		{"http", "http://example.com", true},
		{"empty", "", false},
		{"javascript scheme", "javascript:alert(1)", false},
		{"data scheme", "data:text/html,hi", false},
		{"ftp scheme", "ftp://example.com", false},
		{"no host", "https://", false},
		{"relative", "/just/a/path", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := ValidateURL(tt.url)
			if got != tt.expected {
				t.Errorf("ValidateURL(%q) = %v, want %v", tt.url, got, tt.expected)
			}
		})
	}
}

func TestIsPrivateIP(t *testing.T) {
	tests := []struct {
		name     string
		ip       string
		expected bool
	}{
		{"loopback", "127.0.0.1", true},
		{"ipv6 loopback", "::1", true},
		{"rfc1918 10", "10.1.2.3", true},
		{"rfc1918 172", "172.16.0.1", true},
		{"rfc1918 192", "192.168.1.1", true},
		{"link local", "169.254.1.1", true},
		{"aws metadata", "169.254.169.254", true},
		{"azure metadata", "168.63.129.16", true},
		{"unspecified", "0.0.0.0", true},
		{"public", "93.184.216.34", false},
		{"public dns", "8.8.8.8", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ip := net.ParseIP(tt.ip)
			if got := IsPrivateIP(ip); got != tt.expected {
				t.Errorf("IsPrivateIP(%s) = %v, want %v", tt.ip, got, tt.expected)
			}
		})
	}

	if IsPrivateIP(nil) {
		t.Error("IsPrivateIP(nil) should be false")
	}
}

func TestValidateURLForFetch_BadScheme(t *testing.T) {
	// Scheme failures short-circuit before any DNS lookup.
	if ok, _ := ValidateURLForFetch("javascript:alert(1)"); ok {
		t.Error("expected javascript: URL to be rejected")
	}
}
