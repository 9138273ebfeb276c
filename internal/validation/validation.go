// Package validation checks user-supplied keywords and URLs before they
// reach the analyzer or a provider. The URL checks double as the SSRF
// guard for outbound fetches.
package validation

import (
	"net"
	"net/url"
	"regexp"
	"strings"
)

// KeywordPattern is the accepted keyword-phrase format: letters and digits,
// with spaces, hyphens, and underscores between them.
var KeywordPattern = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} _-]*$`)

const maxKeywordLength = 100

// metadataIPs are cloud metadata endpoints that must never be fetched:
// the link-local address AWS and GCP use, and Azure's wire server.
var metadataIPs = []net.IP{
	net.ParseIP("169.254.169.254"),
	net.ParseIP("168.63.129.16"),
}

// ValidateKeyword checks a target keyword phrase.
func ValidateKeyword(keyword string) bool {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" || len(keyword) > maxKeywordLength {
		return false
	}
	return KeywordPattern.MatchString(keyword)
}

// NormalizeKeyword lowercases and trims a keyword phrase so density
// matching and provider lookups are case-insensitive.
func NormalizeKeyword(keyword string) string {
	return strings.ToLower(strings.TrimSpace(keyword))
}

// ValidateURL checks shape and scheme. Only http and https pass; this is
// what keeps javascript:, data:, and file: URLs out of stored projects.
func ValidateURL(rawURL string) (bool, string) {
	if rawURL == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return false, "Invalid URL format"
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return false, "URL must use http:// or https:// scheme"
	}
	if u.Host == "" {
		return false, "URL must have a valid host"
	}
	return true, ""
}

// IsPrivateIP reports whether an IP belongs to a range the analyzer must
// not reach: loopback, link-local, RFC 1918, unspecified, or a cloud
// metadata endpoint.
func IsPrivateIP(ip net.IP) bool {
	if ip == nil {
		return false
	}
	if ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified() {
		return true
	}
	if ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() {
		return true
	}
	for _, blocked := range metadataIPs {
		if ip.Equal(blocked) {
			return true
		}
	}
	return false
}

// IsPrivateHost resolves a hostname and reports whether any of its
// addresses is private. Resolution failures count as private: a host we
// cannot resolve is a host we will not fetch.
func IsPrivateHost(host string) (bool, error) {
	hostname := host
	if h, _, err := net.SplitHostPort(host); err == nil {
		hostname = h
	}

	ips, err := net.LookupIP(hostname)
	if err != nil {
		return true, err
	}
	for _, ip := range ips {
		if IsPrivateIP(ip) {
			return true, nil
		}
	}
	return false, nil
}

// ValidateURLForFetch is the full outbound-fetch guard: shape and scheme
// first, then the resolved addresses of the host.
func ValidateURLForFetch(rawURL string) (bool, string) {
	if ok, msg := ValidateURL(rawURL); !ok {
		return false, msg
	}

	u, _ := url.Parse(rawURL)
	private, err := IsPrivateHost(u.Host)
	if err != nil {
		return false, "Cannot resolve hostname"
	}
	if private {
		return false, "URL points to a private or reserved IP address"
	}
	return true, ""
}
