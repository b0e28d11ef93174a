package validation

import (
	"net/url"
	"strings"
)

// ValidateFetchURL checks that a URL is safe to fetch: parseable, http or
// https, and carrying a host. Page and resident URLs arrive from remote
// response bodies, so they are validated before every outbound request.
func ValidateFetchURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}
