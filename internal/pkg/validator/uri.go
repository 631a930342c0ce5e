package validator

import (
	"errors"
	"net/url"
	"strings"
)

// ValidateRedirectURI checks a redirect or logout URI before it is accepted
// into a login app: absolute http(s) URL, no fragment, no wildcard host.
func ValidateRedirectURI(raw string) error {
	if raw == "" {
		return errors.New("uri is empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return errors.New("invalid uri")
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("uri must use http or https")
	}
	if u.Host == "" {
		return errors.New("uri must be absolute")
	}
	if strings.Contains(u.Host, "*") {
		return errors.New("wildcard hosts not allowed")
	}
	if u.Fragment != "" {
		return errors.New("uri must not contain a fragment")
	}

	// http is only allowed for loopback development redirects
	if u.Scheme == "http" {
		host := u.Hostname()
		if host != "localhost" && host != "127.0.0.1" && host != "::1" {
			return errors.New("http uris are only allowed for localhost")
		}
	}

	return nil
}

// ValidateRedirectURIs validates a full list, reporting the first bad entry.
func ValidateRedirectURIs(uris []string) error {
	for _, raw := range uris {
		if err := ValidateRedirectURI(raw); err != nil {
			return errors.New(raw + ": " + err.Error())
		}
	}
	return nil
}
