package tenant

// Package tenant contains domain types and pure logic for multi-tenant
// resolution and public organization content.

import (
	"net"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// DefaultSubdomain is the tenant selected when the request host carries no
// usable subdomain (localhost, bare IPs, apex domains).
const DefaultSubdomain = "auth"

// Subdomain extracts the tenant label from a request host. It returns the
// leftmost DNS label to the left of the registrable domain, so
// "acme.campushq.io" and "acme.campushq.co.uk" both resolve to "acme".
// fallback is returned for localhost, IP literals, apex hosts, and anything
// the public suffix list cannot place; callers pass their configured
// default (typically DefaultSubdomain).
func Subdomain(host, fallback string) string {
	if fallback == "" {
		fallback = DefaultSubdomain
	}

	// Strip a port if present; SplitHostPort fails on bare hosts.
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.TrimSuffix(strings.ToLower(host), ".")

	if host == "" || host == "localhost" || strings.HasSuffix(host, ".localhost") || net.ParseIP(host) != nil {
		return fallback
	}

	etld1, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil || host == etld1 {
		// Unrecognized host shape or apex domain: no tenant label.
		return fallback
	}

	prefix := strings.TrimSuffix(host, "."+etld1)
	labels := strings.Split(prefix, ".")
	return labels[0]
}
