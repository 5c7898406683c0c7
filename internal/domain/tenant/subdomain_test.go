package tenant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubdomain(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{name: "simple tenant host", host: "acme.campushq.io", want: "acme"},
		{name: "host with port", host: "acme.campushq.io:8080", want: "acme"},
		{name: "multi-label public suffix", host: "acme.campushq.co.uk", want: "acme"},
		{name: "nested label keeps leftmost", host: "www.acme.campushq.io", want: "www"},
		{name: "mixed case host", host: "Acme.CampusHQ.io", want: "acme"},
		{name: "trailing dot", host: "acme.campushq.io.", want: "acme"},
		{name: "apex domain falls back", host: "campushq.io", want: "auth"},
		{name: "localhost falls back", host: "localhost", want: "auth"},
		{name: "localhost with port falls back", host: "localhost:3000", want: "auth"},
		{name: "dotted localhost falls back", host: "app.localhost", want: "auth"},
		{name: "ip literal falls back", host: "127.0.0.1:8080", want: "auth"},
		{name: "empty host falls back", host: "", want: "auth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Subdomain(tt.host, "auth"))
		})
	}
}

func TestSubdomain_EmptyFallbackUsesDefault(t *testing.T) {
	assert.Equal(t, DefaultSubdomain, Subdomain("localhost", ""))
}
