package avatar

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func b64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func TestIsMailHost(t *testing.T) {
	tests := []struct {
		domain string
		want   bool
	}{
		{"gmail.com", true},
		{"GMAIL.COM", true},
		{"yahoo.co.uk", true},
		{"hotmail.fr", true},
		{"outlook.com", true},
		{"live.com", true},
		{"aol.com", true},
		{"office365.com", true},
		{"me.com", true},
		{"icloud.com", true},
		{"mac.icloud.com", true},
		{"acme.io", false},
		{"gmail", false},
		{"mygmail.com", false},
		{"someme.com", false},
		{"mail.google.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMailHost(tt.domain))
		})
	}
}

func TestMailDomain(t *testing.T) {
	d, ok := MailDomain("Jane.Doe@Acme.IO")
	assert.True(t, ok)
	assert.Equal(t, "acme.io", d)

	_, ok = MailDomain("no-at-sign")
	assert.False(t, ok)

	_, ok = MailDomain("trailing@")
	assert.False(t, ok)
}

func TestGravatarHash(t *testing.T) {
	assert.Equal(t, "55502f40dc8b7c769880b10874abc9d0", GravatarHash("test@example.com"))
	assert.Equal(t, "55502f40dc8b7c769880b10874abc9d0", GravatarHash("  Test@Example.com "))
}
