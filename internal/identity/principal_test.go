package identity

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeJSON(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantErr   error
		wantRaw   bool
		wantEmail string
	}{
		{
			name:    "empty header",
			header:  "",
			wantErr: ErrMissingHeader,
		},
		{
			name:    "whitespace header",
			header:  "   ",
			wantErr: ErrMissingHeader,
		},
		{
			name:      "userDetails wins",
			header:    encodeJSON(`{"identityProvider":"aad","userId":"u1","userDetails":"dana@example.com","userRoles":["authenticated"],"claims":[{"typ":"emails","val":"other@example.com"}]}`),
			wantEmail: "dana@example.com",
		},
		{
			name:      "emails claim when userDetails absent",
			header:    encodeJSON(`{"identityProvider":"aadb2c","claims":[{"typ":"name","val":"Dana"},{"typ":"emails","val":"dana@example.com"}]}`),
			wantEmail: "dana@example.com",
		},
		{
			name:      "long form email claim",
			header:    encodeJSON(`{"claims":[{"typ":"http://schemas.xmlsoap.org/ws/2005/05/identity/claims/emailaddress","val":"lee@example.com"}]}`),
			wantEmail: "lee@example.com",
		},
		{
			name:      "unpadded base64",
			header:    base64.RawStdEncoding.EncodeToString([]byte(`{"userDetails":"a@b.co"}`)),
			wantEmail: "a@b.co",
		},
		{
			name:    "structured without email",
			header:  encodeJSON(`{"identityProvider":"aad","userId":"u1","claims":[{"typ":"name","val":"Dana"}]}`),
			wantErr: ErrNoEmail,
		},
		{
			name:      "plain email falls back",
			header:    "dana@example.com",
			wantRaw:   true,
			wantEmail: "dana@example.com",
		},
		{
			name:      "base64 of non json falls back",
			header:    encodeJSON("not json"),
			wantRaw:   true,
			wantEmail: encodeJSON("not json"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantEmail, got.EmailAddress())

			_, isRaw := got.(RawEmailFallback)
			assert.Equal(t, tt.wantRaw, isRaw)
		})
	}
}

func TestDecodeStructuredFields(t *testing.T) {
	header := encodeJSON(`{"identityProvider":"aad","userId":"abc","userDetails":"dana@example.com","userRoles":["anonymous","authenticated"]}`)

	got, err := Decode(header)
	require.NoError(t, err)

	p, ok := got.(StructuredPrincipal)
	require.True(t, ok)
	assert.Equal(t, "aad", p.IdentityProvider)
	assert.Equal(t, "abc", p.UserID)
	assert.Equal(t, []string{"anonymous", "authenticated"}, p.Roles)
}

func TestDecodeProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	emails := gen.Identifier().Map(func(s string) string { return s + "@example.com" })

	properties.Property("encoded principals decode to the same email", prop.ForAll(
		func(email, provider string) bool {
			got, err := Decode(Encode(StructuredPrincipal{Email: email, IdentityProvider: provider}))
			if err != nil {
				return false
			}
			p, ok := got.(StructuredPrincipal)
			return ok && p.Email == email && p.IdentityProvider == provider
		},
		emails,
		gen.AlphaString(),
	))

	properties.Property("plain emails only ever use the raw fallback", prop.ForAll(
		func(email string) bool {
			got, err := Decode(email)
			if err != nil {
				return false
			}
			raw, ok := got.(RawEmailFallback)
			return ok && raw.Email == strings.TrimSpace(email)
		},
		emails,
	))

	properties.TestingRun(t)
}
