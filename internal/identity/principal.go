// Package identity decodes the caller identity asserted by the fronting
// gateway in a forwarded request header.
package identity

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
)

// DefaultHeader is the header the gateway uses for the client principal.
const DefaultHeader = "X-MS-CLIENT-PRINCIPAL"

const (
	emailsClaim      = "emails"
	emailAddressType = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/emailaddress"
)

var (
	ErrMissingHeader = errors.New("identity header is missing")
	ErrNoEmail       = errors.New("identity carries no email")
)

// Principal is the decoded caller identity. It is either a
// StructuredPrincipal or a RawEmailFallback.
type Principal interface {
	EmailAddress() string
	principal()
}

// StructuredPrincipal was decoded from the gateway's base64 JSON payload.
type StructuredPrincipal struct {
	Email            string
	IdentityProvider string
	UserID           string
	Roles            []string
}

func (p StructuredPrincipal) EmailAddress() string { return p.Email }
func (StructuredPrincipal) principal() {}

// RawEmailFallback holds a header that was not a structured payload and is
// taken verbatim as the caller's email. Anything that can set the header can
// claim any identity this way, so callers decide whether to accept it.
type RawEmailFallback struct {
	Email string
}

func (p RawEmailFallback) EmailAddress() string { return p.Email }
func (RawEmailFallback) principal() {}

type claim struct {
	Type  string `json:"typ"`
	Value string `json:"val"`
}

type payload struct {
	IdentityProvider string   `json:"identityProvider"`
	UserID           string   `json:"userId"`
	UserDetails      string   `json:"userDetails"`
	UserRoles        []string `json:"userRoles"`
	Claims           []claim  `json:"claims"`
}

var encodings = []*base64.Encoding{
	base64.StdEncoding,
	base64.RawStdEncoding,
	base64.URLEncoding,
	base64.RawURLEncoding,
}

// Decode turns a forwarded identity header into a Principal.
//
// The header is expected to be base64-encoded JSON. The email comes from
// userDetails, else from the first email claim. A payload that decodes but
// names no email yields ErrNoEmail. A header that is not base64 JSON at all
// yields a RawEmailFallback carrying the header text.
func Decode(header string) (Principal, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return nil, ErrMissingHeader
	}

	p, ok := parse(header)
	if !ok {
		return RawEmailFallback{Email: header}, nil
	}

	email := strings.TrimSpace(p.UserDetails)
	if email == "" {
		for _, c := range p.Claims {
			if (c.Type == emailsClaim || c.Type == emailAddressType) && strings.TrimSpace(c.Value) != "" {
				email = strings.TrimSpace(c.Value)
				break
			}
		}
	}
	if email == "" {
		return nil, ErrNoEmail
	}

	return StructuredPrincipal{
		Email:            email,
		IdentityProvider: p.IdentityProvider,
		UserID:           p.UserID,
		Roles:            p.UserRoles,
	}, nil
}

func parse(header string) (payload, bool) {
	for _, enc := range encodings {
		raw, err := enc.DecodeString(header)
		if err != nil {
			continue
		}
		var p payload
		if err := json.Unmarshal(raw, &p); err != nil {
			return payload{}, false
		}
		return p, true
	}
	return payload{}, false
}

// Encode builds a structured header value. Used by tests and local tooling
// to impersonate the gateway.
func Encode(p StructuredPrincipal) string {
	raw, _ := json.Marshal(payload{
		IdentityProvider: p.IdentityProvider,
		UserID:           p.UserID,
		UserDetails:      p.Email,
		UserRoles:        p.Roles,
	})
	return base64.StdEncoding.EncodeToString(raw)
}
