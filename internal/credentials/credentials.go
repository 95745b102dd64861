// Package credentials models Unity account credentials and parses the bulk
// credential block passed to the activator through UNITY_CREDENTIALS.
//
// # Block Format
//
// Records are separated by a blank line. Each record holds KEY: value lines:
//
//	EMAIL: first@example.com
//	PASS: s3cr:et
//	SERIAL: SC-XXXX-XXXX
//
//	EMAIL: second@example.com
//	PASS: other
//	SERIAL: SC-YYYY-YYYY
//
// Only the first colon separates key from value. Keys other than EMAIL, PASS
// and SERIAL are ignored, and records missing any of the three are dropped.
package credentials

import "strings"

// Record is one set of Unity account credentials. Records are passed by value
// and never modified after construction.
type Record struct {
	Email    string
	Password string
	Serial   string
}

// New builds a Record from its three fields.
func New(email, password, serial string) Record {
	return Record{Email: email, Password: password, Serial: serial}
}

// Complete reports whether all three fields are non-empty.
func (r Record) Complete() bool {
	return r.Email != "" && r.Password != "" && r.Serial != ""
}

// MaskedEmail returns the email with "@" replaced by "AT" so CI log scrapers
// do not pick it up as an address.
func (r Record) MaskedEmail() string {
	return strings.ReplaceAll(r.Email, "@", "AT")
}
