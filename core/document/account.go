package document

import (
	"regexp"
	"sort"
	"strings"
)

// Field names as they appear in a document.
const (
	FieldAddress    = "address"
	FieldPrivateKey = "private_key"
)

var aliasPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// ValidAlias reports whether s can be used as an account alias.
func ValidAlias(s string) bool {
	return aliasPattern.MatchString(s)
}

// Account holds the fields stored for one alias. Either field may be empty.
type Account struct {
	// Address is the on-chain account address, usually 0x-prefixed hex.
	Address string `json:"address,omitempty" yaml:"address,omitempty"`
	// PrivateKey is the signing key token, e.g. "ed25519-priv-0x...".
	PrivateKey string `json:"private_key,omitempty" yaml:"private_key,omitempty"`
}

// IsEmpty reports whether neither field carries a value.
func (a Account) IsEmpty() bool {
	return strings.TrimSpace(a.Address) == "" && strings.TrimSpace(a.PrivateKey) == ""
}

// Field returns the value of the named field.
func (a Account) Field(name string) string {
	switch name {
	case FieldAddress:
		return a.Address
	case FieldPrivateKey:
		return a.PrivateKey
	default:
		return ""
	}
}

// AccountSet maps aliases to accounts.
type AccountSet map[string]Account

// Len returns the number of aliases in the set.
func (s AccountSet) Len() int {
	return len(s)
}

// Aliases returns the aliases in ascending order.
func (s AccountSet) Aliases() []string {
	aliases := make([]string, 0, len(s))
	for alias := range s {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// Clone returns a shallow copy. Accounts are values, so the copy is independent.
func (s AccountSet) Clone() AccountSet {
	out := make(AccountSet, len(s))
	for alias, acc := range s {
		out[alias] = acc
	}
	return out
}

// WithField returns a copy of a with the named field set to value.
// Unknown field names leave the account unchanged.
func (a Account) WithField(name, value string) Account {
	switch name {
	case FieldAddress:
		a.Address = value
	case FieldPrivateKey:
		a.PrivateKey = value
	}
	return a
}
