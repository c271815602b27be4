package document

import (
	"fmt"
	"strings"
)

// Header is the warning comment written at the top of every document.
const Header = "# IMPORTANT: This file contains PRIVATE KEYS. KEEP IT SECRET. DO NOT COMMIT."

// Serialize renders accounts as a canonical document. Aliases are sorted and
// empty fields are omitted; an alias with no fields is still written as a bare
// header.
func Serialize(accounts AccountSet) string {
	var b strings.Builder
	b.WriteString(Header + "\n")
	b.WriteString(SectionKey + ":\n")

	for _, alias := range accounts.Aliases() {
		acc := accounts[alias]
		fmt.Fprintf(&b, "  %s:\n", alias)
		if addr := strings.TrimSpace(acc.Address); addr != "" {
			fmt.Fprintf(&b, "    %s: \"%s\"\n", FieldAddress, addr)
		}
		if key := strings.TrimSpace(acc.PrivateKey); key != "" {
			fmt.Fprintf(&b, "    %s: %s\n", FieldPrivateKey, key)
		}
	}
	return b.String()
}
