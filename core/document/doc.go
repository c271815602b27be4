// Package document reads and writes account documents.
//
// An account document is a restricted two-level subset of YAML that maps
// aliases to an address and a private key:
//
//	accounts:
//	  alice:
//	    address: "0x..."
//	    private_key: ed25519-priv-0x...
//
// Both the wallet CLI configuration (config.yaml) and the local key file
// (pk.txt) use this shape, so a single parser serves both.
//
// # Parsing
//
// Parse never fails. It scans lines with a small state machine and ignores
// anything it does not understand, so documents may carry unrelated keys
// before or after the accounts section. Alias headers must be indented by
// exactly two spaces and field lines by exactly four; any other width is
// treated as an unknown line.
//
// # Serializing
//
// Serialize emits a canonical document with a warning header and aliases in
// ascending order. Output is byte-identical for equal sets regardless of how
// the set was built, and Parse(Serialize(x)) yields x for any valid set.
//
// Values are written without escaping. An address containing a double quote
// or a private key containing whitespace cannot be read back.
package document
