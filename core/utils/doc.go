// Package utils holds small display helpers shared by the CLI and the HTTP API.
//
// MaskSecret renders private keys safely: the key-type prefix and the last
// four characters stay visible so users can tell keys apart without exposing them.
package utils
