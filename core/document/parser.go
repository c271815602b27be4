package document

import (
	"strings"
	"unicode"
)

// SectionKey is the top-level key that anchors the accounts section.
const SectionKey = "accounts"

const (
	aliasIndent = 2
	fieldIndent = 4
)

type parseState int

const (
	// stateOutside scans for the accounts anchor.
	stateOutside parseState = iota
	// stateSection is inside the section before any alias header.
	stateSection
	// stateAlias is inside the section with a current alias.
	stateAlias
	// stateDone stops the scan at the next top-level key.
	stateDone
)

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Parse extracts the accounts section of text. It never fails: lines it does
// not recognise are skipped, and a document without an accounts section
// yields an empty set.
func Parse(text string) AccountSet {
	p := &parser{accounts: make(AccountSet)}
	for _, line := range strings.Split(lineBreaks.Replace(text), "\n") {
		p.feed(line)
		if p.state == stateDone {
			break
		}
	}

	for alias, acc := range p.accounts {
		if acc.IsEmpty() {
			delete(p.accounts, alias)
		}
	}
	return p.accounts
}

type parser struct {
	state    parseState
	alias    string
	accounts AccountSet
}

func (p *parser) feed(line string) {
	if p.state == stateOutside {
		if key, ok := header(line, 0); ok && key == SectionKey {
			p.state = stateSection
		}
		return
	}

	// A sibling top-level section ends ours.
	if _, ok := header(line, 0); ok {
		p.state = stateDone
		return
	}

	if alias, ok := header(line, aliasIndent); ok {
		p.alias = alias
		p.state = stateAlias
		if _, seen := p.accounts[alias]; !seen {
			p.accounts[alias] = Account{}
		}
		return
	}

	if p.state != stateAlias {
		return
	}

	name, raw, ok := field(line)
	if !ok {
		return
	}
	acc := p.accounts[p.alias]
	switch name {
	case FieldAddress:
		if raw == "" {
			return
		}
		acc.Address = unquote(raw)
	case FieldPrivateKey:
		token := strings.TrimSpace(raw)
		if token == "" || strings.IndexFunc(token, unicode.IsSpace) >= 0 {
			return
		}
		acc.PrivateKey = unquote(token)
	default:
		return
	}
	p.accounts[p.alias] = acc
}

// header matches "<indent spaces>identifier:" with nothing but blanks after
// the colon. Any other indentation width fails to match.
func header(line string, indent int) (string, bool) {
	rest, ok := cutIndent(line, indent)
	if !ok {
		return "", false
	}
	rest = strings.TrimRightFunc(rest, unicode.IsSpace)
	if !strings.HasSuffix(rest, ":") {
		return "", false
	}
	key := strings.TrimRight(rest[:len(rest)-1], " \t")
	if !ValidAlias(key) {
		return "", false
	}
	return key, true
}

// field splits a four-space indented "name: value" line. The returned value
// is everything after the colon, untrimmed.
func field(line string) (name, value string, ok bool) {
	rest, ok := cutIndent(line, fieldIndent)
	if !ok {
		return "", "", false
	}
	name, value, found := strings.Cut(rest, ":")
	if !found {
		return "", "", false
	}
	name = strings.TrimRight(name, " \t")
	if name != FieldAddress && name != FieldPrivateKey {
		return "", "", false
	}
	return name, value, true
}

// cutIndent strips exactly n leading spaces. A further leading blank means
// the line is indented deeper than n and does not match.
func cutIndent(line string, n int) (string, bool) {
	if len(line) <= n || strings.TrimLeft(line[:n], " ") != "" {
		return "", false
	}
	rest := line[n:]
	if rest[0] == ' ' || rest[0] == '\t' {
		return "", false
	}
	return rest, true
}

// unquote trims s and removes one layer of matching single or double quotes.
// Whitespace inside the quotes is kept.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			s = s[1 : len(s)-1]
		}
	}
	return s
}
