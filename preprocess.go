package dirglob

import (
	"os/user"
	"path/filepath"
	"strings"
)

// preprocess preprocesses the token sequence in the following ways.
// Because ~ means homedir:
// - Prefix ~/ (or a lone ~) becomes homedir/ (but only if user.Current()
// succeeds.)
//
// TODO: Arbitrary local user homedirs (~alice/)?
func preprocess(in tokens, cfg *parseConfig) tokens {
	if !cfg.expandTilde {
		return in
	}
	hd := homeDir()
	if len(hd) == 0 {
		return in
	}
	tilde := token{kind: tokenLiteral, r: '~'}
	sep := token{kind: tokenLiteral, r: '/'}
	switch {
	case len(in) == 1 && sameToken(in[0], tilde):
		return hd
	case hasPrefix(in, tokens{tilde, sep}):
		return append(hd, in[2:]...)
	}
	return in
}

// homeDir returns the current user's homedir as a literal token sequence
// ending in a separator.
func homeDir() tokens {
	u, err := user.Current()
	if err != nil {
		// Oh well, no homedir for you.
		return nil
	}
	homeDir := filepath.ToSlash(u.HomeDir)
	if !strings.HasSuffix(homeDir, "/") {
		homeDir += "/"
	}
	hd := make(tokens, 0, len(homeDir))
	for len(homeDir) > 0 {
		r, n := decodeChar(homeDir)
		hd = append(hd, token{kind: tokenLiteral, r: r})
		homeDir = homeDir[n:]
	}
	return hd
}

// sameToken compares tokens ignoring their offsets.
func sameToken(a, b token) bool {
	a.off, b.off = 0, 0
	return a == b
}

// hasPrefix reports whether in has the prefix.
func hasPrefix(in, prefix tokens) bool {
	if len(in) < len(prefix) {
		return false
	}
	for i, t := range prefix {
		if !sameToken(t, in[i]) {
			return false
		}
	}
	return true
}
