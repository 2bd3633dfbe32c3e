package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kstaniek/go-can-prio/internal/canid"
	"github.com/kstaniek/go-can-prio/internal/metrics"
)

// Sentinel errors so callers (and tests) can classify via errors.Is.
var (
	errWordSyntax = errors.New("word must be a CODE:ID hex pair")
	errWordRange  = errors.New("id word out of range for its format")
)

// parseWord parses a message-buffer word pair formatted as CODE:ID, both
// words in hex with an optional 0x prefix.
func parseWord(s string) (canid.IDReg, error) {
	codeStr, idStr, ok := strings.Cut(s, ":")
	if !ok {
		metrics.IncMalformed()
		return canid.IDReg{}, fmt.Errorf("%w: %q", errWordSyntax, s)
	}
	code, err := parseHex32(codeStr)
	if err != nil {
		metrics.IncMalformed()
		return canid.IDReg{}, fmt.Errorf("%w: %q: %v", errWordSyntax, s, err)
	}
	id, err := parseHex32(idStr)
	if err != nil {
		metrics.IncMalformed()
		return canid.IDReg{}, fmt.Errorf("%w: %q: %v", errWordSyntax, s, err)
	}
	reg, ok := canid.RegFromWords(code, id)
	if !ok {
		metrics.IncMalformed()
		return canid.IDReg{}, fmt.Errorf("%w: %q", errWordRange, s)
	}
	return reg, nil
}

func parseHex32(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 32)
	return uint32(v), err
}
