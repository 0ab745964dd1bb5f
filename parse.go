// Copyright 2020 Aleksandr Demakin. All rights reserved.

package apdecimal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

var expNotation = regexp.MustCompile(`^([+-]?(?:\d+(?:[.,]\d*)?|[.,]\d+))[eE]([+-]?\d+)$`)

// Parse parses a decimal number.
// Accepted forms are "-123.456", "123,456", and the exponential notation, like "1.3456E-5".
// Surrounding spaces and double quotes are ignored.
// An empty string, or a string consisting of a sign or a separator only is parsed as zero.
func Parse(s string) (Decimal, error) {
	s, offset := prepareString(s)
	if m := expNotation.FindStringSubmatch(s); m != nil {
		e, err := strconv.ParseInt(m[2], 10, 32)
		if err != nil {
			return Zero, parseError(newPosError(fmt.Sprintf("bad exponent %q", m[2]), offset+len(m[1])+2))
		}
		d, err := parsePlain(m[1], offset)
		if err != nil {
			return Zero, err
		}
		return d.ShiftRight(int(e)), nil
	}
	return parsePlain(s, offset)
}

// MustParse calls Parse and panics on error.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// prepareString removes spaces and quotes around the number.
// Returns the number of removed leading bytes.
func prepareString(s string) (prepared string, offset int) {
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
		offset++
	}
	return s, offset
}

// parsePlain parses a number without an exponent.
// offset is used to report error positions relative to the original input.
func parsePlain(s string, offset int) (Decimal, error) {
	switch s {
	case "", "0":
		return Zero, nil
	case "1":
		return One, nil
	case "-1":
		return One.Neg(), nil
	}
	var neg bool
	start := 0
	switch s[0] {
	case '-':
		neg, start = true, 1
	case '+':
		start = 1
	}
	digits := make([]byte, 0, len(s)-start)
	point := -1
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
			digits = append(digits, c-'0')
		case c == '.' || c == ',':
			if point >= 0 {
				return Zero, parseError(newPosError("unexpected separator", offset+i+1))
			}
			point = len(digits)
		default:
			r, _ := utf8.DecodeRuneInString(s[i:])
			return Zero, parseError(newPosError(fmt.Sprintf("unexpected symbol %q", r), offset+i+1))
		}
	}
	var shift int
	if point >= 0 {
		shift = point - len(digits)
	}
	return newDecimal(digits, shift, neg), nil
}

func parseError(err error) error {
	return errors.WithMessage(err, "parsing failed")
}
