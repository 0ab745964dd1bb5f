// Copyright 2020 Aleksandr Demakin. All rights reserved.

package apdecimal

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeString
)

const (
	// JSONModeString produces values as strings, like `"1234.5678"`.
	JSONModeString = iota
	// JSONModeFloat marshals values as json numbers, like `1234.5678`.
	// All the digits are kept, so the value may not fit a float64 of the reader.
	JSONModeFloat
	// JSONModeME marshals values with mantissa and exponent, like `{"m":"12345678","e":-4}`.
	// The mantissa is a string, as it may have any number of digits.
	JSONModeME
	// JSONModeCompact will choose the shortest form between JSONModeString and JSONModeME.
	JSONModeCompact
)

var jsonParts = [...]string{`{"m":"`, `","e":`, `}`}

// MarshalJSON marshals value according to current JSONMode.
// See JSONMode and JSONMode* constants.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return d.toJSON(JSONMode), nil
}

func (d Decimal) toJSON(mode int) []byte {
	switch mode {
	case JSONModeFloat:
		return []byte(d.format(-1, '.'))
	case JSONModeME:
		var builder strings.Builder
		builder.WriteString(jsonParts[0])
		d.mantToBuilder(&builder)
		builder.WriteString(jsonParts[1])
		builder.WriteString(strconv.Itoa(d.meExp()))
		builder.WriteString(jsonParts[2])
		return []byte(builder.String())
	case JSONModeCompact:
		s := d.toJSON(JSONModeString)
		if me := d.toJSON(JSONModeME); len(me) < len(s) {
			return me
		}
		return s
	default: // marshal as a string
		return []byte(`"` + d.format(-1, '.') + `"`)
	}
}

// mantToBuilder writes the digits without trailing zeros.
func (d Decimal) mantToBuilder(builder *strings.Builder) {
	if d.IsZero() {
		builder.WriteByte('0')
		return
	}
	if d.neg {
		builder.WriteByte('-')
	}
	end := len(d.digits)
	for end > 1 && d.digits[end-1] == 0 {
		end--
	}
	for _, v := range d.digits[:end] {
		builder.WriteByte('0' + v)
	}
}

// meExp returns the exponent for the mantissa without trailing zeros.
func (d Decimal) meExp() int {
	if d.IsZero() {
		return 0
	}
	exp := d.shift
	for i := len(d.digits) - 1; i > 0 && d.digits[i] == 0; i-- {
		exp++
	}
	return exp
}

// UnmarshalJSON unmarshals a string, a number, or an object into a value.
// null leaves the value unchanged.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return errors.New("empty json")
	}
	switch data[0] {
	case 'n':
		if string(data) != "null" {
			return errors.Errorf("bad json %q", data)
		}
		return nil
	case '{':
		me := struct {
			M string
			E int
		}{}
		if err := json.Unmarshal(data, &me); err != nil {
			return errors.Wrap(err, "bad json")
		}
		value, err := Parse(me.M)
		if err != nil {
			return err
		}
		*d = value.ShiftRight(me.E)
	default:
		value, err := Parse(string(data))
		if err != nil {
			return err
		}
		*d = value
	}
	return nil
}

// MarshalText returns the value as a string with '.' as the separator.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.format(-1, '.')), nil
}

// UnmarshalText parses a value from its text representation.
func (d *Decimal) UnmarshalText(data []byte) error {
	value, err := Parse(string(data))
	if err != nil {
		return err
	}
	*d = value
	return nil
}
