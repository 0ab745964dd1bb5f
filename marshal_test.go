// Copyright 2020 Aleksandr Demakin. All rights reserved.

package apdecimal

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	defer func(mode int) { JSONMode = mode }(JSONMode)
	a := assert.New(t)
	tests := []struct {
		s    string
		mode int
		res  string
	}{
		{s: "1.5", mode: JSONModeString, res: `"1.5"`},
		{s: "-0.001", mode: JSONModeString, res: `"-0.001"`},
		{s: "0", mode: JSONModeString, res: `"0"`},
		{s: "1.5", mode: JSONModeFloat, res: `1.5`},
		{s: "-1200", mode: JSONModeFloat, res: `-1200`},
		{s: "1.5", mode: JSONModeME, res: `{"m":"15","e":-1}`},
		{s: "1200", mode: JSONModeME, res: `{"m":"12","e":2}`},
		{s: "-0.00123", mode: JSONModeME, res: `{"m":"-123","e":-5}`},
		{s: "0", mode: JSONModeME, res: `{"m":"0","e":0}`},
		{s: "1200", mode: JSONModeCompact, res: `"1200"`},
		{s: "1e-20", mode: JSONModeCompact, res: `{"m":"1","e":-20}`},
		{s: "1e30", mode: JSONModeCompact, res: `{"m":"1","e":30}`},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			JSONMode = test.mode
			data, err := json.Marshal(MustParse(test.s))
			require.NoError(t, err)
			a.Equal(test.res, string(data))
			var d Decimal
			require.NoError(t, json.Unmarshal(data, &d))
			a.True(MustParse(test.s).Equal(d), "%s != %s", test.s, d)
		})
	}
}

func TestUnmarshalJSON(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		data string
		res  string
		err  bool
	}{
		{data: `"123.456"`, res: "123.456"},
		{data: `-1.3456E-5`, res: "-0.000013456"},
		{data: `{"m":"15","e":-1}`, res: "1.5"},
		{data: `{"m":"-7","e":3}`, res: "-7000"},
		{data: `{"e":3}`, res: "0"},
		{data: `"12a"`, err: true},
		{data: `{"m":15}`, err: true},
		{data: `{"m":"1.x","e":1}`, err: true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			var d Decimal
			err := d.UnmarshalJSON([]byte(test.data))
			if test.err {
				a.Error(err)
				return
			}
			require.NoError(t, err)
			a.Equal(test.res, d.String())
		})
	}
}

func TestUnmarshalJSONNull(t *testing.T) {
	a := assert.New(t)
	s := struct {
		D Decimal `json:"d"`
	}{D: MustParse("42")}
	a.NoError(json.Unmarshal([]byte(`{"d":null}`), &s))
	a.Equal("42", s.D.String())
	var d Decimal
	a.Error(d.UnmarshalJSON(nil))
	a.Error(d.UnmarshalJSON([]byte("nul")))
}

func TestMarshalText(t *testing.T) {
	defer func() { DecimalSeparator = '.' }()
	DecimalSeparator = ','
	a := assert.New(t)
	d := MustParse("-12.5")
	a.Equal("-12,5", d.String())
	data, err := d.MarshalText()
	require.NoError(t, err)
	a.Equal("-12.5", string(data))

	var back Decimal
	require.NoError(t, back.UnmarshalText(data))
	a.True(d.Equal(back))
	a.Error(back.UnmarshalText([]byte("1.2.3")))

	m := map[string]Decimal{"x": d}
	data, err = json.Marshal(m)
	require.NoError(t, err)
	a.Equal(`{"x":"-12.5"}`, string(data))
}
