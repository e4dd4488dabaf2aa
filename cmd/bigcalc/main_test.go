// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdva/bignum/bigint"
)

func execute(stdin string, args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--color", "off"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestIntCmd(t *testing.T) {
	a := assert.New(t)
	defer func() {
		bigint.JSONMode = bigint.JSONModeString
	}()
	tests := []struct {
		args []string
		res  string
		err  error
	}{
		{args: []string{"int", "9000", "+", "5000"}, res: "14000\n"},
		{args: []string{"int", "1000000000", "-", "1"}, res: "999999999\n"},
		{args: []string{"int", "123456789012345678901234567890", "*", "987654321"}, res: "121932631124828532112482853211126352690\n"},
		{args: []string{"int", "--", "-1000000000000000000000", "/", "7"}, res: "-142857142857142857142\n"},
		{args: []string{"int", "--", "-1000000000000000000000", "%", "7"}, res: "-6\n"},
		{args: []string{"int", "2", "cmp", "10"}, res: "-1\n"},
		{args: []string{"--json", "int", "2", "*", "3"}, res: "{\"result\":\"6\"}\n"},
		{args: []string{"--json", "--json-numbers", "int", "2", "*", "3"}, res: "{\"result\":6}\n"},
		{args: []string{"int", "1", "/", "0"}, err: bigint.ErrDivisionByZero},
		{args: []string{"int", "1", "%", "0"}, err: bigint.ErrDivisionByZero},
		{args: []string{"int", "1x", "+", "1"}, err: bigint.ErrInvalidFormat},
		{args: []string{"int", "1", "+", ""}, err: bigint.ErrInvalidFormat},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			out, err := execute("", test.args...)
			if test.err != nil {
				a.True(errors.Is(err, test.err), "%v", err)
				return
			}
			if a.NoError(err) {
				a.Equal(test.res, out)
			}
		})
	}
	_, err := execute("", "int", "1", "^", "2")
	a.EqualError(err, `unsupported operation "^"`)
	_, err = execute("", "int", "1", "+")
	a.Error(err)
}

func TestRatCmd(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		args []string
		res  string
		err  error
	}{
		{args: []string{"rat", "1/3", "+", "0.5"}, res: "5/6 (0.833333)\n"},
		{args: []string{"--prec", "3", "rat", "22/7", "-", "3"}, res: "1/7 (0.142)\n"},
		{args: []string{"--prec", "0", "rat", "7", "/", "2"}, res: "7/2 (3)\n"},
		{args: []string{"rat", "--", "-12.375", "*", "8"}, res: "-99 (-99.000000)\n"},
		{args: []string{"rat", "1/2", "cmp", "2/4"}, res: "0\n"},
		{args: []string{"--json", "--prec", "2", "rat", "1", "/", "3"}, res: "{\"result\":\"1/3\",\"decimal\":\"0.33\"}\n"},
		{args: []string{"rat", "1", "/", "0"}, err: bigint.ErrDivisionByZero},
		{args: []string{"rat", "1/0", "+", "1"}, err: bigint.ErrDivisionByZero},
		{args: []string{"rat", "1/x", "+", "1"}, err: bigint.ErrInvalidFormat},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			out, err := execute("", test.args...)
			if test.err != nil {
				a.True(errors.Is(err, test.err), "%v", err)
				return
			}
			if a.NoError(err) {
				a.Equal(test.res, out)
			}
		})
	}
	_, err := execute("", "rat", "1", "%", "2")
	a.EqualError(err, `unsupported operation "%"`)
	_, err = execute("", "--prec", "-1", "rat", "1", "+", "2")
	a.Error(err)
}

func TestSumCmd(t *testing.T) {
	a := assert.New(t)
	out, err := execute("1 2 3\n999999999999999999999\n-4\n", "sum")
	if a.NoError(err) {
		a.Equal("1000000000000000000001\n", out)
	}

	out, err = execute("", "sum")
	if a.NoError(err) {
		a.Equal("0\n", out)
	}

	out, err = execute("10 20", "--json", "sum")
	if a.NoError(err) {
		a.Equal("{\"result\":\"30\",\"count\":2}\n", out)
	}

	_, err = execute("1 2 x 4", "sum")
	a.True(errors.Is(err, bigint.ErrInvalidFormat))
	a.Contains(err.Error(), "token #3")
}

func TestVersionCmd(t *testing.T) {
	a := assert.New(t)
	out, err := execute("", "version")
	if a.NoError(err) {
		a.Equal("bigcalc "+Version+"\n", out)
	}
}

func TestConfig(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "bigcalc.toml")
	data := `# test config
precision = 2
json = true
color = "off"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	out, err := execute("", "--config", path, "rat", "1", "/", "3")
	if a.NoError(err) {
		a.Equal("{\"result\":\"1/3\",\"decimal\":\"0.33\"}\n", out)
	}

	// flags take precedence over the file.
	out, err = execute("", "--config", path, "--json=false", "--prec", "4", "rat", "1", "/", "3")
	if a.NoError(err) {
		a.Equal("1/3 (0.3333)\n", out)
	}

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("precision = -3\n"), 0o600))
	_, err = execute("", "--config", bad, "version")
	a.Error(err)

	unknown := filepath.Join(dir, "unknown.toml")
	require.NoError(t, os.WriteFile(unknown, []byte("scale = 3\n"), 0o600))
	_, err = execute("", "--config", unknown, "version")
	if a.Error(err) {
		a.Contains(err.Error(), `unknown key "scale"`)
	}

	_, err = execute("", "--config", filepath.Join(dir, "missing.toml"), "version")
	a.Error(err)
	_, err = execute("", "--color", "rainbow", "version")
	a.ErrorIs(err, errBadColorMode)
}
