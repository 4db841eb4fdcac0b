// SPDX-License-Identifier: MIT

package invert

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("gjinv", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(newFlagSet(), nil)
	require.NoError(t, err)

	assert.Equal(t, Config{
		Seed:      1,
		Max:       10,
		Precision: 6,
	}, cfg)
}

func TestParseConfigEnvThenFlags(t *testing.T) {
	t.Setenv("GJINV_RANDOM", "4")
	t.Setenv("GJINV_SEED", "99")
	t.Setenv("GJINV_VERIFY", "true")
	t.Setenv("GJINV_PRECISION", "3")

	cfg, err := ParseConfig(newFlagSet(), []string{"-seed", "7", "-partial", "-eps", "1e-12"})
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Random)
	assert.Equal(t, uint(7), cfg.Seed, "flag wins over env")
	assert.True(t, cfg.Verify)
	assert.True(t, cfg.PartialPivoting)
	assert.Equal(t, 1e-12, cfg.Epsilon)
	assert.Equal(t, 3, cfg.Precision)
}

func TestParseConfigPositionalInput(t *testing.T) {
	cfg, err := ParseConfig(newFlagSet(), []string{"a.txt"})
	require.NoError(t, err)
	assert.Equal(t, "a.txt", cfg.Input)

	_, err = ParseConfig(newFlagSet(), []string{"-in", "a.txt", "b.txt"})
	require.Error(t, err)

	_, err = ParseConfig(newFlagSet(), []string{"a.txt", "b.txt"})
	require.Error(t, err)
}

func TestParseConfigRejects(t *testing.T) {
	cases := map[string][]string{
		"negative random":    {"-random", "-1"},
		"random plus input":  {"-random", "3", "a.txt"},
		"negative eps":       {"-eps", "-1"},
		"negative precision": {"-precision", "-2"},
		"seed too wide":      {"-seed", "4294967296"},
		"unknown flag":       {"-nope"},
	}
	for name, args := range cases {
		_, err := ParseConfig(newFlagSet(), args)
		assert.Errorf(t, err, "case %s", name)
	}
}

func TestParseConfigBadEnv(t *testing.T) {
	t.Setenv("GJINV_RANDOM", "many")

	_, err := ParseConfig(newFlagSet(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}
