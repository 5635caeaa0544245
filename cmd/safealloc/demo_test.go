package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDemoCommand(t *testing.T) {
	codes := resetGlobals(t)

	output, err := captureOutput(t, runDemo)
	require.NoError(t, err)

	assertContains(t, output, []string{
		"a = 0x",
		"values: a=10 b=20 c=30",
		"released a=true c=true b=true",
		"live blocks: 0",
	})
	require.Equal(t, []int{0}, *codes)
}

func TestDemoCommand_JSON(t *testing.T) {
	codes := resetGlobals(t)
	jsonOut = true
	quiet = true

	output, err := captureOutput(t, runDemo)
	require.NoError(t, err)
	assertJSON(t, output)

	var res demoResult
	require.NoError(t, json.Unmarshal([]byte(output), &res))
	require.Equal(t, map[string]uint32{"a": 10, "b": 20, "c": 30}, res.Values)
	require.Equal(t, map[string]bool{"a": true, "b": true, "c": true}, res.Released)
	require.Zero(t, res.Live)
	require.Len(t, res.Addresses, 3)
	require.Equal(t, []int{0}, *codes)
}

func TestDemoCommand_BudgetTooSmall(t *testing.T) {
	codes := resetGlobals(t)
	limit = 8

	_, err := captureOutput(t, runDemo)
	require.ErrorIs(t, err, errAborted)
	require.Equal(t, []int{255}, *codes)
}

func TestDemoCommand_UnknownBackend(t *testing.T) {
	codes := resetGlobals(t)
	backend = "tape"

	_, err := captureOutput(t, runDemo)
	require.ErrorContains(t, err, "unknown backend")
	require.Empty(t, *codes)
}
