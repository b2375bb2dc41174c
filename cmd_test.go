package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForecastCommand(t *testing.T) {
	color.NoColor = true
	cmd := forecastCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--steps", "0"})
	require.NoError(t, cmd.Execute())

	s := out.String()
	assert.Contains(t, s, "Forecast at 00:00:00 (red countdown 30s)")
	assert.Contains(t, s, "+  5 min")
	assert.Contains(t, s, "+ 30 min")
}

func TestLightCommand(t *testing.T) {
	color.NoColor = true
	cmd := lightCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"2", "--steps", "8"})
	require.NoError(t, cmd.Execute())

	s := out.String()
	assert.Contains(t, s, "MFU front gate (to Mae Sai)")
	assert.Contains(t, s, "phase      GREEN")
	assert.Contains(t, s, "remaining  22s")
	assert.Contains(t, s, "turns green in 22 seconds")
}

func TestLightCommandUnknownLight(t *testing.T) {
	cmd := lightCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"9"})
	assert.Error(t, cmd.Execute())
}

func TestFormatStatus(t *testing.T) {
	color.NoColor = true
	ctx, err := newTask()
	require.NoError(t, err)
	ctx.Step()
	s := formatStatus(1, ctx.Clock().String(), ctx.Junction().Snapshot())
	assert.Contains(t, s, "#2 GREEN 29s")
	assert.Contains(t, s, "#1 RED 29s")
	assert.Contains(t, s, "next dir 2")
}
