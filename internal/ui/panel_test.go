package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanelFramesLinesInMono(t *testing.T) {
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })

	var buf bytes.Buffer
	Panel(&buf, []string{"Work", "Roll NO.  12345"})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "+-----------------+", lines[0])
	assert.Equal(t, "| Work            |", lines[1])
	assert.Equal(t, "| Roll NO.  12345 |", lines[2])
	assert.Equal(t, lines[0], lines[3])
}

func TestColorDisabledInMono(t *testing.T) {
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })
	assert.Equal(t, "plain", C(fgRed, "plain"))
}

func TestColorModes(t *testing.T) {
	SetTheme("classic")
	t.Cleanup(func() { _ = SetColorMode(ColorNever, nil) })
	var buf bytes.Buffer

	require.NoError(t, SetColorMode(ColorAlways, &buf))
	assert.Equal(t, fgGreen+"ok"+reset, C(fgGreen, "ok"))
	assert.Equal(t, "ok", stripANSI(C(fgGreen, "ok")))

	require.NoError(t, SetColorMode(ColorAuto, &buf))
	assert.Equal(t, "ok", C(fgGreen, "ok"), "a buffer is not a terminal")

	require.NoError(t, SetColorMode(ColorNever, &buf))
	assert.Equal(t, "ok", C(fgGreen, "ok"))

	assert.Error(t, SetColorMode("sometimes", &buf))
}

func TestMonoStaysPlainWhenForced(t *testing.T) {
	SetTheme("mono")
	require.NoError(t, SetColorMode(ColorAlways, nil))
	t.Cleanup(func() {
		SetTheme("classic")
		_ = SetColorMode(ColorNever, nil)
	})
	assert.Equal(t, "plain", C(fgRed, "plain"))
}

func TestMeter(t *testing.T) {
	assert.Equal(t, "██░░░░░░ 2/8 set", Meter(2, 8, 8))
	assert.Equal(t, "░░░░░ 0/0 set", Meter(0, 0, 1))
}

func TestOKAndFail(t *testing.T) {
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })
	var buf bytes.Buffer
	OK(&buf, "saved")
	Fail(&buf, "nope")
	assert.Equal(t, "✔ saved\n✖ nope\n", buf.String())
}
