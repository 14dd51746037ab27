package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-kolorful/kolorful"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		in      string
		want    uint16
		wantErr bool
	}{
		{"0150", 0x0150, false},
		{"0x0150", 0x0150, false},
		{"$FF80", 0xFF80, false},
		{" 0XC000 ", 0xC000, false},
		{"10000", 0, true},
		{"zz", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseAddress(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := parseLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := parseLevel("loud")
	assert.Error(t, err)
}

func TestRunHeadless(t *testing.T) {
	rom := make([]byte, 0x8000)

	t.Run("step limit", func(t *testing.T) {
		c := kolorful.New(rom)
		require.NoError(t, runHeadless(context.Background(), c, 10))
		assert.Equal(t, uint16(0x010A), c.CPU().PC())
	})

	t.Run("breakpoint is a clean stop", func(t *testing.T) {
		c := kolorful.New(rom)
		c.Breakpoints().Add(0x0104)
		require.NoError(t, runHeadless(context.Background(), c, 0))
		assert.Equal(t, uint16(0x0104), c.CPU().PC())
	})

	t.Run("fault is returned", func(t *testing.T) {
		bad := make([]byte, 0x8000)
		bad[0x0100] = 0xDD
		c := kolorful.New(bad)
		assert.Error(t, runHeadless(context.Background(), c, 0))
	})
}
