package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	for _, tc := range []struct {
		name        string
		lvl         string
		parsedLevel slog.Level
		hasErr      bool
	}{
		{
			name:        "Empty string",
			lvl:         "",
			parsedLevel: 0,
			hasErr:      true,
		},
		{
			name:        "Uppercase level",
			lvl:         "DEBUG",
			parsedLevel: DebugLevel,
			hasErr:      false,
		},
		{
			name:        "Debug",
			lvl:         "debug",
			parsedLevel: DebugLevel,
			hasErr:      false,
		},
		{
			name:        "Info",
			lvl:         "info",
			parsedLevel: InfoLevel,
			hasErr:      false,
		},
		{
			name:        "Warn",
			lvl:         "warn",
			parsedLevel: WarnLevel,
			hasErr:      false,
		},
		{
			name:        "Error",
			lvl:         "error",
			parsedLevel: ErrorLevel,
			hasErr:      false,
		},
		{
			name:        "Off",
			lvl:         "off",
			parsedLevel: OffLevel,
			hasErr:      false,
		},
		{
			name:        "Unsupported level",
			lvl:         "XXX",
			parsedLevel: 0,
			hasErr:      true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			l, err := ParseLevel(tc.lvl)

			assert.Equal(t, tc.parsedLevel, l)

			if tc.hasErr {
				assert.NotNil(t, err)
				assert.ErrorContains(t, err, "unrecognized level: ")
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestNew(t *testing.T) {
	buf := &bytes.Buffer{}

	logger, err := New(buf, "warn")
	assert.Nil(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "queue", "orders")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=WARN msg=shown queue=orders")

	buf.Reset()
	logger, err = New(buf, "off")
	assert.Nil(t, err)

	logger.Error("hidden")
	assert.Empty(t, buf.String())

	_, err = New(buf, "verbose")
	assert.ErrorContains(t, err, "unrecognized level: verbose")
}
