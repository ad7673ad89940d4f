package middleware

import (
	"bytes"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	applog "github.com/melontron/cloud-engineering-deep-dive/pkg/log"
	"github.com/stretchr/testify/assert"
)

func TestLogger_Levels(t *testing.T) {
	t.Parallel()

	base := applog.New()
	l := Logger{Logger: base}

	tests := []struct {
		echo log.Lvl
		app  applog.Level
	}{
		{log.DEBUG, applog.DebugLevel},
		{log.INFO, applog.InfoLevel},
		{log.WARN, applog.WarnLevel},
		{log.ERROR, applog.ErrorLevel},
	}
	for _, tt := range tests {
		l.SetLevel(tt.echo)
		assert.Equal(t, tt.app, base.GetLevel())
		assert.Equal(t, tt.echo, l.Level())
	}

	l.SetLevel(log.OFF)
	assert.Equal(t, applog.ErrorLevel, base.GetLevel(), "OFF는 무시")

	base.SetLevel(applog.FatalLevel)
	assert.Equal(t, log.OFF, l.Level())
}

func TestLogger_Output(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := applog.New()
	base.SetFormatter(&applog.JSONFormatter{})
	l := Logger{Logger: base}

	l.SetOutput(&buf)
	assert.Same(t, &buf, l.Output())
	assert.Empty(t, l.Prefix())

	l.Infoj(log.JSON{"key": "value"})
	l.Warnf("warn %d", 1)

	assert.Contains(t, buf.String(), `"key":"value"`)
	assert.Contains(t, buf.String(), `"msg":"warn 1"`)

	var _ echo.Logger = l
}
