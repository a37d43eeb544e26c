package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_JSONConAppYComponent(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(Config{App: "salon-finance", Env: "production", Level: "info"}, &buf)

	zl := l.Component("params")
	zl.Info().Msg("snapshot guardado")
	zl.Debug().Msg("no se escribe")

	out := buf.String()
	assert.Contains(t, out, `"app":"salon-finance"`)
	assert.Contains(t, out, `"component":"params"`)
	assert.Contains(t, out, "snapshot guardado")
	assert.NotContains(t, out, "no se escribe")
}

func TestNew_DevelopmentEnConsola(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(Config{Env: "development", Level: "debug"}, &buf)
	l.Debug().Msg("hola")

	assert.NotContains(t, buf.String(), `"level"`)
	assert.Contains(t, buf.String(), "hola")
}
