package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/oneshot/internal/domain/config"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		envLevel  string
		wantInfo  bool
		wantDebug bool
	}{
		{name: "quiet by default", wantInfo: false},
		{name: "env info", envLevel: "INFO", wantInfo: true},
		{name: "env debug", envLevel: "debug", wantInfo: true, wantDebug: true},
		{name: "debug flag", debug: true, wantInfo: true, wantDebug: true},
		{name: "unknown env value", envLevel: "verbose", wantInfo: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := newLogger(&buf, &config.RuntimeConfig{Debug: tt.debug}, tt.envLevel)

			log.Info("submitted")
			log.Debug("resolved")

			assert.Equal(t, tt.wantInfo, bytes.Contains(buf.Bytes(), []byte("submitted")))
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("resolved")))
		})
	}
}

func TestNewLogger_RunAttribute(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, &config.RuntimeConfig{}, "info")

	log.Info("deployment submitted", "tx", "0x01")

	assert.Contains(t, buf.String(), "run=")
	assert.Contains(t, buf.String(), "tx=0x01")
	assert.NotContains(t, buf.String(), "time=")
}
