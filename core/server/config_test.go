package server_test

import (
	"testing"

	"account-sync/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     server.Config
		wantErr bool
	}{
		{"LoopbackWithoutKey", server.Config{Host: "127.0.0.1", Port: "8080"}, false},
		{"LocalhostWithoutKey", server.Config{Host: "localhost", Port: "8080"}, false},
		{"PublicWithKey", server.Config{Host: "0.0.0.0", Port: "8080", ApiKey: "secret"}, false},
		{"PublicWithoutKey", server.Config{Host: "0.0.0.0", Port: "8080"}, true},
		{"EmptyHostWithoutKey", server.Config{Port: "8080"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, server.ErrAPIKeyRequired)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Addr(t *testing.T) {
	c := server.Config{Host: "127.0.0.1", Port: "9000"}
	assert.Equal(t, "127.0.0.1:9000", c.Addr())
}
