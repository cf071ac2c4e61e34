package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/config"
)

func TestOverrideStorage(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		want    string
		wantErr bool
	}{
		{name: "keeps configured driver", flag: "", want: "postgres"},
		{name: "memory", flag: "memory", want: "memory"},
		{name: "postgres", flag: "postgres", want: "postgres"},
		{name: "unknown", flag: "sqlite", want: "postgres", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Storage: config.StorageConfig{Driver: "postgres"}}

			err := overrideStorage(cfg, tt.flag)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, cfg.Storage.Driver)
		})
	}
}
