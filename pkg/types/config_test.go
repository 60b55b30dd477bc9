package types

import "testing"

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{"valid sqlite", Config{Backend: BackendSQLite, DataDir: "/tmp/x"}, nil},
		{"empty data dir allowed", Config{Backend: BackendSQLite}, nil},
		{"empty backend", Config{}, ErrBackendEmpty},
		{"unknown backend", Config{Backend: "postgres"}, ErrBackendUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.config.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
