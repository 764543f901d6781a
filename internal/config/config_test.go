package config

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "single file mode",
			cfg:  Config{KeyFile: "sk", Parallel: 1, Files: []string{"in"}, Output: "out"},
		},
		{
			name: "batch mode",
			cfg:  Config{KeyFile: "sk", Parallel: 4, Files: []string{"a", "b"}, Suffix: ".pv"},
		},
		{
			name:    "missing key file",
			cfg:     Config{Parallel: 1, Files: []string{"in"}, Output: "out"},
			wantErr: true,
		},
		{
			name:    "no files",
			cfg:     Config{KeyFile: "sk", Parallel: 1, Output: "out"},
			wantErr: true,
		},
		{
			name:    "zero workers",
			cfg:     Config{KeyFile: "sk", Parallel: 0, Files: []string{"in"}, Output: "out"},
			wantErr: true,
		},
		{
			name:    "neither output nor suffix",
			cfg:     Config{KeyFile: "sk", Parallel: 1, Files: []string{"in"}},
			wantErr: true,
		},
		{
			name:    "both output and suffix",
			cfg:     Config{KeyFile: "sk", Parallel: 1, Files: []string{"in"}, Output: "out", Suffix: ".pv"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()

			if tt.wantErr {
				if !errors.Is(err, ErrUsage) {
					t.Errorf("Validate() error = %v, want ErrUsage", err)
				}

				return
			}

			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}
