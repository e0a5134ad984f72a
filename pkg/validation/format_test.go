package validation

import "testing"

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
	}{
		{
			name:      "Valid pretty format",
			format:    "pretty",
			expectErr: false,
		},
		{
			name:      "Valid csv format",
			format:    "csv",
			expectErr: false,
		},
		{
			name:      "JSON is served by the API, not the CLI",
			format:    "json",
			expectErr: true,
		},
		{
			name:      "Empty format",
			format:    "",
			expectErr: true,
		},
		{
			name:      "Case sensitive - uppercase",
			format:    "PRETTY",
			expectErr: true,
		},
		{
			name:      "Leading/trailing spaces",
			format:    " csv ",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)

			if tt.expectErr {
				if err == nil {
					t.Errorf("ValidateOutputFormat(%s) expected error but got none", tt.format)
				}
			} else {
				if err != nil {
					t.Errorf("ValidateOutputFormat(%s) unexpected error = %v", tt.format, err)
				}
			}
		})
	}
}

func TestValidateLogSettings(t *testing.T) {
	for _, level := range []string{"", "debug", "INFO", "warn", "warning", "error"} {
		if err := ValidateLogLevel(level); err != nil {
			t.Errorf("ValidateLogLevel(%q) unexpected error = %v", level, err)
		}
	}
	if err := ValidateLogLevel("trace"); err == nil {
		t.Error("ValidateLogLevel(trace) expected error but got none")
	}

	for _, format := range []string{"", "json", "console"} {
		if err := ValidateLogFormat(format); err != nil {
			t.Errorf("ValidateLogFormat(%q) unexpected error = %v", format, err)
		}
	}
	if err := ValidateLogFormat("logfmt"); err == nil {
		t.Error("ValidateLogFormat(logfmt) expected error but got none")
	}
}

func TestValidateShares(t *testing.T) {
	tests := []struct {
		name     string
		operator float64
		investor float64
		warnings int
	}{
		{"unset", 0, 0, 0},
		{"published split", 0.20, 0.10, 0},
		{"published split within tolerance", 0.20000000001, 0.09999999999, 0},
		{"custom operator share", 0.25, 0, 1},
		{"both custom", 0.3, 0.15, 2},
		{"degenerate", 1, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateShares(tt.operator, tt.investor)
			if len(got) != tt.warnings {
				t.Errorf("ValidateShares(%v, %v) = %v, expected %d warnings", tt.operator, tt.investor, got, tt.warnings)
			}
		})
	}
}
