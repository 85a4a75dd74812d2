//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpCatalogFetch,
			err:      nil,
			expected: "",
		},
		{
			name:     "fetch failure",
			op:       OpCatalogFetch,
			err:      errors.New("connection refused"),
			expected: "Failed to fetch products: connection refused",
		},
		{
			name:     "config failure",
			op:       OpConfigLoad,
			err:      errors.New("toml: line 3"),
			expected: "Failed to load configuration: toml: line 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpConfigLoad,
			context:  "config.toml",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpConfigLoad,
			context:  "config.toml",
			err:      errors.New("permission denied"),
			expected: "Failed to load configuration 'config.toml': permission denied",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpLoggerInit,
			context:  "",
			err:      errors.New("read-only file system"),
			expected: "Failed to initialize logging: read-only file system",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	ops := []Op{
		OpCatalogFetch,
		OpConfigLoad, OpLoggerInit, OpInitialize, OpUIRun, OpDesktopSend,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}
			expected := "Failed to " + string(op) + ": test error"
			if result := Format(op, testErr); result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
