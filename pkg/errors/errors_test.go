package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeGridTooLarge, "grid too large: %d cells", 729)

	if err.Code != ErrCodeGridTooLarge {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeGridTooLarge)
	}

	if err.Message != "grid too large: 729 cells" {
		t.Errorf("Message = %v, want %v", err.Message, "grid too large: 729 cells")
	}

	expected := "GRID_TOO_LARGE: grid too large: 729 cells"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("exit status 1")
	err := Wrap(ErrCodeMonitorQuery, cause, "hyprctl failed")

	if err.Code != ErrCodeMonitorQuery {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeMonitorQuery)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "MONITOR_QUERY: hyprctl failed: exit status 1"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", New(ErrCodeConfigParse, "bad toml"), ErrCodeConfigParse, true},
		{"different code", New(ErrCodeConfigParse, "bad toml"), ErrCodeConfigRead, false},
		{"wrapped with fmt", fmt.Errorf("load config: %w", New(ErrCodeConfigInvalid, "x")), ErrCodeConfigInvalid, true},
		{"plain error", errors.New("plain"), ErrCodeInternal, false},
		{"nil error", nil, ErrCodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeMonitorNotFound, "none focused"), ErrCodeMonitorNotFound},
		{"wrapped Error", fmt.Errorf("detect: %w", New(ErrCodeMonitorParse, "x")), ErrCodeMonitorParse},
		{"plain error", errors.New("plain"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "Error with cause",
			err:      Wrap(ErrCodeConfigRead, errors.New("permission denied"), "cannot read config"),
			expected: "cannot read config\npermission denied",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}
