package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestError(t *testing.T) {
	err := New(ErrCodeUnsupported, "unsupported manifest: %s", "Cartfile")
	if got, want := err.Error(), "UNSUPPORTED: unsupported manifest: Cartfile"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	wrapped := Wrap(ErrCodeFileNotFound, fs.ErrNotExist, "manifest not found: %s", "ios/Podfile")
	if got, want := wrapped.Error(), "FILE_NOT_FOUND: manifest not found: ios/Podfile: file does not exist"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(wrapped, fs.ErrNotExist) {
		t.Error("wrapped error should match its cause")
	}
}

func TestCodes(t *testing.T) {
	inner := New(ErrCodeInvalidManager, "unknown manager: carthage")

	tests := []struct {
		name     string
		err      error
		wantCode Code
		wantMsg  string
	}{
		{"coded", inner, ErrCodeInvalidManager, "unknown manager: carthage"},
		{"fmt wrapped", fmt.Errorf("configure: %w", inner), ErrCodeInvalidManager, "unknown manager: carthage"},
		{"outer code wins", Wrap(ErrCodeInvalidConfig, inner, "managers.enabled"), ErrCodeInvalidConfig, "managers.enabled"},
		{"plain", errors.New("disk full"), "", "disk full"},
		{"nil", nil, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.wantCode {
				t.Errorf("GetCode() = %q, want %q", got, tt.wantCode)
			}
			if got := UserMessage(tt.err); got != tt.wantMsg {
				t.Errorf("UserMessage() = %q, want %q", got, tt.wantMsg)
			}
			if tt.wantCode != "" && !Is(tt.err, tt.wantCode) {
				t.Errorf("Is(%q) = false", tt.wantCode)
			}
			if Is(tt.err, ErrCodeNetwork) {
				t.Error("Is(NETWORK_ERROR) = true")
			}
		})
	}
}

func TestCodeInvalid(t *testing.T) {
	for _, c := range []Code{ErrCodeInvalidInput, ErrCodeInvalidManifest, ErrCodeInvalidManager, ErrCodeInvalidPath, ErrCodeInvalidConfig} {
		if !c.Invalid() {
			t.Errorf("%s.Invalid() = false", c)
		}
	}
	for _, c := range []Code{ErrCodeNotFound, ErrCodeFileNotFound, ErrCodeNetwork, ErrCodeInternal, ErrCodeUnsupported, ""} {
		if c.Invalid() {
			t.Errorf("%q.Invalid() = true", c)
		}
	}
}
