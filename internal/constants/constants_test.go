package constants

import (
	"strings"
	"testing"
)

func TestDefaultValues(t *testing.T) {
	if DefaultLogLevel != "info" {
		t.Errorf("Expected DefaultLogLevel to be 'info', got '%s'", DefaultLogLevel)
	}

	if DefaultLogFormat != "text" {
		t.Errorf("Expected DefaultLogFormat to be 'text', got '%s'", DefaultLogFormat)
	}

	if DefaultIndexDecimals != 3 {
		t.Errorf("Expected DefaultIndexDecimals to be 3, got %d", DefaultIndexDecimals)
	}
}

func TestASCIIPunctuation(t *testing.T) {
	// Every printable ASCII character that is neither alphanumeric nor a space
	if len(ASCIIPunctuation) != 32 {
		t.Errorf("Expected 32 punctuation characters, got %d", len(ASCIIPunctuation))
	}

	for _, r := range ASCIIPunctuation {
		if r < '!' || r > '~' {
			t.Errorf("Unexpected non-printable character %q", r)
		}
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			t.Errorf("Alphanumeric character %q in punctuation set", r)
		}
	}

	if strings.ContainsRune(ASCIIPunctuation, ' ') {
		t.Error("Space must not be part of the punctuation set")
	}
}

func TestDirPermissions(t *testing.T) {
	if DirPermissions != 0755 {
		t.Errorf("Expected DirPermissions to be 0755, got %o", DirPermissions)
	}
}
