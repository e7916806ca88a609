package i18n

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatchLanguage(t *testing.T) {
	tests := []struct {
		accept   string
		expected language.Tag
	}{
		{"en-US,en;q=0.9", language.English},
		{"fr-FR", language.English}, // unsupported falls back
		{"", language.English},
	}

	for _, tt := range tests {
		got := MatchLanguage(tt.accept)
		assert.Equal(t, tt.expected, got, "accept=%q", tt.accept)
	}
}

func TestNewCLIPrinter(t *testing.T) {
	oldLCAll := os.Getenv("LC_ALL")
	oldLang := os.Getenv("LANG")
	defer func() {
		os.Setenv("LC_ALL", oldLCAll)
		os.Setenv("LANG", oldLang)
	}()

	os.Setenv("LC_ALL", "en_US.UTF-8")
	p := NewCLIPrinter()
	assert.NotNil(t, p)

	os.Setenv("LC_ALL", "")
	os.Setenv("LANG", "")
	p = NewCLIPrinter()
	assert.NotNil(t, p)

	os.Setenv("LC_ALL", "not a locale")
	p = NewCLIPrinter()
	assert.NotNil(t, p)
}
