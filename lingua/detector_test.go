package lingua_test

import (
	"testing"

	"github.com/skillpack/skillpack/lingua"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetector_DetectLanguage_identifies_english(t *testing.T) {
	t.Parallel()

	d := lingua.NewDocDetector()
	lang, ok := d.DetectLanguage("This guide explains how to configure the service and deploy it to production environments.")

	require.True(t, ok)
	assert.Equal(t, "en", lang)
}

func TestDetector_DetectLanguage_identifies_german(t *testing.T) {
	t.Parallel()

	d := lingua.NewDocDetector()
	lang, ok := d.DetectLanguage("Diese Anleitung beschreibt die Installation und Konfiguration des Dienstes auf einem neuen Server.")

	require.True(t, ok)
	assert.Equal(t, "de", lang)
}

func TestDetector_DetectLanguage_rejects_short_text(t *testing.T) {
	t.Parallel()

	d := lingua.NewDocDetector()
	_, ok := d.DetectLanguage("ok")

	assert.False(t, ok)
}
