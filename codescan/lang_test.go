package codescan_test

import (
	"testing"

	"github.com/skillpack/skillpack/codescan"
	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage_identifies_go(t *testing.T) {
	t.Parallel()

	lang, conf := codescan.DetectLanguage(goSnippet)
	assert.Equal(t, "go", lang)
	assert.Greater(t, conf, 0.3)
}

func TestDetectLanguage_identifies_python(t *testing.T) {
	t.Parallel()

	code := `def fetch(name):
    if name is None:
        return None
    print(name)
    return name`

	lang, conf := codescan.DetectLanguage(code)
	assert.Equal(t, "python", lang)
	assert.Greater(t, conf, 0.3)
}

func TestDetectLanguage_identifies_sql(t *testing.T) {
	t.Parallel()

	code := `SELECT id, name FROM users WHERE active = 1 GROUP BY name;
INSERT INTO audit (user_id) SELECT id FROM users;`

	lang, _ := codescan.DetectLanguage(code)
	assert.Equal(t, "sql", lang)
}

func TestDetectLanguage_identifies_shell(t *testing.T) {
	t.Parallel()

	code := `#!/bin/bash
export PATH=$PATH:/usr/local/bin
curl -s https://example.com | grep version && echo done`

	lang, _ := codescan.DetectLanguage(code)
	assert.Equal(t, "shell", lang)
}

func TestDetectLanguage_no_evidence_returns_zero_confidence(t *testing.T) {
	t.Parallel()

	lang, conf := codescan.DetectLanguage("xyzzy plugh qwerty frotz")
	assert.Empty(t, lang)
	assert.Zero(t, conf)
}

func TestDetectLanguage_is_deterministic(t *testing.T) {
	t.Parallel()

	langA, confA := codescan.DetectLanguage(goSnippet)
	langB, confB := codescan.DetectLanguage(goSnippet)
	assert.Equal(t, langA, langB)
	assert.Equal(t, confA, confB)
}
