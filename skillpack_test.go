package skillpack_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/skillpack/skillpack"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode_extracts_code_from_application_errors(t *testing.T) {
	t.Parallel()

	err := skillpack.Errorf(skillpack.ECONSERVATION, "output pages %d != input pages %d", 9, 10)
	assert.Equal(t, skillpack.ECONSERVATION, skillpack.ErrorCode(err))
	assert.Equal(t, "output pages 9 != input pages 10", skillpack.ErrorMessage(err))
}

func TestErrorCode_returns_internal_for_unknown_errors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, skillpack.EINTERNAL, skillpack.ErrorCode(errors.New("boom")))
	assert.Equal(t, "", skillpack.ErrorCode(nil))
}

func TestPageRecord_Validate_requires_identity(t *testing.T) {
	t.Parallel()

	rec := &skillpack.PageRecord{Markdown: "# Hello"}
	err := rec.Validate()
	assert.Equal(t, skillpack.EINVALID, skillpack.ErrorCode(err))
}

func TestPageRecord_Validate_allows_failed_records_without_content(t *testing.T) {
	t.Parallel()

	rec := &skillpack.PageRecord{
		Identity:   "https://example.com/broken",
		Failed:     true,
		Diagnostic: "fetch: 404",
	}
	assert.NoError(t, rec.Validate())
}

func TestCodeBlock_Validate_zero_confidence_implies_unattributed(t *testing.T) {
	t.Parallel()

	block := skillpack.CodeBlock{
		Text:       "print('hi')",
		Method:     skillpack.DetectPattern,
		Language:   "python",
		Confidence: 0,
	}
	err := block.Validate()
	assert.Equal(t, skillpack.EINVALID, skillpack.ErrorCode(err))
}

func TestCodeBlock_Validate_quality_requires_language(t *testing.T) {
	t.Parallel()

	block := skillpack.CodeBlock{
		Text:    "foo bar",
		Method:  skillpack.DetectIndentation,
		Quality: 5,
	}
	err := block.Validate()
	assert.Equal(t, skillpack.EINVALID, skillpack.ErrorCode(err))
}

func TestNormalizeLabel_is_case_and_punctuation_insensitive(t *testing.T) {
	t.Parallel()

	assert.Equal(t, skillpack.NormalizeLabel("API Reference"), skillpack.NormalizeLabel("api_reference"))
	assert.Equal(t, "api-reference", skillpack.NormalizeLabel("API Reference!"))

	// Near-duplicates are deliberately not merged.
	assert.NotEqual(t, skillpack.NormalizeLabel("API Reference"), skillpack.NormalizeLabel("api-reference/v2"))
}

func TestConfig_Validate_rejects_invalid_strategy(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Strategy = "halve"
	err := cfg.Validate()
	assert.Equal(t, skillpack.EINVALID, skillpack.ErrorCode(err))
}

func TestConfig_Validate_rejects_inverted_thresholds(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.SinglePackageThreshold = 1000
	cfg.LargeCorpusThreshold = 100
	err := cfg.Validate()
	assert.Equal(t, skillpack.EINVALID, skillpack.ErrorCode(err))
}

func TestConfig_Validate_accepts_defaults(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, skillpack.DefaultSinglePackageThreshold, cfg.SinglePackageLimit())
	assert.Equal(t, skillpack.DefaultLargeCorpusThreshold, cfg.LargeCorpusLimit())
	assert.Equal(t, skillpack.DefaultMinViablePages, cfg.MinViable())
	assert.InDelta(t, skillpack.DefaultCategoryCoverage, cfg.Coverage(), 0.0001)
}

func TestURLFilter_Match_applies_exclude_after_include(t *testing.T) {
	t.Parallel()

	filter := &skillpack.URLFilter{
		Include: []*regexp.Regexp{regexp.MustCompile(`/docs/`)},
		Exclude: []*regexp.Regexp{regexp.MustCompile(`/docs/archive/`)},
	}

	assert.True(t, filter.Match("https://example.com/docs/intro"))
	assert.False(t, filter.Match("https://example.com/blog/post"))
	assert.False(t, filter.Match("https://example.com/docs/archive/old"))

	var nilFilter *skillpack.URLFilter
	assert.True(t, nilFilter.Match("https://example.com/anything"))
}

func TestRoutingTable_Covers_finds_skill_in_any_entry(t *testing.T) {
	t.Parallel()

	table := skillpack.RoutingTable{
		"auth": {"skill-a", "skill-b"},
		"api":  {"skill-a"},
	}
	assert.True(t, table.Covers("skill-b"))
	assert.False(t, table.Covers("skill-c"))
}

func validConfig() skillpack.Config {
	return skillpack.Config{
		MaxPages:              1000,
		RateLimitSeconds:      0.5,
		TargetPagesPerPackage: 5000,
		Strategy:              skillpack.SplitAuto,
		ChunkSizeBudget:       20000,
		ChunkSizeUnit:         skillpack.UnitChars,
		ParallelWorkers:       4,
	}
}

func TestPageRecord_Size_token_unit_estimates_when_no_count_stored(t *testing.T) {
	t.Parallel()

	rec := &skillpack.PageRecord{
		Identity: "https://example.com/docs/a",
		Markdown: "héllo wörld", // 11 runes
	}

	assert.Equal(t, 11, rec.Size(skillpack.UnitTokens), "missing token count falls back to rune estimate")

	rec.SetTokens(4)
	assert.Equal(t, 4, rec.Size(skillpack.UnitTokens))
}
