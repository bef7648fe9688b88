package skillpack

// Default thresholds for the auto splitting decision.
const (
	// DefaultSinglePackageThreshold is the page count at or below which the
	// whole corpus becomes one package.
	DefaultSinglePackageThreshold = 500

	// DefaultLargeCorpusThreshold is the page count above which a router
	// package is always synthesized on top of the specialized packages.
	DefaultLargeCorpusThreshold = 20000

	// DefaultMinViablePages is the smallest category that can stand as its
	// own package under the category strategy.
	DefaultMinViablePages = 50

	// DefaultCategoryCoverage is the fraction of pages that must fall into
	// well-formed categories for the category strategy to apply.
	DefaultCategoryCoverage = 0.8
)

// Config is the language-agnostic configuration surface for one run.
// Invalid combinations are fatal at startup and never silently defaulted.
type Config struct {
	MaxPages              int           `json:"maxPages"`
	RateLimitSeconds      float64       `json:"rateLimitSeconds"`
	TargetPagesPerPackage int           `json:"targetPagesPerPackage"`
	Strategy              SplitStrategy `json:"splitStrategy"`
	ChunkSizeBudget       int           `json:"chunkSizeBudget"`
	ChunkSizeUnit         SizeUnit      `json:"chunkSizeUnit"`
	UseOCR                bool          `json:"useOcr"`
	PDFPassword           string        `json:"pdfPassword,omitempty"`
	ExtractTables         bool          `json:"extractTables"`
	ParallelWorkers       int           `json:"parallelWorkers"`

	// Splitting thresholds; zero values take the package defaults.
	SinglePackageThreshold int     `json:"singlePackageThreshold,omitempty"`
	LargeCorpusThreshold   int     `json:"largeCorpusThreshold,omitempty"`
	MinViablePages         int     `json:"minViablePages,omitempty"`
	CategoryCoverage       float64 `json:"categoryCoverage,omitempty"`
}

// Validate returns an EINVALID error for any unusable configuration.
func (c *Config) Validate() error {
	if c.MaxPages <= 0 {
		return Errorf(EINVALID, "max pages must be positive")
	}
	if c.RateLimitSeconds < 0 {
		return Errorf(EINVALID, "rate limit must be non-negative")
	}
	if c.TargetPagesPerPackage <= 0 {
		return Errorf(EINVALID, "target pages per package must be positive")
	}
	if !c.Strategy.Valid() {
		return Errorf(EINVALID, "unknown split strategy %q", c.Strategy)
	}
	if c.ChunkSizeBudget <= 0 {
		return Errorf(EINVALID, "chunk size budget must be positive")
	}
	switch c.ChunkSizeUnit {
	case UnitChars, UnitBytes, UnitTokens:
	default:
		return Errorf(EINVALID, "unknown chunk size unit %q", c.ChunkSizeUnit)
	}
	if c.ParallelWorkers < 0 {
		return Errorf(EINVALID, "parallel workers must be non-negative")
	}
	if c.CategoryCoverage < 0 || c.CategoryCoverage > 1 {
		return Errorf(EINVALID, "category coverage must be within [0, 1]")
	}
	if c.SinglePackageThreshold > 0 && c.LargeCorpusThreshold > 0 &&
		c.LargeCorpusThreshold < c.SinglePackageThreshold {
		return Errorf(EINVALID, "large corpus threshold below single package threshold")
	}
	return nil
}

// SinglePackageLimit returns the configured or default single-package threshold.
func (c *Config) SinglePackageLimit() int {
	if c.SinglePackageThreshold > 0 {
		return c.SinglePackageThreshold
	}
	return DefaultSinglePackageThreshold
}

// LargeCorpusLimit returns the configured or default large-corpus threshold.
func (c *Config) LargeCorpusLimit() int {
	if c.LargeCorpusThreshold > 0 {
		return c.LargeCorpusThreshold
	}
	return DefaultLargeCorpusThreshold
}

// MinViable returns the configured or default minimum viable category size.
func (c *Config) MinViable() int {
	if c.MinViablePages > 0 {
		return c.MinViablePages
	}
	return DefaultMinViablePages
}

// Coverage returns the configured or default category coverage fraction.
func (c *Config) Coverage() float64 {
	if c.CategoryCoverage > 0 {
		return c.CategoryCoverage
	}
	return DefaultCategoryCoverage
}
