package skillpack

import "context"

// SplitStrategy selects how a corpus is partitioned into skills.
type SplitStrategy string

// Splitting strategies. Auto resolves to one of the concrete strategies as a
// pure function of corpus statistics.
const (
	SplitAuto     SplitStrategy = "auto"
	SplitNone     SplitStrategy = "none"
	SplitCategory SplitStrategy = "category"
	SplitSize     SplitStrategy = "size"
	SplitRouter   SplitStrategy = "router"
)

// Valid reports whether s is a recognized strategy.
func (s SplitStrategy) Valid() bool {
	switch s {
	case SplitAuto, SplitNone, SplitCategory, SplitSize, SplitRouter:
		return true
	}
	return false
}

// Skill is the terminal artifact: a named, self-contained bundle of chunks
// plus metadata, handed off in memory to a packaging component.
type Skill struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	Chunks []*Chunk `json:"chunks"`

	// RoutingKeywords is present only for sub-packages produced under the
	// router strategy.
	RoutingKeywords []string `json:"routingKeywords,omitempty"`

	// Routes is present only on the router package stub, which carries no
	// content chunks and exists purely to host the routing table.
	Routes RoutingTable `json:"routes,omitempty"`

	Stats SkillStats `json:"stats"`
}

// PageCount returns the number of pages across the skill's chunks.
func (s *Skill) PageCount() int {
	n := 0
	for _, c := range s.Chunks {
		n += c.PageCount()
	}
	return n
}

// SkillStats aggregates corpus statistics for a skill.
type SkillStats struct {
	PageCount int `json:"pageCount"`

	// Pages per category label.
	CategoryBreakdown map[string]int `json:"categoryBreakdown,omitempty"`

	// Pages per detected natural language.
	LanguageBreakdown map[string]int `json:"languageBreakdown,omitempty"`
}

// Describer produces a short human-readable description of a skill from its
// content, for package manifests. Best effort: a skill without a description
// is still valid.
type Describer interface {
	Describe(ctx context.Context, skill *Skill) (string, error)
}

// RoutingTable maps keywords to the skills a query should be dispatched to.
// A keyword may map to more than one skill when ambiguous; the consuming
// router ranks or asks for disambiguation at query time. Every sub-package is
// covered by at least one keyword.
type RoutingTable map[string][]string

// Covers reports whether the skill ID appears in at least one entry.
func (t RoutingTable) Covers(skillID string) bool {
	for _, ids := range t {
		for _, id := range ids {
			if id == skillID {
				return true
			}
		}
	}
	return false
}

// SplitPlan describes a partition without materializing it, for preview
// before committing disk or network work.
type SplitPlan struct {
	Strategy SplitStrategy  `json:"strategy"`
	Packages []PlannedSkill `json:"packages"`

	// RouterKeywords is populated only when Strategy is SplitRouter.
	RouterKeywords RoutingTable `json:"routerKeywords,omitempty"`
}

// TotalPages returns the page count across all planned packages.
func (p *SplitPlan) TotalPages() int {
	n := 0
	for _, pkg := range p.Packages {
		n += pkg.PageCount
	}
	return n
}

// PlannedSkill describes one package boundary within a split plan.
type PlannedSkill struct {
	Name       string   `json:"name"`
	Categories []string `json:"categories,omitempty"`
	PageCount  int      `json:"pageCount"`
	ChunkCount int      `json:"chunkCount"`
}

// RunReport aggregates per-stage outcomes of a completed run. Per-page
// failures are collected here rather than raised individually.
type RunReport struct {
	Discovered int `json:"discovered"`
	Extracted  int `json:"extracted"`
	Skipped    int `json:"skipped"`
	Failed     int `json:"failed"`

	// Failures records each per-page failure with its diagnostic.
	Failures []PageFailure `json:"failures,omitempty"`
}

// PageFailure records one per-page soft failure.
type PageFailure struct {
	Identity string `json:"identity"`
	Stage    string `json:"stage"` // "fetch", "decode", "extract"
	Reason   string `json:"reason"`
}
