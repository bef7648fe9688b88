package split

import (
	"fmt"

	"github.com/skillpack/skillpack"
)

// Splitter partitions a chunked corpus into skill packages. Strategy
// selection is a one-shot pure function of corpus statistics, not a stateful
// machine across pages.
type Splitter struct {
	// BaseName prefixes every produced package name.
	BaseName string

	Target    int
	Single    int
	Large     int
	MinViable int
	Coverage  float64
}

// NewSplitter creates a Splitter for the configuration.
func NewSplitter(cfg skillpack.Config, baseName string) *Splitter {
	return &Splitter{
		BaseName:  baseName,
		Target:    cfg.TargetPagesPerPackage,
		Single:    cfg.SinglePackageLimit(),
		Large:     cfg.LargeCorpusLimit(),
		MinViable: cfg.MinViable(),
		Coverage:  cfg.Coverage(),
	}
}

// group is one planned package boundary, shared between Split and Plan so a
// dry run previews exactly the partition a real run materializes.
type group struct {
	name       string
	categories []string
	chunks     []*skillpack.Chunk
}

// Resolve maps the auto strategy to a concrete one based on corpus
// statistics. Concrete strategies pass through unchanged.
func (s *Splitter) Resolve(chunks []*skillpack.Chunk, strategy skillpack.SplitStrategy) skillpack.SplitStrategy {
	if strategy != skillpack.SplitAuto {
		return strategy
	}
	total := totalPages(chunks)
	switch {
	case total <= s.Single:
		return skillpack.SplitNone
	case total > s.Large:
		return skillpack.SplitRouter
	case s.wellFormed(chunks):
		return skillpack.SplitCategory
	default:
		return skillpack.SplitSize
	}
}

// Split partitions chunks into skills under the strategy (auto resolves
// first). Under the router strategy the returned slice additionally contains
// a chunk-free router stub hosting the routing table.
//
// Conservation is enforced by construction and verified before returning:
// the multiset of page identities across outputs equals the input exactly.
func (s *Splitter) Split(chunks []*skillpack.Chunk, strategy skillpack.SplitStrategy) ([]*skillpack.Skill, skillpack.RoutingTable, error) {
	strategy = s.Resolve(chunks, strategy)
	groups, err := s.partition(chunks, strategy)
	if err != nil {
		return nil, nil, err
	}

	skills := make([]*skillpack.Skill, 0, len(groups)+1)
	for _, g := range groups {
		skills = append(skills, buildSkill(g))
	}

	var table skillpack.RoutingTable
	if strategy == skillpack.SplitRouter {
		var stub *skillpack.Skill
		table, stub = Synthesize(skills, s.BaseName)
		skills = append(skills, stub)
	}

	if err := verifyConservation(chunks, skills); err != nil {
		return nil, nil, err
	}
	return skills, table, nil
}

// Plan produces the partition boundaries without materializing packages,
// for preview before committing disk or network work.
func (s *Splitter) Plan(chunks []*skillpack.Chunk, strategy skillpack.SplitStrategy) (*skillpack.SplitPlan, error) {
	strategy = s.Resolve(chunks, strategy)
	groups, err := s.partition(chunks, strategy)
	if err != nil {
		return nil, err
	}

	plan := &skillpack.SplitPlan{Strategy: strategy}
	for _, g := range groups {
		plan.Packages = append(plan.Packages, skillpack.PlannedSkill{
			Name:       g.name,
			Categories: g.categories,
			PageCount:  totalPages(g.chunks),
			ChunkCount: len(g.chunks),
		})
	}

	if strategy == skillpack.SplitRouter {
		skills := make([]*skillpack.Skill, 0, len(groups))
		for _, g := range groups {
			skills = append(skills, buildSkill(g))
		}
		table, _ := Synthesize(skills, s.BaseName)
		plan.RouterKeywords = table
	}
	return plan, nil
}

// partition dispatches to one handler per strategy variant.
func (s *Splitter) partition(chunks []*skillpack.Chunk, strategy skillpack.SplitStrategy) ([]group, error) {
	switch strategy {
	case skillpack.SplitNone:
		return s.partitionNone(chunks), nil
	case skillpack.SplitCategory:
		return s.partitionCategory(chunks), nil
	case skillpack.SplitSize:
		return s.partitionSize(chunks), nil
	case skillpack.SplitRouter:
		if s.wellFormed(chunks) {
			return s.partitionCategory(chunks), nil
		}
		return s.partitionSize(chunks), nil
	default:
		return nil, skillpack.Errorf(skillpack.EINVALID, "unknown split strategy %q", strategy)
	}
}

// partitionNone keeps the whole corpus in one package.
func (s *Splitter) partitionNone(chunks []*skillpack.Chunk) []group {
	return []group{{
		name:       s.BaseName,
		categories: categoriesOf(chunks),
		chunks:     chunks,
	}}
}

// partitionCategory builds one package per category in first-appearance
// order. A category exceeding the target is further subdivided by size,
// except the uncategorized fallback, which is never split.
func (s *Splitter) partitionCategory(chunks []*skillpack.Chunk) []group {
	var order []string
	byCategory := map[string][]*skillpack.Chunk{}
	for _, c := range chunks {
		if _, ok := byCategory[c.Category]; !ok {
			order = append(order, c.Category)
		}
		byCategory[c.Category] = append(byCategory[c.Category], c)
	}

	var groups []group
	for _, category := range order {
		catChunks := byCategory[category]
		name := fmt.Sprintf("%s-%s", s.BaseName, category)
		if category != skillpack.Uncategorized && totalPages(catChunks) > s.Target {
			groups = append(groups, s.sizeGroups(catChunks, name)...)
			continue
		}
		groups = append(groups, group{
			name:       name,
			categories: []string{category},
			chunks:     catChunks,
		})
	}
	return groups
}

// partitionSize partitions strictly by running page count, page order
// preserved, without regard to semantic boundaries.
func (s *Splitter) partitionSize(chunks []*skillpack.Chunk) []group {
	return s.sizeGroups(chunks, s.BaseName)
}

// sizeGroups cuts a chunk sequence into packages of at most Target pages.
// A package may exceed the target only through a single chunk larger than
// the target on its own (maximum overshoot: one chunk).
func (s *Splitter) sizeGroups(chunks []*skillpack.Chunk, prefix string) []group {
	var groups []group
	var current group
	pages := 0

	flush := func() {
		if len(current.chunks) > 0 {
			current.name = fmt.Sprintf("%s-part-%02d", prefix, len(groups)+1)
			current.categories = categoriesOf(current.chunks)
			groups = append(groups, current)
		}
		current = group{}
		pages = 0
	}

	for _, c := range chunks {
		if pages > 0 && pages+c.PageCount() > s.Target {
			flush()
		}
		current.chunks = append(current.chunks, c)
		pages += c.PageCount()
	}
	flush()

	if len(groups) == 1 {
		// No cut happened; keep the plain prefix as the package name.
		groups[0].name = prefix
	}
	return groups
}

// wellFormed reports whether the category distribution can drive a
// category split: more than one real category, every real category at least
// MinViable pages, and real categories jointly covering at least the
// configured fraction of pages.
func (s *Splitter) wellFormed(chunks []*skillpack.Chunk) bool {
	pagesByCategory := map[string]int{}
	total := 0
	for _, c := range chunks {
		pagesByCategory[c.Category] += c.PageCount()
		total += c.PageCount()
	}
	if total == 0 {
		return false
	}

	covered := 0
	realCategories := 0
	for category, pages := range pagesByCategory {
		if category == skillpack.Uncategorized {
			continue
		}
		realCategories++
		if pages < s.MinViable {
			return false
		}
		covered += pages
	}
	if realCategories < 2 {
		return false
	}
	return float64(covered)/float64(total) >= s.Coverage
}

// buildSkill materializes one group with aggregate stats.
func buildSkill(g group) *skillpack.Skill {
	stats := skillpack.SkillStats{
		CategoryBreakdown: map[string]int{},
		LanguageBreakdown: map[string]int{},
	}
	for _, c := range g.chunks {
		stats.PageCount += c.PageCount()
		stats.CategoryBreakdown[c.Category] += c.PageCount()
		for _, p := range c.Pages {
			if p.Language != "" {
				stats.LanguageBreakdown[p.Language]++
			}
		}
	}
	if len(stats.LanguageBreakdown) == 0 {
		stats.LanguageBreakdown = nil
	}
	return &skillpack.Skill{
		ID:     skillpack.NormalizeLabel(g.name),
		Name:   g.name,
		Chunks: g.chunks,
		Stats:  stats,
	}
}

// verifyConservation checks that the multiset of page identities across all
// output skills equals the input. A mismatch is always a defect and raises
// loudly; it is never silently corrected.
func verifyConservation(input []*skillpack.Chunk, skills []*skillpack.Skill) error {
	want := map[string]int{}
	inputPages := 0
	for _, c := range input {
		for _, p := range c.Pages {
			want[p.Identity]++
			inputPages++
		}
	}

	got := map[string]int{}
	outputPages := 0
	for _, s := range skills {
		for _, c := range s.Chunks {
			for _, p := range c.Pages {
				got[p.Identity]++
				outputPages++
			}
		}
	}

	if outputPages != inputPages {
		return skillpack.Errorf(skillpack.ECONSERVATION, "output pages %d != input pages %d", outputPages, inputPages)
	}
	for identity, n := range want {
		if got[identity] != n {
			return skillpack.Errorf(skillpack.ECONSERVATION, "page %q appears %d times in output, want %d", identity, got[identity], n)
		}
	}
	return nil
}

func totalPages(chunks []*skillpack.Chunk) int {
	n := 0
	for _, c := range chunks {
		n += c.PageCount()
	}
	return n
}

func categoriesOf(chunks []*skillpack.Chunk) []string {
	var order []string
	seen := map[string]bool{}
	for _, c := range chunks {
		if !seen[c.Category] {
			seen[c.Category] = true
			order = append(order, c.Category)
		}
	}
	return order
}
