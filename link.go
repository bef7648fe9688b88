package skillpack

// LinkPriority represents where on a page a link was found (higher = more
// likely to be documentation content).
type LinkPriority int

// Link priority levels.
const (
	PriorityIgnore     LinkPriority = 0
	PriorityFallback   LinkPriority = 10
	PriorityFooter     LinkPriority = 20
	PriorityContent    LinkPriority = 50
	PriorityNavigation LinkPriority = 100
	PriorityTOC        LinkPriority = 110
)

// DiscoveredLink represents a URL found during extraction, with provenance
// metadata. Depth is the source page's depth plus one; the frontier orders
// by it.
type DiscoveredLink struct {
	URL      string
	Priority LinkPriority
	Text     string
	Source   string // "nav", "sidebar", "content", "footer"
	Depth    int
}

// LinkSelector extracts prioritized links from HTML.
type LinkSelector interface {
	// ExtractLinks parses HTML and returns discovered links.
	// The baseURL is used to resolve relative URLs; links pointing off the
	// base host are filtered out.
	ExtractLinks(html string, baseURL string) ([]DiscoveredLink, error)
}
