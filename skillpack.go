// Package skillpack turns heterogeneous documentation sources (crawled HTML
// sites, PDF manuals) into structured, size-bounded knowledge packages
// ("skills") consumable by an AI assistant. It covers the discovery,
// classification and splitting pipeline: frontier management, content
// extraction, code-block and language detection, chunking, corpus splitting
// and router synthesis.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, gemini/) or
// concern (crawl/, codescan/, classify/, split/).
package skillpack
