package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/skillpack/skillpack"
)

// skillManifest is the on-disk metadata for one skill package. Page bodies
// live in per-chunk markdown files next to it.
type skillManifest struct {
	ID              string                 `json:"id"`
	Name            string                 `json:"name"`
	Description     string                 `json:"description,omitempty"`
	RoutingKeywords []string               `json:"routingKeywords,omitempty"`
	Routes          skillpack.RoutingTable `json:"routes,omitempty"`
	Stats           skillpack.SkillStats   `json:"stats"`
	Chunks          []chunkManifest        `json:"chunks"`
}

type chunkManifest struct {
	ID        string   `json:"id"`
	Category  string   `json:"category"`
	File      string   `json:"file"`
	Size      int      `json:"size"`
	Oversized bool     `json:"oversized,omitempty"`
	Pages     []string `json:"pages"`
}

// writeSkill materializes one skill package under dir: a skill.json
// manifest plus one markdown file per chunk. Returns the package directory.
func writeSkill(dir string, skill *skillpack.Skill) (string, error) {
	pkgDir := filepath.Join(dir, skill.Name)
	chunksDir := filepath.Join(pkgDir, "chunks")
	if err := os.MkdirAll(chunksDir, 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", pkgDir, err)
	}

	manifest := skillManifest{
		ID:              skill.ID,
		Name:            skill.Name,
		Description:     skill.Description,
		RoutingKeywords: skill.RoutingKeywords,
		Routes:          skill.Routes,
		Stats:           skill.Stats,
	}

	for _, chunk := range skill.Chunks {
		file := chunk.ID + ".md"
		if err := writeChunk(filepath.Join(chunksDir, file), chunk); err != nil {
			return "", err
		}

		cm := chunkManifest{
			ID:        chunk.ID,
			Category:  chunk.Category,
			File:      filepath.Join("chunks", file),
			Size:      chunk.Size,
			Oversized: chunk.Oversized,
		}
		for _, page := range chunk.Pages {
			cm.Pages = append(cm.Pages, page.Identity)
		}
		manifest.Chunks = append(manifest.Chunks, cm)
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding manifest for %s: %w", skill.Name, err)
	}
	if err := os.WriteFile(filepath.Join(pkgDir, "skill.json"), data, 0644); err != nil {
		return "", fmt.Errorf("writing manifest for %s: %w", skill.Name, err)
	}
	return pkgDir, nil
}

// writeChunk concatenates the chunk's pages into one markdown file, each
// page preceded by an HTML comment naming its source.
func writeChunk(path string, chunk *skillpack.Chunk) error {
	var sb strings.Builder
	for i, page := range chunk.Pages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		fmt.Fprintf(&sb, "<!-- source: %s -->\n\n", page.Identity)
		sb.WriteString(page.Markdown)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
