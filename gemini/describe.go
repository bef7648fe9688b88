package gemini

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/skillpack/skillpack"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// maxSampleTitles caps how many page titles go into the description prompt.
const maxSampleTitles = 40

// Ensure Describer implements skillpack.Describer at compile time.
var _ skillpack.Describer = (*Describer)(nil)

// Describer generates skill package descriptions using Google Gemini.
type Describer struct {
	client *genai.Client
}

// NewDescriber creates a new Describer.
func NewDescriber(client *genai.Client) *Describer {
	return &Describer{client: client}
}

// Describe produces a one-paragraph description of the skill from its
// category breakdown and a sample of page titles.
func (d *Describer) Describe(ctx context.Context, skill *skillpack.Skill) (string, error) {
	if skill == nil || skill.PageCount() == 0 {
		return "", skillpack.Errorf(skillpack.EINVALID, "skill has no content to describe")
	}

	prompt := BuildDescribePrompt(skill)
	config := BuildConfig()

	result, err := d.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", skillpack.Errorf(skillpack.EINTERNAL, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for description calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You summarize documentation bundles. Given a bundle's topic breakdown and sample page titles, write one plain paragraph (max 60 words) describing what the bundle covers. No marketing language, no lists.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildDescribePrompt builds the user prompt describing the skill's content.
func BuildDescribePrompt(skill *skillpack.Skill) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<bundle name=%q pages=\"%d\">\n", skill.Name, skill.PageCount())

	categories := make([]string, 0, len(skill.Stats.CategoryBreakdown))
	for category := range skill.Stats.CategoryBreakdown {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	sb.WriteString("<topics>\n")
	for _, category := range categories {
		fmt.Fprintf(&sb, "<topic pages=\"%d\">%s</topic>\n", skill.Stats.CategoryBreakdown[category], category)
	}
	sb.WriteString("</topics>\n")

	sb.WriteString("<titles>\n")
	n := 0
	for _, chunk := range skill.Chunks {
		for _, page := range chunk.Pages {
			if page.Title == "" {
				continue
			}
			fmt.Fprintf(&sb, "<title>%s</title>\n", page.Title)
			n++
			if n >= maxSampleTitles {
				break
			}
		}
		if n >= maxSampleTitles {
			break
		}
	}
	sb.WriteString("</titles>\n")
	sb.WriteString("</bundle>\n\nDescribe this documentation bundle.")
	return sb.String()
}
