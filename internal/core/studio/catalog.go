// Package studio holds the tone and template catalog used to draft social
// posts, the deterministic rewrite applied when a tone or template is picked,
// and the per-user studio preferences.
package studio

import (
	"strings"
	"text/template"

	"adops/internal/core/domain"
)

// Tone is a voice a post can be rewritten in.
type Tone struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`

	apply func(string) string
}

// Template frames post content for a purpose.
type Template struct {
	ID        string            `json:"id"`
	Label     string            `json:"label"`
	Platforms []domain.Platform `json:"platforms"`
	Body      string            `json:"body"`

	tmpl *template.Template
}

var tones = []Tone{
	{ID: "professional", Label: "Professional", Description: "Measured and precise, no exclamation marks.", apply: professional},
	{ID: "casual", Label: "Casual", Description: "Relaxed, uses contractions.", apply: casual},
	{ID: "friendly", Label: "Friendly", Description: "Warm greeting and a smile.", apply: friendly},
	{ID: "bold", Label: "Bold", Description: "Confident and punchy.", apply: bold},
	{ID: "witty", Label: "Witty", Description: "Light-hearted with a twist.", apply: witty},
}

var templates = []Template{
	newTemplate("announcement", "Announcement", "📣 Big news: {{.Content}}", domain.Platforms...),
	newTemplate("promo", "Promotion", "{{.Content}}\n\n👉 Shop now, limited time only.",
		domain.PlatformMeta, domain.PlatformTikTok, domain.PlatformGoogle),
	newTemplate("tip", "Quick tip", "💡 Tip: {{.Content}}", domain.Platforms...),
	newTemplate("question", "Question", "{{.Content}}\n\nWhat do you think? Tell us in the comments.",
		domain.PlatformMeta, domain.PlatformLinkedIn, domain.PlatformTikTok),
	newTemplate("testimonial", "Testimonial", "“{{.Content}}”\n\n⭐⭐⭐⭐⭐",
		domain.PlatformMeta, domain.PlatformLinkedIn, domain.PlatformGoogle),
}

func newTemplate(id, label, body string, platforms ...domain.Platform) Template {
	return Template{
		ID:        id,
		Label:     label,
		Platforms: platforms,
		Body:      body,
		tmpl:      template.Must(template.New(id).Option("missingkey=error").Parse(body)),
	}
}

// Tones returns the tone catalog in display order.
func Tones() []Tone {
	out := make([]Tone, len(tones))
	copy(out, tones)
	return out
}

// Templates returns the template catalog in display order.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// LookupTone finds a tone by id.
func LookupTone(id string) (Tone, bool) {
	for _, t := range tones {
		if t.ID == id {
			return t, true
		}
	}
	return Tone{}, false
}

// LookupTemplate finds a template by id.
func LookupTemplate(id string) (Template, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// ValidateSelection checks that the given tone and template ids, when set,
// exist in the catalog.
func ValidateSelection(tone, templateID string) error {
	if tone != "" {
		if _, ok := LookupTone(tone); !ok {
			return domain.Validation("unknown tone %q", tone)
		}
	}
	if templateID != "" {
		if _, ok := LookupTemplate(templateID); !ok {
			return domain.Validation("unknown template %q", templateID)
		}
	}
	return nil
}

// CharacterLimit is the longest post accepted by a platform.
func CharacterLimit(p domain.Platform) int {
	switch p {
	case domain.PlatformMeta, domain.PlatformTikTok:
		return 2200
	case domain.PlatformGoogle:
		return 1500
	case domain.PlatformLinkedIn:
		return 3000
	default:
		return domain.MaxPostLength
	}
}

func professional(s string) string {
	s = strings.ReplaceAll(s, "!", ".")
	for strings.Contains(s, "..") {
		s = strings.ReplaceAll(s, "..", ".")
	}
	return endWith(s, ".")
}

var contractions = strings.NewReplacer(
	"do not", "don't",
	"Do not", "Don't",
	"cannot", "can't",
	"Cannot", "Can't",
	"it is", "it's",
	"It is", "It's",
	"we are", "we're",
	"We are", "We're",
	"you are", "you're",
	"You are", "You're",
	"will not", "won't",
)

func casual(s string) string {
	return contractions.Replace(s)
}

func friendly(s string) string {
	lower := strings.ToLower(s)
	if !strings.HasPrefix(lower, "hi") && !strings.HasPrefix(lower, "hey") && !strings.HasPrefix(lower, "hello") {
		s = "Hey there! " + s
	}
	return s + " 🙂"
}

func bold(s string) string {
	s = strings.TrimRight(s, ".")
	return endWith(s, "!")
}

func witty(s string) string {
	return "Plot twist: " + s
}

func endWith(s, suffix string) string {
	if s == "" || strings.HasSuffix(s, suffix) || strings.HasSuffix(s, "?") {
		return s
	}
	return s + suffix
}
