package studio

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"adops/internal/core/domain"
)

// RewriteRequest describes a rewrite. Tone, TemplateID and Platform are
// optional.
type RewriteRequest struct {
	Content    string
	Tone       string
	TemplateID string
	Platform   domain.Platform
}

// Rewrite normalizes whitespace, applies the tone, renders the template and
// enforces the platform character limit. The result only depends on the
// request.
func Rewrite(req RewriteRequest) (string, error) {
	content := NormalizeWhitespace(req.Content)
	if content == "" {
		return "", domain.Validation("content is required")
	}
	if err := ValidateSelection(req.Tone, req.TemplateID); err != nil {
		return "", err
	}
	if req.Tone != "" {
		tone, _ := LookupTone(req.Tone)
		content = tone.apply(content)
	}
	if req.TemplateID != "" {
		tmpl, _ := LookupTemplate(req.TemplateID)
		var buf bytes.Buffer
		if err := tmpl.tmpl.Execute(&buf, struct{ Content string }{content}); err != nil {
			return "", domain.NewError(domain.KindInternal, "render template", err)
		}
		content = buf.String()
	}
	if req.Platform != "" {
		content = Truncate(content, CharacterLimit(req.Platform))
	}
	return content, nil
}

// NormalizeWhitespace collapses runs of spaces inside lines, trims every
// line and keeps at most one blank line between paragraphs.
func NormalizeWhitespace(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			if len(out) > 0 {
				blank = true
			}
			continue
		}
		if blank {
			out = append(out, "")
			blank = false
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// Truncate cuts s to at most limit runes, ending with an ellipsis when
// something was removed.
func Truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:limit-1])) + "…"
}
