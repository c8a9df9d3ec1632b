package domain

import (
	"sort"
	"strings"
	"time"
)

// TrustSection is one titled block of the public trust documentation.
type TrustSection struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// TrustContent is the full documentation captured by a version.
type TrustContent struct {
	Title    string         `json:"title"`
	Summary  string         `json:"summary"`
	Sections []TrustSection `json:"sections"`
}

// TrustVersion is a named, ordered snapshot of the trust documentation.
type TrustVersion struct {
	Number    int           `json:"number"`
	Name      string        `json:"name"`
	Changelog string        `json:"changelog"`
	Author    string        `json:"author"`
	Hash      string        `json:"hash"`
	CreatedAt time.Time     `json:"created_at"`
	Active    bool          `json:"active"`
	Content   *TrustContent `json:"content,omitempty"`
}

// ChangeKind describes how a section differs between two versions.
type ChangeKind string

const (
	ChangeAdded    ChangeKind = "added"
	ChangeRemoved  ChangeKind = "removed"
	ChangeModified ChangeKind = "modified"
)

// SectionChange is one entry of a version diff. Section is empty for
// document level fields (title, summary).
type SectionChange struct {
	Section string     `json:"section,omitempty"`
	Kind    ChangeKind `json:"kind"`
	Field   string     `json:"field"`
	Before  string     `json:"before"`
	After   string     `json:"after"`
}

// TrustPublish is the input of a new version.
type TrustPublish struct {
	Name      string
	Changelog string
	Content   TrustContent
	Activate  bool
}

// Validate checks that the content has a title and that section keys are
// unique and non-empty.
func (c TrustContent) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return Validation("content title is required")
	}
	seen := make(map[string]struct{}, len(c.Sections))
	for i, s := range c.Sections {
		key := strings.TrimSpace(s.Key)
		if key == "" {
			return Validation("section %d: key is required", i)
		}
		if _, ok := seen[key]; ok {
			return Validation("section %q appears more than once", key)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// DiffTrustContent lists what changed from one content to another.
// Document level fields come first, then section changes sorted by key.
func DiffTrustContent(from, to TrustContent) []SectionChange {
	changes := make([]SectionChange, 0)
	if from.Title != to.Title {
		changes = append(changes, SectionChange{Kind: ChangeModified, Field: "title", Before: from.Title, After: to.Title})
	}
	if from.Summary != to.Summary {
		changes = append(changes, SectionChange{Kind: ChangeModified, Field: "summary", Before: from.Summary, After: to.Summary})
	}

	before := make(map[string]TrustSection, len(from.Sections))
	for _, s := range from.Sections {
		before[s.Key] = s
	}
	after := make(map[string]TrustSection, len(to.Sections))
	for _, s := range to.Sections {
		after[s.Key] = s
	}

	var sections []SectionChange
	for key, old := range before {
		cur, ok := after[key]
		if !ok {
			sections = append(sections, SectionChange{Section: key, Kind: ChangeRemoved, Field: "body", Before: old.Body})
			continue
		}
		if old.Title != cur.Title {
			sections = append(sections, SectionChange{Section: key, Kind: ChangeModified, Field: "title", Before: old.Title, After: cur.Title})
		}
		if old.Body != cur.Body {
			sections = append(sections, SectionChange{Section: key, Kind: ChangeModified, Field: "body", Before: old.Body, After: cur.Body})
		}
	}
	for key, cur := range after {
		if _, ok := before[key]; !ok {
			sections = append(sections, SectionChange{Section: key, Kind: ChangeAdded, Field: "body", After: cur.Body})
		}
	}
	sort.SliceStable(sections, func(i, j int) bool {
		if sections[i].Section != sections[j].Section {
			return sections[i].Section < sections[j].Section
		}
		return sections[i].Field < sections[j].Field
	})
	return append(changes, sections...)
}
