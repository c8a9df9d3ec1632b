package studio

import (
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"adops/internal/core/domain"
)

// MessageState is the lifecycle of the approved-message panel.
type MessageState string

const (
	MessageNone     MessageState = "none"
	MessageApproved MessageState = "approved"
	MessageCleared  MessageState = "cleared"
)

// OnboardingFlags lists the hints shown once per user.
var OnboardingFlags = []string{"studio_intro", "tone_picker", "template_picker", "approved_panel"}

// Preferences is the per-user studio state. Onboarding maps a flag to
// whether it has been seen.
type Preferences struct {
	MessageState    MessageState    `json:"message_state"`
	ApprovedMessage string          `json:"approved_message,omitempty"`
	ApprovedAt      *time.Time      `json:"approved_at,omitempty"`
	Onboarding      map[string]bool `json:"onboarding"`
}

// DefaultPreferences is the state of a user who never opened the studio.
func DefaultPreferences() Preferences {
	p := Preferences{MessageState: MessageNone, Onboarding: make(map[string]bool, len(OnboardingFlags))}
	for _, f := range OnboardingFlags {
		p.Onboarding[f] = false
	}
	return p
}

// Normalize fills in missing fields of a stored state.
func (p Preferences) Normalize() Preferences {
	if p.MessageState == "" {
		p.MessageState = MessageNone
	}
	flags := make(map[string]bool, len(OnboardingFlags))
	for _, f := range OnboardingFlags {
		flags[f] = p.Onboarding[f]
	}
	p.Onboarding = flags
	return p
}

// Approve stores message as the approved message. Approving while a
// message is already approved replaces it.
func (p Preferences) Approve(message string, now time.Time) (Preferences, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return p, domain.Validation("message is required")
	}
	if utf8.RuneCountInString(message) > domain.MaxPostLength {
		return p, domain.Validation("message must be at most %d characters", domain.MaxPostLength)
	}
	p = p.Normalize()
	p.MessageState = MessageApproved
	p.ApprovedMessage = message
	at := now.UTC()
	p.ApprovedAt = &at
	return p, nil
}

// Clear removes the approved message. Only an approved message can be
// cleared.
func (p Preferences) Clear() (Preferences, error) {
	p = p.Normalize()
	if p.MessageState != MessageApproved {
		return p, domain.ErrInvalidTransition.WithDetail("from", string(p.MessageState))
	}
	p.MessageState = MessageCleared
	p.ApprovedMessage = ""
	p.ApprovedAt = nil
	return p, nil
}

// MarkSeen flags an onboarding hint as seen. Marking twice is a no-op.
func (p Preferences) MarkSeen(flag string) (Preferences, error) {
	if !slices.Contains(OnboardingFlags, flag) {
		return p, domain.Validation("unknown onboarding flag %q", flag)
	}
	p = p.Normalize()
	p.Onboarding[flag] = true
	return p, nil
}
