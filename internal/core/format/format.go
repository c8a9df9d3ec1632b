// Package format derives the display fields shown next to dashboard rows:
// money amounts, dates and status/platform badges.
package format

import (
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"adops/internal/core/domain"
)

const dateLayout = "Jan 2, 2006"

var printer = message.NewPrinter(language.English)

// Currency renders an amount stored in cents with its currency symbol.
// Unknown currency codes fall back to "<amount> <CODE>".
func Currency(cents int64, code string) string {
	amount := float64(cents) / 100
	code = strings.ToUpper(strings.TrimSpace(code))
	unit, err := currency.ParseISO(code)
	if err != nil {
		return printer.Sprintf("%.2f %s", amount, code)
	}
	return printer.Sprint(currency.Symbol(unit.Amount(amount)))
}

// Date renders a calendar date, or an empty string when t is nil.
func Date(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// BadgeTone is the colour family a badge is rendered with.
type BadgeTone string

const (
	ToneSuccess BadgeTone = "success"
	ToneWarning BadgeTone = "warning"
	ToneInfo    BadgeTone = "info"
	ToneNeutral BadgeTone = "neutral"
)

// Badge is a short label rendered next to a row.
type Badge struct {
	Label string    `json:"label"`
	Tone  BadgeTone `json:"tone,omitempty"`
}

// StatusBadge maps a campaign or ad-set status to a badge. Unknown values
// keep their raw label.
func StatusBadge(status domain.CampaignStatus) Badge {
	switch status {
	case domain.StatusActive:
		return Badge{Label: "Active", Tone: ToneSuccess}
	case domain.StatusPaused:
		return Badge{Label: "Paused", Tone: ToneWarning}
	case domain.StatusCompleted:
		return Badge{Label: "Completed", Tone: ToneInfo}
	case domain.StatusArchived:
		return Badge{Label: "Archived", Tone: ToneNeutral}
	default:
		return Badge{Label: string(status), Tone: ToneNeutral}
	}
}

// PlatformBadge maps a platform to its display name.
func PlatformBadge(platform domain.Platform) Badge {
	switch platform {
	case domain.PlatformMeta:
		return Badge{Label: "Meta"}
	case domain.PlatformGoogle:
		return Badge{Label: "Google"}
	case domain.PlatformTikTok:
		return Badge{Label: "TikTok"}
	case domain.PlatformLinkedIn:
		return Badge{Label: "LinkedIn"}
	default:
		return Badge{Label: string(platform)}
	}
}
