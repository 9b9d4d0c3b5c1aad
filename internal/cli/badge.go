package cli

import (
	"github.com/fatih/color"

	"github.com/mindful-ai-dude/multilingo/internal/models"
	"github.com/mindful-ai-dude/multilingo/internal/services"
)

var (
	badgeCommunity = color.New(color.FgGreen, color.Bold).SprintFunc()
	badgeOracle    = color.New(color.FgCyan).SprintFunc()
	badgeCached    = color.New(color.FgYellow).SprintFunc()
	badgeOffline   = color.New(color.FgMagenta).SprintFunc()

	bandCritical = color.New(color.FgRed, color.Bold).SprintFunc()
	bandHigh     = color.New(color.FgRed).SprintFunc()
	bandMedium   = color.New(color.FgYellow).SprintFunc()
	bandLow      = color.New(color.FgWhite).SprintFunc()
)

// methodBadge renders a colored provenance tag for a translation method.
func methodBadge(m models.Method) string {
	switch m {
	case models.MethodCommunity:
		return badgeCommunity("[community]")
	case models.MethodGemini:
		return badgeOracle("[gemini]")
	case models.MethodCached:
		return badgeCached("[cached]")
	case models.MethodUser:
		return badgeCommunity("[user]")
	default:
		return badgeOffline("[offline]")
	}
}

// urgencyBadge renders the urgency band of a broadcast.
func urgencyBadge(level int) string {
	band := services.UrgencyBand(level)
	switch band {
	case "critical":
		return bandCritical("[" + band + "]")
	case "high":
		return bandHigh("[" + band + "]")
	case "medium":
		return bandMedium("[" + band + "]")
	default:
		return bandLow("[" + band + "]")
	}
}
