package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mindful-ai-dude/multilingo/internal/models"
)

// prefs shows or updates the per-device preferences.
// Usage: prefs [languages|mode|haptics|audio]
func (a *App) prefs(ctx context.Context, args []string) {
	if len(args) == 0 {
		a.showPrefs(ctx)
		return
	}

	w := os.Stdout
	var patch models.PreferencesPatch

	switch args[0] {
	case "languages":
		from, err := GetLanguage(a.reader, "Default source language", w)
		if err != nil {
			return
		}
		to, err := GetLanguage(a.reader, "Default target language", w)
		if err != nil {
			return
		}
		patch.FromLanguage = &from
		patch.ToLanguage = &to

	case "mode":
		s, err := GetSimpleText(a.reader, "Preferred mode (online/offline)", w)
		if err != nil {
			return
		}
		mode, err := models.ParseMode(s)
		if err != nil {
			printlnFn(err.Error())
			return
		}
		patch.PreferredMode = &mode

	case "haptics":
		on := a.askToggle("Enable haptic feedback?")
		patch.EnableHaptics = &on

	case "audio":
		on := a.askToggle("Enable audio playback?")
		patch.EnableAudio = &on

	default:
		printlnFn("Usage: prefs [languages|mode|haptics|audio]")
		return
	}

	if err := a.store.Preferences.Update(ctx, patch); err != nil {
		printlnFn(err.Error())
		return
	}
	printlnFn("Preferences updated.")
}

func (a *App) askToggle(prompt string) bool {
	answer, err := GetSimpleText(a.reader, prompt+" (yes/no)", os.Stdout)
	if err != nil {
		return false
	}
	return answer == "yes" || answer == "y"
}

func (a *App) showPrefs(ctx context.Context) {
	p, err := a.store.Preferences.Get(ctx)
	if err != nil {
		printlnFn(err.Error())
		return
	}
	fmt.Printf("Languages: %s → %s\n", p.FromLanguage, p.ToLanguage)
	fmt.Printf("Preferred mode: %s\n", p.PreferredMode)
	fmt.Printf("Haptics: %v, audio: %v\n", p.EnableHaptics, p.EnableAudio)
	if !p.UpdatedAt.IsZero() {
		fmt.Printf("Last updated: %s\n", p.UpdatedAt.Format("2006-01-02 15:04"))
	}
}
