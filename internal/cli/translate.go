package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mindful-ai-dude/multilingo/internal/models"
	"github.com/mindful-ai-dude/multilingo/internal/services"
)

func (a *App) translate(ctx context.Context) {
	w := os.Stdout

	text, err := GetSimpleText(a.reader, "Text to translate", w)
	if err != nil || text == "" {
		return
	}

	prefs, err := a.store.Preferences.Get(ctx)
	if err != nil {
		printlnFn(err.Error())
		return
	}

	from, err := GetLanguage(a.reader, fmt.Sprintf("From [%s]", prefs.FromLanguage), w)
	if err != nil {
		return
	}
	to, err := GetLanguage(a.reader, fmt.Sprintf("To [%s]", prefs.ToLanguage), w)
	if err != nil {
		return
	}

	tctxText, err := GetSimpleText(a.reader, "Context (emergency/government/general/cultural) [general]", w)
	if err != nil {
		return
	}

	res, err := a.translator.Resolve(ctx, services.TranslateRequest{
		SourceText: text,
		From:       from,
		To:         to,
		Context:    models.ParseContext(tctxText),
		UserID:     a.deviceID,
	})
	if err != nil {
		printlnFn(err.Error())
		return
	}

	fmt.Printf("%s %s (confidence %.2f)\n", methodBadge(res.Method), res.TranslatedText, res.Confidence)

	// remember the pair for next time
	patch := models.PreferencesPatch{FromLanguage: &from, ToLanguage: &to}
	if err := a.store.Preferences.Update(ctx, patch); err != nil {
		a.log.Warn(ctx, "failed to store language pair", "error", err)
	}
}
