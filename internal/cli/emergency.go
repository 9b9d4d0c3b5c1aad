package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mindful-ai-dude/multilingo/internal/remote"
	"github.com/mindful-ai-dude/multilingo/internal/services"
)

func (a *App) broadcast(ctx context.Context) {
	w := os.Stdout

	message, err := GetSimpleText(a.reader, "Emergency message", w)
	if err != nil || message == "" {
		return
	}
	source, err := GetLanguage(a.reader, "Message language", w)
	if err != nil {
		return
	}
	location, err := GetSimpleText(a.reader, "Location (or 'general')", w)
	if err != nil {
		return
	}
	if location == "" {
		location = "general"
	}
	urgency, err := GetInt(a.reader, "Urgency level (1-10)", 1, 10, w)
	if err != nil {
		return
	}
	category, err := GetSimpleText(a.reader, "Category (medical/rescue/location/safety/communication/earthquake/flood/fire)", w)
	if err != nil {
		return
	}

	bc, err := a.broadcaster.Broadcast(ctx, services.BroadcastRequest{
		Message:       message,
		Source:        source,
		Location:      location,
		UrgencyLevel:  urgency,
		Category:      category,
		BroadcasterID: a.deviceID,
	})
	if err != nil {
		printlnFn("Broadcast NOT delivered:", err.Error())
		if bc != nil {
			printlnFn("It was queued and will be retried by sync.")
		}
		return
	}

	fmt.Printf("%s broadcast %s delivered\n", urgencyBadge(bc.UrgencyLevel), bc.ID)
	for _, tr := range bc.Translations {
		fmt.Printf("  %s: %s\n", tr.Language.Code(), tr.Text)
		if tr.AudioURL != "" {
			fmt.Printf("      audio: %s\n", tr.AudioURL)
		}
	}
}

func (a *App) broadcasts(ctx context.Context) {
	active, err := a.broadcaster.Active(ctx, "", 0)
	if err != nil {
		printlnFn(err.Error())
		return
	}
	if len(active) == 0 {
		printlnFn("No active broadcasts.")
		return
	}
	for _, b := range active {
		expiry := "no expiry"
		if !b.ExpiresAt.IsZero() {
			expiry = "expires " + b.ExpiresAt.Format(time.RFC822)
		}
		fmt.Printf("%s %s @%s: %s (reached %d, %s)\n",
			urgencyBadge(b.UrgencyLevel), b.ID, b.Location, b.Message, b.ReachCount, expiry)
	}
}

func (a *App) acknowledge(ctx context.Context, args []string) {
	if len(args) == 0 {
		printlnFn("Usage: ack <broadcast-id>")
		return
	}
	if err := a.broadcaster.Acknowledge(ctx, args[0], a.deviceID); err != nil {
		printlnFn(err.Error())
		return
	}
	printlnFn("Acknowledged.")
}

// phrases shows the curated emergency phrase set for the preferred target
// language. Usage: phrases [category]
func (a *App) phrases(ctx context.Context, args []string) {
	prefs, err := a.store.Preferences.Get(ctx)
	if err != nil {
		printlnFn(err.Error())
		return
	}

	category := ""
	if len(args) > 0 {
		category = args[0]
	}

	got, err := a.broadcaster.Phrases(ctx, prefs.ToLanguage, category, 0)
	if err != nil {
		printlnFn(err.Error())
		return
	}
	if len(got) == 0 {
		printlnFn("No phrases found.")
		return
	}
	for _, p := range got {
		text := p.Phrase
		if p.Tifinagh != "" {
			text = fmt.Sprintf("%s (%s)", p.Tifinagh, p.Phrase)
		}
		fmt.Printf("P%-2d [%s] %s\n", p.Priority, p.Category, text)
	}
}

// verify submits a community verification for a remote translation.
func (a *App) verify(ctx context.Context, args []string) {
	if len(args) == 0 {
		a.listRecentForVerification(ctx)
		return
	}

	answer, err := GetSimpleText(a.reader, "Is the translation correct? (yes/no)", os.Stdout)
	if err != nil {
		return
	}
	err = a.remote.VerifyTranslation(ctx, remote.VerifyRequest{
		TranslationID: args[0],
		UserID:        a.deviceID,
		IsCorrect:     answer == "yes",
		Expertise:     "community_member",
	})
	if err != nil {
		printlnFn(err.Error())
		return
	}
	printlnFn("Verification recorded.")
}

func (a *App) listRecentForVerification(ctx context.Context) {
	recent, err := a.remote.GetRecentTranslations(ctx, remote.RecentQuery{Limit: 10})
	if err != nil {
		printlnFn(err.Error())
		return
	}
	if len(recent) == 0 {
		printlnFn("Nothing to verify.")
		return
	}
	printlnFn("Usage: verify <id>")
	for _, r := range recent {
		mark := " "
		if r.IsVerified {
			mark = "✓"
		}
		fmt.Printf("%s %s %s → %s: %q → %q (%d verifications)\n",
			mark, r.ID, r.From.Code(), r.To.Code(), r.SourceText, r.TranslatedText, r.VerificationCount)
	}
}

func (a *App) sync(ctx context.Context) {
	pending, err := a.syncer.Pending(ctx)
	if err != nil {
		printlnFn(err.Error())
		return
	}
	if pending == 0 {
		printlnFn("Sync queue is empty.")
		return
	}

	n, err := a.syncer.Flush(ctx)
	if err != nil {
		printlnFn(err.Error())
		return
	}
	fmt.Printf("Replayed %d of %d queued mutations.\n", n, pending)
}
