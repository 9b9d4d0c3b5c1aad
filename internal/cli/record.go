package cli

import (
	"context"
	"os"
)

// record uploads a phrase recording to the community bucket.
func (a *App) record(ctx context.Context) {
	w := os.Stdout

	phrase, err := GetSimpleText(a.reader, "English phrase the recording is for", w)
	if err != nil || phrase == "" {
		return
	}
	lang, err := GetLanguage(a.reader, "Spoken language", w)
	if err != nil {
		return
	}
	path, err := GetSimpleText(a.reader, "Path to the audio file", w)
	if err != nil || path == "" {
		return
	}

	clip, err := os.ReadFile(path)
	if err != nil {
		printlnFn(err.Error())
		return
	}
	if err := a.audioLib.Upload(ctx, phrase, lang, clip); err != nil {
		printlnFn(err.Error())
		return
	}
	printlnFn("Recording uploaded.")
}
