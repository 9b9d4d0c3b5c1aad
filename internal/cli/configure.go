package cli

import (
	"context"
	"os"
)

// configure sets the Gemini API key for the session and rebuilds the
// services that depend on it. The key is not persisted; export
// GEMINI_API_KEY to keep it across runs.
func (a *App) configure(_ context.Context) {
	key, err := GetSecret("Gemini API key", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return
	}
	if key == "" {
		printlnFn("No key entered, keeping current configuration.")
		return
	}

	a.config.GeminiAPIKey = key
	a.wireServices()
	printlnFn("Oracle configured for this session.")
}
