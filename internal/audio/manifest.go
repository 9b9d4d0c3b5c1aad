// Package audio resolves playable recordings for emergency and government
// phrases. A small bundled manifest covers the phrases shipped with the app;
// when an object-storage bucket is configured, recordings are served through
// presigned GET URLs instead.
package audio

import "github.com/mindful-ai-dude/multilingo/internal/language"

// bundled maps the English phrase to a hosted recording, per language. Only
// Tamazight and French recordings exist today.
var bundled = map[language.Language]map[string]string{
	language.Tamazight: {
		"I am lost":                       "https://raw.githubusercontent.com/tamazightdev/Tamazight_MultiLingo_App/main/assets/audio/tamazight%20i%20am%20lost.MP3",
		"Call the police":                 "https://raw.githubusercontent.com/tamazightdev/Tamazight_MultiLingo_App/main/assets/audio/tamazight%20call%20the%20police.MP3",
		"I need medical help immediately": "https://raw.githubusercontent.com/tamazightdev/Tamazight_MultiLingo_App/main/assets/audio/tamazight%20i%20need%20medical%20help.MP3",
		"Where is the hospital?":          "https://raw.githubusercontent.com/tamazightdev/Tamazight_MultiLingo_App/main/assets/audio/tamazight%20where%20is%20the%20hospital.MP3",
		"I need an interpreter":           "https://raw.githubusercontent.com/tamazightdev/Tamazight_MultiLingo_App/main/assets/audio/tamazight%20i%20need%20an%20interpreter.m4a",
	},
	language.French: {
		"Call the police":                 "https://raw.githubusercontent.com/tamazightdev/Tamazight_MultiLingo_App/main/assets/audio/french%20call%20the%20police.mp3",
		"I need medical help immediately": "https://raw.githubusercontent.com/tamazightdev/Tamazight_MultiLingo_App/main/assets/audio/french%20i%20need%20medical%20help.mp3",
		"I need an interpreter":           "https://raw.githubusercontent.com/tamazightdev/Tamazight_MultiLingo_App/main/assets/audio/french%20i%20need%20an%20interpreter.mp3",
	},
}

// BundledURL returns the hosted recording URL for an English phrase in the
// given language.
func BundledURL(englishPhrase string, lang language.Language) (string, bool) {
	url, ok := bundled[lang][englishPhrase]
	return url, ok
}

// HasAudio reports whether a bundled recording of the phrase exists in the
// given language.
func HasAudio(englishPhrase string, lang language.Language) bool {
	_, ok := bundled[lang][englishPhrase]
	return ok
}
