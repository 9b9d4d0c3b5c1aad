package audio

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mindful-ai-dude/multilingo/internal/language"
)

func TestBundledURL(t *testing.T) {
	url, ok := BundledURL("Call the police", language.Tamazight)
	assert.True(t, ok)
	assert.Contains(t, url, "call%20the%20police")

	url, ok = BundledURL("Call the police", language.French)
	assert.True(t, ok)
	assert.Contains(t, url, "french")

	_, ok = BundledURL("Call the police", language.Arabic)
	assert.False(t, ok)

	_, ok = BundledURL("Unknown phrase", language.Tamazight)
	assert.False(t, ok)
}

func TestHasAudio(t *testing.T) {
	assert.True(t, HasAudio("I am lost", language.Tamazight))
	assert.False(t, HasAudio("I am lost", language.French))
	assert.True(t, HasAudio("I need medical help immediately", language.French))
	assert.False(t, HasAudio("Good morning", language.Tamazight))
}

func TestStorageKey(t *testing.T) {
	assert.Equal(t, "audio/tmz/I am lost", StorageKey("I am lost", language.Tamazight))
	assert.Equal(t, "audio/fr/Merci", StorageKey("Merci", language.French))
}

func TestUpload_RequiresBucket(t *testing.T) {
	l := NewLibrary(S3Settings{})
	err := l.Upload(context.Background(), "I am lost", language.Tamazight, []byte("clip"))
	assert.Error(t, err)
}

func TestResolveURL_ManifestFallback(t *testing.T) {
	// no bucket configured, the manifest answers
	l := NewLibrary(S3Settings{})
	url, ok := l.ResolveURL(context.Background(), "I am lost", language.Tamazight)
	assert.True(t, ok)
	assert.Contains(t, url, "i%20am%20lost")

	_, ok = l.ResolveURL(context.Background(), "I am lost", language.Arabic)
	assert.False(t, ok)
}
