package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	args := []string{"-a", "example.com:443", "-x", "ignored", "-i", "5"}
	got := FilterArgs(args, []string{"-a", "-i"})
	assert.Equal(t, []string{"-a", "example.com:443", "-i", "5"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	args := []string{"--config=conf.json", "-other=1", "-i=3"}
	got := FilterArgs(args, []string{"--config", "-i"})
	assert.Equal(t, []string{"--config=conf.json", "-i=3"}, got)
}

func TestFilterArgs_FlagWithoutValue(t *testing.T) {
	args := []string{"-v", "-a", "-i", "7"}
	got := FilterArgs(args, []string{"-a"})
	// -a is followed by another flag, so no value is captured
	assert.Equal(t, []string{"-a"}, got)
}

func TestFilterArgs_Empty(t *testing.T) {
	got := FilterArgs(nil, []string{"-a"})
	assert.NotNil(t, got)
	assert.Len(t, got, 0)
}
