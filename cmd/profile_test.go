package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriComplete/internal/config"
)

func TestProfileNamesSortedAndSkipped(t *testing.T) {
	cfg := &config.Config{Profiles: map[string]config.Profile{
		"work":    {},
		"default": {},
		"local":   {},
	}}

	assert.Equal(t, []string{"default", "local", "work"}, profileNames(cfg, ""))
	assert.Equal(t, []string{"default", "work"}, profileNames(cfg, "local"))
}

func TestPickProfileUsesArgument(t *testing.T) {
	cfg := &config.Config{Profiles: map[string]config.Profile{}}

	name, err := pickProfile(cfg, []string{"work"}, "Select", "")
	require.NoError(t, err)
	assert.Equal(t, "work", name)

	_, err = pickProfile(cfg, nil, "Select", "")
	assert.Error(t, err)
}
