package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	t.Setenv("SEED_PASSWORD", "")

	flags, err := parseFlags([]string{"--email", "a@x.com", "--password", "secret", "--name", "Alice", "--admin"})
	require.NoError(t, err)
	assert.Equal(t, "users", flags.configName)
	assert.Equal(t, "a@x.com", flags.email)
	assert.Equal(t, "secret", flags.password)
	assert.Equal(t, "Alice", flags.name)
	assert.True(t, flags.admin)

	_, err = parseFlags([]string{"--email", "a@x.com"})
	require.Error(t, err)

	t.Setenv("SEED_PASSWORD", "from-env")
	flags, err = parseFlags([]string{"--email", "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "from-env", flags.password)
}
