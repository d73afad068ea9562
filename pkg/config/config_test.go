// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allVars = []string{"FLIX_LANG", "FLIX_MAX_WIDTH", "FLIX_MOUSE", "FLIX_LOG_FILE", "FLIX_LOG_LEVEL", "FLIX_LOG_MAX_SIZE_MB", "FLIX_LOG_MAX_BACKUPS"}

// clearEnv unsets every variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allVars {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, 120, cfg.MaxWidth)
	assert.True(t, cfg.Mouse)
	assert.Equal(t, "", cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("FLIX_LANG", "de")
	t.Setenv("FLIX_MAX_WIDTH", "90")
	t.Setenv("FLIX_MOUSE", "false")
	t.Setenv("FLIX_LOG_FILE", "/tmp/flix.log")
	t.Setenv("FLIX_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "de", cfg.Lang)
	assert.Equal(t, 90, cfg.MaxWidth)
	assert.False(t, cfg.Mouse)
	assert.Equal(t, "/tmp/flix.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("FLIX_MAX_WIDTH", "20")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsUnknownLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("FLIX_LOG_LEVEL", "chatty")
	_, err := Load()
	assert.Error(t, err)
}

func TestUsage_ListsVariables(t *testing.T) {
	u := Usage()
	assert.Contains(t, u, "FLIX_LANG")
	assert.Contains(t, u, "FLIX_LOG_FILE")
}
