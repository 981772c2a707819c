package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `generator:
  leads_path: data/leads.csv
  tracking_path: data/generated.json
  output_dir: pages
  batch_size: 40
site:
  contact_email: hello@example.com
  language: de
`

func setupDataDir(t *testing.T) string {
	t.Helper()
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "config.yml"), []byte(testConfigYAML), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dataDir, "data"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "data", "leads.csv"), []byte(
		"slug,business_name,city,service,pain_point,offer\n"+
			"plumber-berlin,Rohr Frei GmbH,Berlin,Sanitär,zu wenige Anfragen,Erstgespräch\n"), 0o644))

	t.Cleanup(func() {
		flagConfig = ""
		flagDataDir = ""
		flagLimit = 0
	})
	flagDataDir = dataDir
	flagConfig = filepath.Join(dataDir, "config.yml")
	return dataDir
}

func TestRunGenerateEndToEnd(t *testing.T) {
	dataDir := setupDataDir(t)

	require.NoError(t, runGenerate(rootCmd, nil))

	_, err := os.Stat(filepath.Join(dataDir, "pages", "plumber-berlin.html"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dataDir, "data", "generated.json"))
	assert.NoError(t, err)

	// run again: nothing new, still a clean exit
	require.NoError(t, runGenerate(rootCmd, nil))
}

func TestRunStatusNeedsNoTrackingFile(t *testing.T) {
	setupDataDir(t)
	require.NoError(t, runStatus(statusCmd, nil))
}

func TestLoadSetupRejectsBrokenConfig(t *testing.T) {
	dataDir := setupDataDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "config.yml"),
		[]byte("generator:\n  batch_size: -1\n"), 0o644))

	_, _, err := loadSetup()
	require.Error(t, err)
}

func TestCommandWiring(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["version"])
	assert.True(t, names["status"])
}
