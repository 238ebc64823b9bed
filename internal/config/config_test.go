package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadAppliesEnvOverlay(t *testing.T) {
	t.Setenv("NARS_ENGINE_CONCEPT_CAPACITY", "500")
	t.Setenv("NARS_ENGINE_VOLUME", "50")
	t.Setenv("NARS_STORAGE_TYPE", "sqlite")
	t.Setenv("NARS_STORAGE_SQLITE_PATH", "/tmp/reasoner.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.Engine.ConceptCapacity)
	assert.Equal(t, 50, cfg.Engine.Volume)
	assert.Equal(t, "sqlite", cfg.Storage.Type)
	assert.Equal(t, "/tmp/reasoner.db", cfg.Storage.SQLitePath)
}

func TestLoadRejectsMalformedEnvInt(t *testing.T) {
	t.Setenv("NARS_ENGINE_CONCEPT_CAPACITY", "not-a-number")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadFromFileJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reasoner.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"engine":{"concept_capacity":777,"novel_task_capacity":1000,"term_links_per_cycle":3,"stamp_max_length":8,"budget_threshold":0.01,"admission_threshold":0.6,"volume":100},"storage":{"type":"memory"}}`), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 777, cfg.Engine.ConceptCapacity)
}

func TestLoadFromFileYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reasoner.yaml")
	content := "engine:\n  concept_capacity: 888\n  novel_task_capacity: 1000\n  term_links_per_cycle: 3\n  stamp_max_length: 8\n  budget_threshold: 0.01\n  admission_threshold: 0.6\n  volume: 100\nstorage:\n  type: memory\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 888, cfg.Engine.ConceptCapacity)
}

func TestLoadFromFileEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reasoner.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"engine":{"concept_capacity":777,"novel_task_capacity":1000,"term_links_per_cycle":3,"stamp_max_length":8,"budget_threshold":0.01,"admission_threshold":0.6,"volume":100},"storage":{"type":"memory"}}`), 0o644))
	t.Setenv("NARS_ENGINE_CONCEPT_CAPACITY", "42")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Engine.ConceptCapacity)
}

func TestValidateRejectsBadVolume(t *testing.T) {
	cfg := Default()
	cfg.Engine.Volume = 200
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsSQLiteWithoutPath(t *testing.T) {
	cfg := Default()
	cfg.Storage.Type = "sqlite"
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsUnknownStorageType(t *testing.T) {
	cfg := Default()
	cfg.Storage.Type = "postgres"
	assert.Error(t, cfg.Validate())
}

func TestToParametersMatchesEngineSection(t *testing.T) {
	cfg := Default()
	cfg.Engine.ConceptCapacity = 321
	params := cfg.ToParameters()
	assert.Equal(t, 321, params.ConceptCapacity)
	assert.Equal(t, cfg.Engine.Volume, params.Volume)
}
