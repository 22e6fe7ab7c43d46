package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func base() map[string]any {
	return map[string]any{
		KeyProteins:  "prot.tsv",
		KeyPeptides:  "pep.tsv",
		KeyThreshold: 80,
	}
}

func load(t *testing.T, kv map[string]any) (Config, error) {
	t.Helper()
	v := New()
	for k, val := range kv {
		v.Set(k, val)
	}
	return Load(v, "")
}

func TestLoadDefaults(t *testing.T) {
	c, err := load(t, base())
	require.NoError(t, err)
	assert.Equal(t, "prot.tsv", c.Proteins)
	assert.Equal(t, "pep.tsv", c.Peptides)
	assert.Equal(t, 80.0, c.PidentThreshold)
	assert.Equal(t, 0.8, c.Fraction())
	assert.False(t, c.UseIdentical)
	assert.Equal(t, "text", c.Output)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Empty(t, c.Warnings())
}

func TestLoadRequired(t *testing.T) {
	for _, key := range []string{KeyProteins, KeyPeptides, KeyThreshold} {
		kv := base()
		delete(kv, key)
		_, err := load(t, kv)
		assert.ErrorContains(t, err, "--"+key+" is required")
	}
}

func TestLoadZeroThresholdIsSet(t *testing.T) {
	kv := base()
	kv[KeyThreshold] = 0
	c, err := load(t, kv)
	require.NoError(t, err)
	assert.Equal(t, 0.0, c.Fraction())
}

func TestThresholdRangePolicy(t *testing.T) {
	kv := base()
	kv[KeyThreshold] = 120
	c, err := load(t, kv)
	require.NoError(t, err)
	require.Len(t, c.Warnings(), 1)
	assert.Contains(t, c.Warnings()[0], "no window can match")

	kv[KeyThreshold] = -5
	c, err = load(t, kv)
	require.NoError(t, err)
	assert.Contains(t, c.Warnings()[0], "every window matches")

	kv[KeyStrictThreshold] = true
	_, err = load(t, kv)
	assert.ErrorContains(t, err, "between 0 and 100")
}

func TestValidateOutput(t *testing.T) {
	kv := base()
	kv[KeyOutput] = "xml"
	_, err := load(t, kv)
	assert.ErrorContains(t, err, `invalid --output "xml"`)

	kv[KeyOutput] = "sqlite"
	_, err = load(t, kv)
	assert.ErrorContains(t, err, "requires --db")

	kv[KeyDB] = "out.db"
	c, err := load(t, kv)
	require.NoError(t, err)
	assert.Equal(t, "out.db", c.DB)
}

func TestValidateLogLevelAndExitCode(t *testing.T) {
	kv := base()
	kv[KeyLogLevel] = "loud"
	_, err := load(t, kv)
	assert.ErrorContains(t, err, "--log-level")

	kv = base()
	kv[KeyNoMatchExitCode] = 300
	_, err = load(t, kv)
	assert.ErrorContains(t, err, "--no-match-exit-code")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PEPHOM_PROTEINS", "env_prot.tsv")
	t.Setenv("PEPHOM_PEPTIDES", "env_pep.tsv")
	t.Setenv("PEPHOM_PIDENT_THRESHOLD", "65.5")
	t.Setenv("PEPHOM_USE_IDENTICAL", "true")

	c, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "env_prot.tsv", c.Proteins)
	assert.Equal(t, 65.5, c.PidentThreshold)
	assert.True(t, c.UseIdentical)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pephom.yaml")
	data := "proteins: file_prot.tsv\npeptides: file_pep.tsv\npident_threshold: 90\nuse_identical: true\nsummary: true\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "file_prot.tsv", c.Proteins)
	assert.Equal(t, "file_pep.tsv", c.Peptides)
	assert.Equal(t, 90.0, c.PidentThreshold)
	assert.True(t, c.UseIdentical)
	assert.True(t, c.Summary)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "reading config file")
}
