package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/reminders/internal/apperr"
)

type result struct {
	code           int
	stdout, stderr string
}

// sandbox points the config dir at a temp dir so nothing touches $HOME.
func sandbox(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("REMINDERS_STORE_DRIVER", "")
	t.Setenv("REMINDERS_STORE_PATH", "")
	t.Setenv("REMINDERS_THEME", "")
	return dir
}

func run(t *testing.T, args ...string) result {
	t.Helper()
	var out, errb bytes.Buffer
	code := Run(args, Options{Stdout: &out, Stderr: &errb})
	return result{code: code, stdout: out.String(), stderr: errb.String()}
}

func TestSetGetClear(t *testing.T) {
	dir := sandbox(t)

	r := run(t, "set", "Bike Lock", "4-2-7")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "saved Bike Lock")
	assert.FileExists(t, filepath.Join(dir, "reminders", "reminders.json"))

	r = run(t, "get", "Bike Lock")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "4-2-7\n", r.stdout)

	r = run(t, "clear", "Bike Lock")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "cleared Bike Lock")

	r = run(t, "get", "Bike Lock")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "\n", r.stdout)
}

func TestSetJoinsWords(t *testing.T) {
	sandbox(t)
	require.Equal(t, 0, run(t, "set", "Wifi Password", "correct", "horse", "battery").code)
	assert.Equal(t, "correct horse battery\n", run(t, "get", "Wifi Password").stdout)
}

func TestUnknownKeyIsUsageError(t *testing.T) {
	sandbox(t)
	r := run(t, "set", "Shoe Size", "42")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, apperr.ErrUnknownKey.Error())
	assert.Contains(t, r.stderr, "Usage:")

	assert.Equal(t, 2, run(t, "get", "nope").code)
	assert.Equal(t, 2, run(t, "clear", "nope").code)
}

func TestArgErrors(t *testing.T) {
	sandbox(t)
	assert.Equal(t, 2, run(t, "get").code)
	assert.Equal(t, 2, run(t, "set", "Bike Lock").code)
	assert.Equal(t, 2, run(t, "ls", "Work", "Family").code)
	assert.Equal(t, 2, run(t, "frobnicate").code)
	assert.Equal(t, 2, run(t, "--no-such-flag", "ls").code)
	assert.Equal(t, 2, run(t, "--theme", "pink", "ls").code)
}

func TestList(t *testing.T) {
	sandbox(t)
	require.Equal(t, 0, run(t, "set", "Roll NO.", "12345").code)

	r := run(t, "--theme", "mono", "ls")
	require.Equal(t, 0, r.code, r.stderr)
	for _, want := range []string{"Personal", "Work", "Family", "Roll NO.", "12345", "Student ID", "(not set)", "1/8"} {
		assert.Contains(t, r.stdout, want)
	}

	r = run(t, "--theme", "mono", "ls", "work")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "Roll NO.")
	assert.NotContains(t, r.stdout, "Phone Password")
	assert.Contains(t, r.stdout, "1/2")

	r = run(t, "ls", "Garden")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, apperr.ErrUnknownCategory.Error())
}

func TestExportYAML(t *testing.T) {
	sandbox(t)
	require.Equal(t, 0, run(t, "set", "Door Lock", "0000").code)
	require.Equal(t, 0, run(t, "set", "Phone Password", "1234").code)

	r := run(t, "export")
	require.Equal(t, 0, r.code, r.stderr)

	var doc map[string]map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(r.stdout), &doc))
	assert.Equal(t, "0000", doc["Family"]["Door Lock"])
	assert.Equal(t, "1234", doc["Personal"]["Phone Password"])
	assert.Equal(t, "", doc["Work"]["Student ID"])
	assert.Len(t, doc, 3)

	// catalog order, not alphabetical
	assert.Less(t, bytes.Index([]byte(r.stdout), []byte("Personal:")), bytes.Index([]byte(r.stdout), []byte("Work:")))
	assert.Less(t, bytes.Index([]byte(r.stdout), []byte("Work:")), bytes.Index([]byte(r.stdout), []byte("Family:")))
}

func TestEphemeralDoesNotPersist(t *testing.T) {
	dir := sandbox(t)
	r := run(t, "--ephemeral", "set", "Bike Lock", "1")
	require.Equal(t, 0, r.code, r.stderr)
	assert.NoFileExists(t, filepath.Join(dir, "reminders", "reminders.json"))
	assert.Equal(t, "\n", run(t, "get", "Bike Lock").stdout)
}

func TestSQLiteDriver(t *testing.T) {
	dir := sandbox(t)
	db := filepath.Join(dir, "data", "notes.db")
	t.Setenv("REMINDERS_STORE_DRIVER", "sqlite")
	t.Setenv("REMINDERS_STORE_PATH", db)

	require.Equal(t, 0, run(t, "set", "Student ID", "S-77").code)
	assert.FileExists(t, db)
	assert.Equal(t, "S-77\n", run(t, "get", "Student ID").stdout)
}

func TestSQLiteDefaultPathBesideJSON(t *testing.T) {
	dir := sandbox(t)
	require.Equal(t, 0, run(t, "set", "Door Lock", "json-side").code)

	t.Setenv("REMINDERS_STORE_DRIVER", "sqlite")
	r := run(t, "set", "Door Lock", "sqlite-side")
	require.Equal(t, 0, r.code, r.stderr)
	assert.FileExists(t, filepath.Join(dir, "reminders", "reminders.db"))
	assert.Equal(t, "sqlite-side\n", run(t, "get", "Door Lock").stdout)

	t.Setenv("REMINDERS_STORE_DRIVER", "")
	assert.Equal(t, "json-side\n", run(t, "get", "Door Lock").stdout)
}

func TestInvalidUTF8IsUsageError(t *testing.T) {
	sandbox(t)
	require.Equal(t, 0, run(t, "set", "UPI Pin", "4242").code)

	r := run(t, "set", "UPI Pin", "pin\xff")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, apperr.ErrInvalidText.Error())
	assert.Equal(t, "4242\n", run(t, "get", "UPI Pin").stdout)
}

func TestColorFlag(t *testing.T) {
	sandbox(t)
	r := run(t, "--color", "always", "set", "Bike Lock", "1")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "\033[32m")

	r = run(t, "set", "Bike Lock", "2")
	require.Equal(t, 0, r.code, r.stderr)
	assert.NotContains(t, r.stdout, "\033[", "buffers are not terminals")

	r = run(t, "--color", "always", "--theme", "mono", "set", "Bike Lock", "3")
	require.Equal(t, 0, r.code, r.stderr)
	assert.NotContains(t, r.stdout, "\033[")

	assert.Equal(t, 2, run(t, "--color", "sometimes", "ls").code)
}

func TestConfigFileFlag(t *testing.T) {
	dir := sandbox(t)
	store := filepath.Join(dir, "custom.json")
	cfg := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("store:\n  driver: json\n  path: "+store+"\n"), 0o600))

	require.Equal(t, 0, run(t, "-c", cfg, "set", "Metro Card", "M1").code)
	assert.FileExists(t, store)

	r := run(t, "-c", filepath.Join(dir, "missing.yaml"), "ls")
	assert.Equal(t, 1, r.code)
}
