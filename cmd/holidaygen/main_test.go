package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	for _, v := range []string{"CATALOG_PATH", "DATABASE_PATH", "EXPORT_ON_START", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(v, "")
	}

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestGenerate_Stdout(t *testing.T) {
	stdout, stderr, err := run(t, "generate", "--start", "2021", "--end", "2021")
	require.NoError(t, err, stderr)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "New Year's Day\t2021-01-01", lines[0])
	assert.Equal(t, "Independence Day\t2021-07-05", lines[6])
	assert.Equal(t, "Christmas\t2021-12-24", lines[9])

	assert.Contains(t, stderr, "holidays generated")
}

func TestGenerate_AppendsToFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "holidays.txt")

	_, _, err := run(t, "generate", "--start", "2022", "--end", "2023", "--output", out)
	require.NoError(t, err)
	_, _, err = run(t, "generate", "--start", "2024", "--end", "2024", "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 30)
	assert.Equal(t, "New Year's Day\t2021-12-31", lines[0])
	assert.Equal(t, "Good Friday\t2022-04-15", lines[3])
	assert.Equal(t, "Memorial Day\t2024-05-27", lines[24])
}

func TestGenerate_WithDatabase(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "holidays.db")

	_, stderr, err := run(t, "generate", "--start", "2024", "--end", "2026", "--db", db)
	require.NoError(t, err, stderr)

	stdout, _, err := run(t, "stored", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "2024\n2025\n2026\n", stdout)

	stdout, _, err = run(t, "stored", "--db", db, "--from", "2026")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Christmas\t2026-12-25\n")
	assert.Equal(t, 10, strings.Count(stdout, "\n"))

	stdout, _, err = run(t, "stored", "--db", db, "--year", "2022")
	assert.ErrorContains(t, err, "no nyse holidays stored for 2022")
	assert.Empty(t, stdout)

	stdout, _, err = run(t, "stored", "--db", db, "--year", "2024")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "New Year's Day\t2024-01-01\n"), stdout)
	assert.Equal(t, 10, strings.Count(stdout, "\n"))

	_, _, err = run(t, "stored", "--db", db, "--year", "2024", "--delete", "2024")
	assert.Error(t, err)

	_, _, err = run(t, "stored", "--db", db, "--delete", "2025")
	require.NoError(t, err)

	stdout, _, err = run(t, "stored", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "2024\n2026\n", stdout)

	_, _, err = run(t, "stored", "--db", db, "--delete", "2025")
	assert.ErrorContains(t, err, "no nyse holidays stored for 2025")
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"inverted range", []string{"generate", "--start", "2025", "--end", "2020"}, "after --end"},
		{"before gregorian", []string{"generate", "--start", "1500", "--end", "1600"}, "before 1583"},
		{"huge end", []string{"generate", "--start", "1583", "--end", "9223372036854775807"}, "after 9999"},
		{"past last year", []string{"generate", "--start", "9999", "--end", "10000"}, "after 9999"},
		{"missing end", []string{"generate", "--start", "2024"}, "end"},
		{"missing catalog", []string{"generate", "--start", "2024", "--end", "2024", "--catalog", "/nonexistent.yaml"}, "open catalog"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Empty(t, stdout)
		})
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2021-12-31", "2021-12-31\tNew Year's Day\n"},
		{"2022-04-15", "2022-04-15\tGood Friday\n"},
		{"2021-07-04", "2021-07-04\tweekend\n"},
		{"2024-07-05", "2024-07-05\ttrading day\n"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			stdout, _, err := run(t, "check", tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}

	_, _, err := run(t, "check", "not-a-date")
	assert.Error(t, err)
}

func TestCatalog_RoundTrip(t *testing.T) {
	stdout, _, err := run(t, "catalog")
	require.NoError(t, err)
	assert.Contains(t, stdout, "name: nyse")

	// Edit the dumped catalog and generate from it.
	edited := strings.Replace(stdout, "name: nyse", "name: custom", 1)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(edited), 0o644))

	out, _, err := run(t, "generate", "--start", "2024", "--end", "2024", "--catalog", path)
	require.NoError(t, err)
	assert.Equal(t, 10, strings.Count(out, "\n"))
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "holidaygen version dev")
}
