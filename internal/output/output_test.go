package output

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapponejosh/market-holidays/internal/calendar"
	"github.com/zapponejosh/market-holidays/internal/holidays"
)

func testSets(t *testing.T, from, to int) []holidays.YearSet {
	t.Helper()
	sets, err := holidays.NewGenerator(holidays.Default()).GenerateRange(from, to)
	require.NoError(t, err)
	return sets
}

func TestWriter_WriteSet(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteSets(testSets(t, 2022, 2022)))
	require.NoError(t, w.Flush())

	want := "New Year's Day\t2021-12-31\n" +
		"Martin Luther King Jr. Day\t2022-01-17\n" +
		"Washington's Birthday\t2022-02-21\n" +
		"Good Friday\t2022-04-15\n" +
		"Memorial Day\t2022-05-30\n" +
		"Juneteenth\t2022-06-20\n" +
		"Independence Day\t2022-07-04\n" +
		"Labor Day\t2022-09-05\n" +
		"Thanksgiving\t2022-11-24\n" +
		"Christmas\t2022-12-26\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 10, w.Lines())
}

func TestWriter_Empty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteSet(holidays.YearSet{Year: 2024}))
	require.NoError(t, w.Flush())
	assert.Empty(t, buf.String())
	assert.Zero(t, w.Lines())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriter_FlushError(t *testing.T) {
	w := NewWriter(failWriter{})
	set := holidays.YearSet{
		Year:     2024,
		Holidays: []holidays.Holiday{{Name: "Christmas", Date: calendar.NewDate(2024, time.December, 25)}},
	}

	require.NoError(t, w.WriteSet(set))
	assert.ErrorContains(t, w.Flush(), "disk full")
}

func TestAppendFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holidays.txt")

	n, err := AppendFile(path, nil, testSets(t, 2023, 2024))
	require.NoError(t, err)
	assert.Equal(t, 20, n)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Mode().Perm()&^0o644, "mode %v grants more than 0644", info.Mode())

	n, err = AppendFile(path, nil, testSets(t, 2025, 2025))
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := bytes.Split(bytes.TrimSuffix(data, []byte("\n")), []byte("\n"))
	require.Len(t, lines, 30)
	assert.Equal(t, "New Year's Day\t2023-01-02", string(lines[0]))
	assert.Equal(t, "Christmas\t2025-12-25", string(lines[29]))
}

func TestAppendFile_KeepsExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holidays.txt")
	require.NoError(t, os.WriteFile(path, []byte("existing\n"), 0o644))

	_, err := AppendFile(path, nil, testSets(t, 2024, 2024))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("existing\nNew Year's Day\t2024-01-01\n")))
}

func TestOpen_MissingDirectory(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope", "holidays.txt"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAppendFile_Stdout(t *testing.T) {
	var buf bytes.Buffer

	n, err := AppendFile(Stdout, &buf, testSets(t, 2026, 2026))
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Contains(t, buf.String(), "Independence Day\t2026-07-03\n")

	// Closing the stdout destination leaves it usable.
	_, err = AppendFile(Stdout, &buf, testSets(t, 2027, 2027))
	require.NoError(t, err)
	assert.Equal(t, 20, bytes.Count(buf.Bytes(), []byte("\n")))
}
