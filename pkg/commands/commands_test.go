package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sandbox points config and the disk store at a fresh directory.
func sandbox(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("NOMILOG_CONFIG_PATH", dir)
	t.Setenv("NOMILOG_PATH", dir)
	t.Setenv("NOMILOG_BACKEND", "disk")
	t.Chdir(dir)
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := New()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

type jsonRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Rating   int    `json:"rating"`
	Store    string `json:"store"`
}

func TestAddListShowEdit(t *testing.T) {
	sandbox(t)

	out, _, err := run(t, "add", "--json", "-c", "lager", "-r", "4", "--on", "2024-03-01", "Asahi", "Super", "Dry")
	require.NoError(t, err)
	var added jsonRecord
	require.NoError(t, json.Unmarshal([]byte(out), &added))
	assert.Equal(t, "Asahi Super Dry", added.Name)
	assert.Equal(t, "beer", added.Category)

	_, _, err = run(t, "add", "--json", "-c", "sake", "-r", "5", "-n", "Dassai", "--on", "2024-03-02", "--store", "Kura")
	require.NoError(t, err)

	out, _, err = run(t, "list", "--json")
	require.NoError(t, err)
	var listed []jsonRecord
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, "Dassai", listed[0].Name)

	out, _, err = run(t, "list", "--json", "--category", "beer")
	require.NoError(t, err)
	listed = nil
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Len(t, listed, 1)

	out, _, err = run(t, "edit", "--json", added.ID[:8], "--rating", "2")
	require.NoError(t, err)
	var edited jsonRecord
	require.NoError(t, json.Unmarshal([]byte(out), &edited))
	assert.Equal(t, 2, edited.Rating)
	assert.Equal(t, "Asahi Super Dry", edited.Name)

	out, _, err = run(t, "show", "--json", added.ID)
	require.NoError(t, err)
	assert.Contains(t, out, `"rating": 2`)
}

func TestAddInvalidReportsFields(t *testing.T) {
	sandbox(t)

	out, _, err := run(t, "add", "--json", "-c", "mead", "-r", "9")
	require.NoError(t, err)
	assert.Contains(t, out, `"fields"`)
	assert.Contains(t, out, `"category"`)
	assert.Contains(t, out, `"rating"`)

	_, _, err = run(t, "add", "-c", "beer", "-r", "3")
	require.Error(t, err)
	assert.Equal(t, "invalid record", err.Error())
}

func TestEveryThirdSaveShowsAd(t *testing.T) {
	sandbox(t)

	for i := 1; i <= 3; i++ {
		_, errOut, err := run(t, "add", "--json", "-c", "beer", "-r", "3", "Pils")
		require.NoError(t, err)
		if i < 3 {
			assert.NotContains(t, errOut, "premium", "save %d", i)
		} else {
			assert.Contains(t, errOut, "premium", "save %d", i)
		}
	}

	_, _, err := run(t, "premium", "buy")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, errOut, err := run(t, "add", "--json", "-c", "beer", "-r", "3", "Pils")
		require.NoError(t, err)
		assert.NotContains(t, errOut, "premium")
	}

	out, _, err := run(t, "premium", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"isPremium": true`)
}

func TestStatsAndCalendarJSON(t *testing.T) {
	sandbox(t)

	for _, args := range [][]string{
		{"add", "--json", "-c", "beer", "-r", "4", "--on", "2024-02-14", "IPA"},
		{"add", "--json", "-c", "beer", "-r", "2", "--on", "2024-02-14", "Pils"},
		{"add", "--json", "-c", "whisky", "-r", "5", "--on", "2024-02-20", "Hakushu"},
	} {
		_, _, err := run(t, args...)
		require.NoError(t, err)
	}

	out, _, err := run(t, "stats", "--json")
	require.NoError(t, err)
	var rep struct {
		Period  string `json:"period"`
		Summary struct {
			Total        int    `json:"total"`
			MostFrequent string `json:"mostFrequent"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "all", rep.Period)
	assert.Equal(t, 3, rep.Summary.Total)
	assert.Equal(t, "beer", rep.Summary.MostFrequent)

	out, _, err = run(t, "calendar", "--json", "--month", "2024-02")
	require.NoError(t, err)
	assert.Contains(t, out, `"blank": true`)
	assert.Contains(t, out, `"markers": [`)

	_, _, err = run(t, "stats", "--period", "fortnight")
	require.Error(t, err)
}

func TestRemove(t *testing.T) {
	sandbox(t)

	out, _, err := run(t, "add", "--json", "-c", "shochu", "-r", "3", "Kuro")
	require.NoError(t, err)
	var added jsonRecord
	require.NoError(t, json.Unmarshal([]byte(out), &added))

	_, _, err = run(t, "rm", added.ID, "nope")
	require.NoError(t, err)

	out, _, err = run(t, "list", "--json")
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(out))
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version", "--short")
	require.NoError(t, err)
	assert.Contains(t, out, "dev")
}
