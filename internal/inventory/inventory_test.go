package inventory

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInventory = `items:
  - name: cert-renewal
    date: "2030-06-14"
    tags: [infra, tls]
  - name: quarterly-report
    date: "2030-06-15"
    tags: [finance]
    notes: send to accounting
  - name: conference-cfp
    date: "2030-06-16"
`

func TestDecode(t *testing.T) {
	items, err := Decode(strings.NewReader(sampleInventory))
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "cert-renewal", items[0].Name)
	assert.Equal(t, "2030-06-14", items[0].Date)
	assert.Equal(t, []string{"infra", "tls"}, items[0].Tags)
	assert.Equal(t, "send to accounting", items[1].Notes)
}

func TestDecodeEmptyDocument(t *testing.T) {
	items, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDecodeRequiresNameAndDate(t *testing.T) {
	_, err := Decode(strings.NewReader("items:\n  - date: \"2030-06-14\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")

	_, err = Decode(strings.NewReader("items:\n  - name: nameless\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date is required")
}

func TestSelect(t *testing.T) {
	items, err := Decode(strings.NewReader(sampleInventory))
	require.NoError(t, err)

	matched, err := Select(items, func(date string) (bool, error) {
		return date < "2030-06-16", nil
	})
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "cert-renewal", matched[0].Name)
	assert.Equal(t, "quarterly-report", matched[1].Name)
}

func TestSelectNamesFailingItem(t *testing.T) {
	items := []Item{
		{Name: "good", Date: "2030-06-14"},
		{Name: "broken", Date: "14/06/2030"},
	}

	_, err := Select(items, func(date string) (bool, error) {
		if strings.Contains(date, "/") {
			return false, assert.AnError
		}
		return true, nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"broken"`)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestFilterByTag(t *testing.T) {
	items, err := Decode(strings.NewReader(sampleInventory))
	require.NoError(t, err)

	infra := FilterByTag(items, "infra")
	require.Len(t, infra, 1)
	assert.Equal(t, "cert-renewal", infra[0].Name)

	assert.Empty(t, FilterByTag(items, "nope"))
}

func TestLoadPathFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inventory.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleInventory), 0o644))

	items, err := LoadPath(path)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestLoadPathDirectoryMergesFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"),
		[]byte("items:\n  - name: first\n    date: \"2030-01-01\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yml"),
		[]byte("items:\n  - name: second\n    date: \"2030-02-01\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"),
		[]byte("not yaml"), 0o644))

	items, err := LoadPath(dir)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Path order keeps merged output stable.
	assert.Equal(t, "first", items[0].Name)
	assert.Equal(t, "second", items[1].Name)
}

func TestLoadPathMissing(t *testing.T) {
	_, err := LoadPath(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadReportsParseErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items: [:::"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.yaml")
}
