package filters

import (
	"errors"
	"strings"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	name string
	fs   []Filter
}

func (p stubProvider) Name() string      { return p.name }
func (p stubProvider) Filters() []Filter { return p.fs }

func TestRegisterAndLookup(t *testing.T) {
	Register(stubProvider{
		name: "text",
		fs: []Filter{
			{Name: "shout", Doc: "shout(s): uppercase s", Func: strings.ToUpper},
			{Name: "hush", Doc: "hush(s): lowercase s", Func: strings.ToLower},
		},
	})

	f, ok := Lookup("shout")
	require.True(t, ok)
	assert.Equal(t, "shout", f.Name)
	assert.NotNil(t, f.Func)

	_, ok = Lookup("whisper")
	assert.False(t, ok)

	assert.Contains(t, Names(), "hush")
	assert.Contains(t, Names(), "shout")
	assert.Contains(t, Providers(), "text")

	fs, ok := ProviderFilters("text")
	require.True(t, ok)
	require.Len(t, fs, 2)
	assert.Equal(t, "hush", fs[0].Name)
	assert.Equal(t, "shout", fs[1].Name)

	_, ok = ProviderFilters("nope")
	assert.False(t, ok)
}

func TestRegisterDuplicateProviderPanics(t *testing.T) {
	Register(stubProvider{name: "dup-provider"})
	assert.Panics(t, func() {
		Register(stubProvider{name: "dup-provider"})
	})
}

func TestRegisterDuplicateFilterPanics(t *testing.T) {
	Register(stubProvider{
		name: "first",
		fs:   []Filter{{Name: "taken", Func: strings.TrimSpace}},
	})
	assert.Panics(t, func() {
		Register(stubProvider{
			name: "second",
			fs:   []Filter{{Name: "taken", Func: strings.TrimSpace}},
		})
	})
}

func TestRegisterNilPanics(t *testing.T) {
	assert.Panics(t, func() {
		Register(nil)
	})
	assert.Panics(t, func() {
		Register(stubProvider{
			name: "broken",
			fs:   []Filter{{Name: "nothing"}},
		})
	})
}

func TestFuncMapExecutesInTemplate(t *testing.T) {
	Register(stubProvider{
		name: "tmpl",
		fs: []Filter{
			{Name: "titled", Func: func(s string) (string, error) {
				if s == "" {
					return "", errors.New("empty input")
				}
				return strings.ToUpper(s[:1]) + s[1:], nil
			}},
		},
	})

	tmpl, err := template.New("t").Funcs(FuncMap()).Parse(`{{ titled . }}`)
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, tmpl.Execute(&out, "hello"))
	assert.Equal(t, "Hello", out.String())

	err = tmpl.Execute(&strings.Builder{}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty input")
}
