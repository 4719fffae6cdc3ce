package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListLanguagesPrintsRegistry(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"crawl", "--list-languages"})

	require.NoError(t, root.Execute())

	listing := out.String()
	assert.Contains(t, listing, "CODE")
	assert.Contains(t, listing, "fr")
	assert.Contains(t, listing, "French")
	assert.Contains(t, listing, "Français")
	assert.Contains(t, listing, "mt")
	assert.Contains(t, listing, "Malti")
}

func TestCrawlRejectsUnknownLanguage(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"crawl", "--languages", "fr,xx"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xx")
}
