package pathrule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	cases := map[string]bool{
		"/":           true,
		"/a/":         true,
		"/a/b/c/":     true,
		"":            false,
		"/a":          false, // missing trailing slash
		"a/":          false, // missing leading slash
		"/A/":         false, // uppercase not allowed
		"/a1/":        false, // digits not allowed
		"//":          false, // empty component
		"/a//b/":      false,
		"/a/b":        false,
	}
	for path, want := range cases {
		assert.Equal(t, want, IsValid(path), "IsValid(%q)", path)
	}
}

func TestIsValidRejectsOverlongComponent(t *testing.T) {
	longName := make([]byte, MaxFolderNameLength+1)
	for i := range longName {
		longName[i] = 'a'
	}
	path := "/" + string(longName) + "/"
	assert.False(t, IsValid(path))

	okName := longName[:MaxFolderNameLength]
	path = "/" + string(okName) + "/"
	assert.True(t, IsValid(path))
}

func TestSplit(t *testing.T) {
	component, rest, ok := Split("/a/b/c/")
	assert.True(t, ok)
	assert.Equal(t, "a", component)
	assert.Equal(t, "/b/c/", rest)

	component, rest, ok = Split(rest)
	assert.True(t, ok)
	assert.Equal(t, "b", component)
	assert.Equal(t, "/c/", rest)

	component, rest, ok = Split(rest)
	assert.True(t, ok)
	assert.Equal(t, "c", component)
	assert.Equal(t, "/", rest)

	_, _, ok = Split(rest)
	assert.False(t, ok)
}

func TestSplitParent(t *testing.T) {
	parent, component, ok := SplitParent("/a/b/c/")
	assert.True(t, ok)
	assert.Equal(t, "/a/b/", parent)
	assert.Equal(t, "c", component)

	parent, component, ok = SplitParent("/a/")
	assert.True(t, ok)
	assert.Equal(t, "/", parent)
	assert.Equal(t, "a", component)

	_, _, ok = SplitParent("/")
	assert.False(t, ok)
}

func TestStartsWithStrictly(t *testing.T) {
	assert.True(t, StartsWithStrictly("/a/b/", "/a/"))
	assert.False(t, StartsWithStrictly("/a/", "/a/"))
	assert.False(t, StartsWithStrictly("/a/", "/a/b/"))
	assert.False(t, StartsWithStrictly("/ab/", "/a/"))
}

func TestLongestCommonAncestor(t *testing.T) {
	cases := []struct {
		a, b, want string
	}{
		{"/a/", "/b/", "/"},
		{"/a/b/", "/a/c/", "/a/"},
		{"/a/b/c/", "/a/b/d/", "/a/b/"},
		{"/", "/", "/"},
		{"/a/", "/a/", "/a/"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, LongestCommonAncestor(c.a, c.b), "LCA(%q, %q)", c.a, c.b)
	}
}
