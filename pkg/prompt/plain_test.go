package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func plainWith(input string) (*Plain, *bytes.Buffer) {
	var out bytes.Buffer
	return NewPlain(strings.NewReader(input), &out), &out
}

func TestPlainSelectOneByNumber(t *testing.T) {
	p, _ := plainWith("2\n")
	selected, ok := p.SelectOne("Choose a command:", []string{"dd", "list", "install"}, "dd")
	assert.True(t, ok)
	assert.Equal(t, "list", selected)
}

func TestPlainSelectOneByName(t *testing.T) {
	p, _ := plainWith("install\n")
	selected, ok := p.SelectOne("Choose a command:", []string{"dd", "list", "install"}, "")
	assert.True(t, ok)
	assert.Equal(t, "install", selected)
}

func TestPlainSelectOneDefaultOnEmptyInput(t *testing.T) {
	p, out := plainWith("\n")
	selected, ok := p.SelectOne("Choose a command:", []string{"dd", "list"}, "dd")
	assert.True(t, ok)
	assert.Equal(t, "dd", selected)
	assert.Contains(t, out.String(), "dd (default)")
}

func TestPlainSelectOneQuit(t *testing.T) {
	for _, quit := range []string{"q", "quit", "exit", "Q"} {
		p, _ := plainWith(quit + "\n")
		_, ok := p.SelectOne("Choose:", []string{"a", "b"}, "")
		assert.False(t, ok, "input %q should cancel", quit)
	}
}

func TestPlainSelectOneRetriesOnInvalidInput(t *testing.T) {
	p, out := plainWith("99\nnope\n1\n")
	selected, ok := p.SelectOne("Choose:", []string{"a", "b"}, "")
	assert.True(t, ok)
	assert.Equal(t, "a", selected)
	assert.Contains(t, out.String(), "Invalid choice")
}

func TestPlainSelectOneEOFCancels(t *testing.T) {
	p, _ := plainWith("")
	_, ok := p.SelectOne("Choose:", []string{"a"}, "")
	assert.False(t, ok)
}

func TestPlainSelectOneNoOptions(t *testing.T) {
	p, _ := plainWith("1\n")
	_, ok := p.SelectOne("Choose:", nil, "")
	assert.False(t, ok)
}

func TestPlainSelectManyMixedTokens(t *testing.T) {
	p, _ := plainWith("1, c\n")
	selected, ok := p.SelectMany("Choose:", []string{"a", "b", "c"}, nil)
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "c"}, selected)
}

func TestPlainSelectManyDeduplicates(t *testing.T) {
	p, _ := plainWith("1 a 1\n")
	selected, ok := p.SelectMany("Choose:", []string{"a", "b"}, nil)
	assert.True(t, ok)
	assert.Equal(t, []string{"a"}, selected)
}

func TestPlainSelectManyDefaultsOnEmptyInput(t *testing.T) {
	p, _ := plainWith("\n")
	selected, ok := p.SelectMany("Choose:", []string{"user", "project"}, []string{"user"})
	assert.True(t, ok)
	assert.Equal(t, []string{"user"}, selected)
}

func TestPlainSelectManyRetriesWithoutDefaults(t *testing.T) {
	p, out := plainWith("\n2\n")
	selected, ok := p.SelectMany("Choose:", []string{"a", "b"}, nil)
	assert.True(t, ok)
	assert.Equal(t, []string{"b"}, selected)
	assert.Contains(t, out.String(), "Enter at least one option")
}

func TestPlainSelectManyInvalidTokenRetries(t *testing.T) {
	p, out := plainWith("1 zzz\n2\n")
	selected, ok := p.SelectMany("Choose:", []string{"a", "b"}, nil)
	assert.True(t, ok)
	assert.Equal(t, []string{"b"}, selected)
	assert.Contains(t, out.String(), "One of the selections was invalid")
}

func TestPlainSelectManyQuit(t *testing.T) {
	p, _ := plainWith("q\n")
	_, ok := p.SelectMany("Choose:", []string{"a"}, nil)
	assert.False(t, ok)
}

func TestPlainPromptText(t *testing.T) {
	p, _ := plainWith("hello world\n")
	text, ok := p.PromptText("Say something", "")
	assert.True(t, ok)
	assert.Equal(t, "hello world", text)
}

func TestPlainPromptTextDefault(t *testing.T) {
	p, out := plainWith("\n")
	text, ok := p.PromptText("Directory", "./skills")
	assert.True(t, ok)
	assert.Equal(t, "./skills", text)
	assert.Contains(t, out.String(), "[./skills]")
}

func TestPlainPromptTextEOFCancels(t *testing.T) {
	p, _ := plainWith("")
	_, ok := p.PromptText("Directory", "default")
	assert.False(t, ok)
}
