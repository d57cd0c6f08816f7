package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, htmlContent string) []Event {
	t.Helper()
	var events []Event
	err := Tokenize(strings.NewReader(htmlContent), func(ev Event) {
		events = append(events, ev)
	})
	require.NoError(t, err)
	return events
}

func TestTokenize_EventOrder(t *testing.T) {
	events := collect(t, `<!DOCTYPE html><!-- note --><TR class="x"><td>a&amp;b</td></TR>`)

	expected := []Event{
		{Kind: StartTag, Tag: "tr"},
		{Kind: StartTag, Tag: "td"},
		{Kind: Text, Data: "a&b"},
		{Kind: EndTag, Tag: "td"},
		{Kind: EndTag, Tag: "tr"},
	}
	assert.Equal(t, expected, events)
}

func TestTokenize_SelfClosingTag(t *testing.T) {
	events := collect(t, `<td/>`)

	assert.Equal(t, []Event{
		{Kind: StartTag, Tag: "td"},
		{Kind: EndTag, Tag: "td"},
	}, events)
}

func TestTokenize_RawTextTags(t *testing.T) {
	events := collect(t, `<noscript><td>a</td></noscript><script><td></script>`)

	assert.Equal(t, []Event{
		{Kind: StartTag, Tag: "noscript"},
		{Kind: StartTag, Tag: "td"},
		{Kind: Text, Data: "a"},
		{Kind: EndTag, Tag: "td"},
		{Kind: EndTag, Tag: "noscript"},
		{Kind: StartTag, Tag: "script"},
		{Kind: Text, Data: "<td>"},
		{Kind: EndTag, Tag: "script"},
	}, events)
}

func TestTokenize_Empty(t *testing.T) {
	assert.Empty(t, collect(t, ""))
}

func TestEventKind_String(t *testing.T) {
	tests := []struct {
		kind     EventKind
		expected string
	}{
		{StartTag, "start"},
		{EndTag, "end"},
		{Text, "text"},
		{EventKind(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.kind.String())
	}
}
