package schirmwerk

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMarkupBasic(t *testing.T) {
	content, err := ParseMarkup("Hello, [b]world[/b]!", nil)
	require.NoError(t, err)

	assert.Equal(t, "Hello, world!", content.Text())
	assert.Equal(t, 13, content.Width())

	spans := content.Spans()
	require.Len(t, spans, 1)
	assert.Equal(t, "world", content.Text()[spans[0].Start:spans[0].End])
	assert.Equal(t, TriOn, spans[0].Style.Bold)
}

func TestParseMarkupNested(t *testing.T) {
	content, err := ParseMarkup("[b]bold [i]both[/i] bold[/b]", nil)
	require.NoError(t, err)
	require.Len(t, content.Spans(), 2)

	strips := content.Render(0, RenderOptions{Wrap: WrapNone})
	require.Len(t, strips, 1)

	// The "both" run must carry both attributes.
	found := false
	for _, segment := range strips[0].Segments() {
		if segment.Text == "both" {
			found = true
			assert.Equal(t, TriOn, segment.Style.Bold)
			assert.Equal(t, TriOn, segment.Style.Italic)
		}
	}
	assert.True(t, found, "no segment for the nested run")
}

func TestParseMarkupAnonymousClose(t *testing.T) {
	content, err := ParseMarkup("[u]under[/] plain", nil)
	require.NoError(t, err)
	require.Len(t, content.Spans(), 1)
	assert.Equal(t, TriOn, content.Spans()[0].Style.Underline)
}

func TestParseMarkupEscape(t *testing.T) {
	content, err := ParseMarkup(`\[not a tag]`, nil)
	require.NoError(t, err)
	assert.Equal(t, "[not a tag]", content.Text())
	assert.Empty(t, content.Spans())
}

func TestParseMarkupVariables(t *testing.T) {
	content, err := ParseMarkup("Hello, $name!", map[string]string{"name": "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "Hello, Ada!", content.Text())

	// Unknown variables stay verbatim.
	kept, err := ParseMarkup("cost: $price", nil)
	require.NoError(t, err)
	assert.Equal(t, "cost: $price", kept.Text())
}

func TestParseMarkupActions(t *testing.T) {
	content, err := ParseMarkup("[@click=app.quit]quit[/]", nil)
	require.NoError(t, err)
	require.Len(t, content.Spans(), 1)
	assert.Equal(t, "app.quit", content.Spans()[0].Style.Meta["@click"])
}

func TestParseMarkupColors(t *testing.T) {
	content, err := ParseMarkup("[red]r[/] [fg=#00ff00,bg=blue]g[/]", nil)
	require.NoError(t, err)
	require.Len(t, content.Spans(), 2)
	assert.Equal(t, uint8(255), content.Spans()[0].Style.FG.R)
	assert.Equal(t, uint8(255), content.Spans()[1].Style.FG.G)
	assert.Equal(t, uint8(255), content.Spans()[1].Style.BG.B)
}

func TestParseMarkupErrors(t *testing.T) {
	t.Run("Unterminated tag", func(t *testing.T) {
		_, err := ParseMarkup("[b]never closed", nil)
		assert.True(t, errors.Is(err, ErrMarkup), "%v", err)
	})

	t.Run("Unterminated bracket", func(t *testing.T) {
		_, err := ParseMarkup("broken [b", nil)
		assert.True(t, errors.Is(err, ErrMarkup), "%v", err)
	})

	t.Run("Stray close", func(t *testing.T) {
		_, err := ParseMarkup("text[/b]", nil)
		assert.True(t, errors.Is(err, ErrMarkup), "%v", err)
	})

	t.Run("Unknown token", func(t *testing.T) {
		_, err := ParseMarkup("[blorp]x[/]", nil)
		assert.True(t, errors.Is(err, ErrMarkup), "%v", err)
	})

	t.Run("Nesting depth", func(t *testing.T) {
		deep := strings.Repeat("[b]", maxMarkupDepth+1)
		_, err := ParseMarkup(deep+"x", nil)
		assert.True(t, errors.Is(err, ErrMarkup), "%v", err)
	})
}

func TestMarkupRoundTrip(t *testing.T) {
	inputs := []string{
		"Hello, [b]world[/b]!",
		"[b]bold [i]both[/i] bold[/b]",
		"plain text",
		`escaped \[bracket]`,
	}
	for _, input := range inputs {
		first, err := ParseMarkup(input, nil)
		require.NoError(t, err, input)
		second, err := ParseMarkup(first.Markup(), nil)
		require.NoError(t, err, first.Markup())

		assert.Equal(t, first.Text(), second.Text(), input)
		require.Equal(t, len(first.Spans()), len(second.Spans()), input)
		for i := range first.Spans() {
			assert.Equal(t, first.Spans()[i].Start, second.Spans()[i].Start, input)
			assert.Equal(t, first.Spans()[i].End, second.Spans()[i].End, input)
			assert.True(t, first.Spans()[i].Style.Equal(second.Spans()[i].Style), input)
		}
	}
}
