package schirmwerk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderTexts(strips []Strip) []string {
	texts := make([]string, len(strips))
	for i, strip := range strips {
		texts[i] = strip.Text()
	}
	return texts
}

func TestContentRenderNoWrap(t *testing.T) {
	content := NewContent("short\na longer line")
	strips := content.Render(0, RenderOptions{Wrap: WrapNone})
	assert.Equal(t, []string{"short", "a longer line"}, renderTexts(strips))
	assert.Equal(t, 13, content.Width())
}

func TestContentRenderWordWrap(t *testing.T) {
	content := NewContent("the quick brown fox")
	strips := content.Render(10, RenderOptions{Wrap: WrapWord})
	assert.Equal(t, []string{"the quick ", "brown fox "}, renderTexts(strips))
	for _, strip := range strips {
		assert.Equal(t, 10, strip.CellLength())
	}
}

func TestContentRenderWordWrapFoldsLongWords(t *testing.T) {
	content := NewContent("ab extraordinarily cd")
	strips := content.Render(6, RenderOptions{Wrap: WrapWord, Overflow: OverflowFold})
	for _, strip := range strips {
		assert.Equal(t, 6, strip.CellLength())
	}
	// Every character of the long word must survive folding.
	var all string
	for _, text := range renderTexts(strips) {
		all += text
	}
	assert.Contains(t, all, "extrao")
	assert.Contains(t, all, "rdinar")
}

func TestContentRenderCharWrap(t *testing.T) {
	content := NewContent("abcdefgh")
	strips := content.Render(3, RenderOptions{Wrap: WrapChar})
	assert.Equal(t, []string{"abc", "def", "gh "}, renderTexts(strips))
}

func TestContentRenderOverflow(t *testing.T) {
	content := NewContent("a very long line of text")

	t.Run("Clip", func(t *testing.T) {
		strips := ContentFromStrips(
			NewContent("a very long line of text").Render(0, RenderOptions{Wrap: WrapNone}),
		).Render(6, RenderOptions{Wrap: WrapWord, Overflow: OverflowClip})
		assert.Equal(t, "a very", strips[0].Text())
	})

	t.Run("Ellipsis", func(t *testing.T) {
		strips := ContentFromStrips(
			content.Render(0, RenderOptions{Wrap: WrapNone}),
		).Render(7, RenderOptions{Wrap: WrapWord, Overflow: OverflowEllipsis})
		text := strips[0].Text()
		assert.Equal(t, 7, strips[0].CellLength())
		assert.Equal(t, "…", string([]rune(text)[len([]rune(text))-1]))
	})
}

func TestContentRenderAlign(t *testing.T) {
	content := NewContent("hi")

	right := content.Render(6, RenderOptions{Wrap: WrapWord, Align: AlignTextRight})
	assert.Equal(t, "    hi", right[0].Text())

	center := content.Render(6, RenderOptions{Wrap: WrapWord, Align: AlignTextCenter})
	assert.Equal(t, "  hi  ", center[0].Text())
}

func TestContentRenderEmpty(t *testing.T) {
	strips := NewContent("").Render(4, RenderOptions{Wrap: WrapWord})
	require.Len(t, strips, 1)
	assert.Equal(t, 4, strips[0].CellLength())
}

func TestContentStyledRender(t *testing.T) {
	content, err := ContentFromMarkup("aa[b]bb[/b]cc")
	require.NoError(t, err)
	strips := content.Render(6, RenderOptions{Wrap: WrapWord})
	require.Len(t, strips, 1)

	segments := strips[0].Segments()
	require.Len(t, segments, 3)
	assert.Equal(t, "bb", segments[1].Text)
	assert.Equal(t, TriOn, segments[1].Style.Bold)
	assert.Equal(t, TriUnset, segments[0].Style.Bold)
}

func TestMustContentDegrades(t *testing.T) {
	content := MustContent("[broken")
	assert.Equal(t, "[broken", content.Text())
	require.Len(t, content.Spans(), 1)
	assert.Equal(t, TriOn, content.Spans()[0].Style.Underline)
}
