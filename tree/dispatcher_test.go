package tree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-html5/tokenizer"
)

func run(t *testing.T, src string) *Dispatcher {
	t.Helper()
	z := tokenizer.NewTokenizer([]byte(src), tokenizer.Options{})
	d := NewDispatcher(z, nil)
	d.Run()
	return d
}

func TestDispatcherBasicDocumentStructure(t *testing.T) {
	d := run(t, "<html><head><title>hi</title></head><body><p>x</p></body></html>")
	require.Equal(t, AfterAfterBodyIM, d.Mode())
}

func TestDispatcherSwitchesContentModelForTitle(t *testing.T) {
	z := tokenizer.NewTokenizer([]byte("<title><b></title>"), tokenizer.Options{})
	d := NewDispatcher(z, nil)

	// Consume the <title> start tag; the dispatcher must switch the
	// tokenizer into RCDATA before "<b>" is tokenized, or it would be
	// parsed as a nested start tag instead of literal RCDATA text.
	tok := z.Next()
	require.Equal(t, tokenizer.StartTagToken, tok.Type)
	require.Equal(t, "title", tok.Data)
	d.ConsumeToken(tok)

	for _, want := range "<b>" {
		tok = z.Next()
		require.Equal(t, tokenizer.CharacterToken, tok.Type)
		require.Equal(t, want, tok.Rune)
	}

	tok = z.Next()
	require.Equal(t, tokenizer.EndTagToken, tok.Type)
	require.Equal(t, "title", tok.Data)
}

func TestDispatcherVoidElementsAreNotPushed(t *testing.T) {
	d := run(t, "<html><body><br><img src=x></body></html>")
	for _, n := range d.Stack() {
		require.NotEqual(t, "br", n.Data)
		require.NotEqual(t, "img", n.Data)
	}
}

func TestDispatcherSelectInTableResetsOnClose(t *testing.T) {
	z := tokenizer.NewTokenizer([]byte("<table><tr><td><select><option>x</option></select>"), tokenizer.Options{})
	d := NewDispatcher(z, nil)
	d.Run()
	// After </select> pops the select element, td is the top of the
	// stack again; Reset should have put the dispatcher back in
	// InCellIM, leaving the InSelectInTableIM it was in while select
	// was open.
	require.Equal(t, InCellIM, d.Mode())
}

func TestDispatcherTemplateTracksModeStack(t *testing.T) {
	d := run(t, "<template><table></table></template>")
	require.Empty(t, d.templateModes)
}

func TestDispatcherFragmentContextSeedsStack(t *testing.T) {
	z := tokenizer.NewTokenizer([]byte("<option>x</option>"), tokenizer.Options{})
	d := NewFragmentDispatcher(z, NewNode("select"), nil)
	require.Equal(t, InSelectIM, d.Mode())
}
