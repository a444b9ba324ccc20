package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func node(name string) *Node { return NewNode(name) }

func stackOf(names ...string) []*Node {
	ns := make([]*Node, len(names))
	for i, n := range names {
		ns[i] = node(n)
	}
	return ns
}

// TestResetInsertionModeScenario7 covers a select nested inside a
// table body/row/cell: it selects InSelectInTableIM, not plain
// InSelectIM, because a table ancestor is found before any template
// ancestor while walking up from select.
func TestResetInsertionModeScenario7(t *testing.T) {
	stack := stackOf("html", "body", "table", "tbody", "tr", "td", "select")
	mode := ResetInsertionMode(stack, nil, false, nil, true)
	require.Equal(t, InSelectInTableIM, mode)
}

func TestResetInsertionModeSelectNoTableAncestor(t *testing.T) {
	stack := stackOf("html", "body", "select")
	mode := ResetInsertionMode(stack, nil, false, nil, true)
	require.Equal(t, InSelectIM, mode)
}

func TestResetInsertionModeSelectWithTemplateAncestorWinsOverTable(t *testing.T) {
	// template sits between select and table, and is encountered first
	// while walking up, so it takes precedence over the table further
	// down the stack.
	stack := stackOf("html", "body", "table", "template", "select")
	mode := ResetInsertionMode(stack, nil, false, nil, true)
	require.Equal(t, InSelectIM, mode)
}

func TestResetInsertionModeCell(t *testing.T) {
	stack := stackOf("html", "body", "table", "tbody", "tr", "td")
	require.Equal(t, InCellIM, ResetInsertionMode(stack, nil, false, nil, true))
}

func TestResetInsertionModeCellAsContextIsNotInCell(t *testing.T) {
	// When td/th is the bottom-of-stack fragment context node itself
	// ("last"), the "not last" guard on the td/th branch means it
	// falls through to the final "last -> InBodyIM" rule instead.
	stack := stackOf("td")
	require.Equal(t, InBodyIM, ResetInsertionMode(stack, node("td"), true, nil, true))
}

func TestResetInsertionModeRow(t *testing.T) {
	stack := stackOf("html", "body", "table", "tbody", "tr")
	require.Equal(t, InRowIM, ResetInsertionMode(stack, nil, false, nil, true))
}

func TestResetInsertionModeTableBody(t *testing.T) {
	for _, name := range []string{"tbody", "thead", "tfoot"} {
		stack := stackOf("html", "body", "table", name)
		require.Equal(t, InTableBodyIM, ResetInsertionMode(stack, nil, false, nil, true), name)
	}
}

func TestResetInsertionModeCaption(t *testing.T) {
	stack := stackOf("html", "body", "table", "caption")
	require.Equal(t, InCaptionIM, ResetInsertionMode(stack, nil, false, nil, true))
}

func TestResetInsertionModeColgroup(t *testing.T) {
	stack := stackOf("html", "body", "table", "colgroup")
	require.Equal(t, InColumnGroupIM, ResetInsertionMode(stack, nil, false, nil, true))
}

func TestResetInsertionModeTable(t *testing.T) {
	stack := stackOf("html", "body", "table")
	require.Equal(t, InTableIM, ResetInsertionMode(stack, nil, false, nil, true))
}

func TestResetInsertionModeTemplateUsesTemplateModeStack(t *testing.T) {
	stack := stackOf("html", "template")
	mode := ResetInsertionMode(stack, nil, false, []InsertionMode{InTableIM, InCellIM}, true)
	require.Equal(t, InCellIM, mode)
}

func TestResetInsertionModeTemplateWithEmptyModeStackFallsBackToInBody(t *testing.T) {
	stack := stackOf("html", "template")
	mode := ResetInsertionMode(stack, nil, false, nil, true)
	require.Equal(t, InBodyIM, mode)
}

func TestResetInsertionModeHeadNotLast(t *testing.T) {
	// head is not "last" here (html is below it), so its branch fires
	// instead of falling through to the html branch.
	stack := stackOf("html", "head")
	mode := ResetInsertionMode(stack, nil, false, nil, true)
	require.Equal(t, InHeadIM, mode)
}

func TestResetInsertionModeBody(t *testing.T) {
	stack := stackOf("html", "body")
	require.Equal(t, InBodyIM, ResetInsertionMode(stack, nil, false, nil, true))
}

func TestResetInsertionModeFrameset(t *testing.T) {
	stack := stackOf("html", "frameset")
	require.Equal(t, InFramesetIM, ResetInsertionMode(stack, nil, false, nil, true))
}

func TestResetInsertionModeHTMLBeforeHead(t *testing.T) {
	stack := stackOf("html")
	require.Equal(t, BeforeHeadIM, ResetInsertionMode(stack, nil, false, nil, false))
}

func TestResetInsertionModeHTMLAfterHead(t *testing.T) {
	stack := stackOf("html")
	require.Equal(t, AfterHeadIM, ResetInsertionMode(stack, nil, false, nil, true))
}

// TestResetInsertionModeIsTotal checks that the insertion-mode
// selector is total: on any non-empty stack it returns some mode,
// with InBodyIM as the ultimate fallback for an unrecognized bottom
// element.
func TestResetInsertionModeIsTotal(t *testing.T) {
	stack := stackOf("custom-element")
	require.Equal(t, InBodyIM, ResetInsertionMode(stack, nil, false, nil, true))
}

func TestResetInsertionModeFragmentContextReplacesBottomNode(t *testing.T) {
	// Fragment parsing into a <select> context: the real bottom node
	// on the stack can be anything (it's a synthetic "html" root), but
	// step 1 of the algorithm substitutes the context element for it.
	stack := stackOf("html")
	mode := ResetInsertionMode(stack, node("select"), true, nil, true)
	require.Equal(t, InSelectIM, mode)
}
