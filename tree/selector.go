package tree

// InsertionMode names a tree-construction mode per the HTML Standard's
// "the insertion mode". The dispatcher owns the current mode; this
// package only selects it.
type InsertionMode int

const (
	InitialIM InsertionMode = iota
	BeforeHTMLIM
	BeforeHeadIM
	InHeadIM
	InHeadNoscriptIM
	AfterHeadIM
	InBodyIM
	TextIM
	InTableIM
	InTableTextIM
	InCaptionIM
	InColumnGroupIM
	InTableBodyIM
	InRowIM
	InCellIM
	InSelectIM
	InSelectInTableIM
	InTemplateIM
	AfterBodyIM
	InFramesetIM
	AfterFramesetIM
	AfterAfterBodyIM
	AfterAfterFramesetIM
)

func (m InsertionMode) String() string {
	switch m {
	case InitialIM:
		return "initial"
	case BeforeHTMLIM:
		return "before html"
	case BeforeHeadIM:
		return "before head"
	case InHeadIM:
		return "in head"
	case InHeadNoscriptIM:
		return "in head noscript"
	case AfterHeadIM:
		return "after head"
	case InBodyIM:
		return "in body"
	case TextIM:
		return "text"
	case InTableIM:
		return "in table"
	case InTableTextIM:
		return "in table text"
	case InCaptionIM:
		return "in caption"
	case InColumnGroupIM:
		return "in column group"
	case InTableBodyIM:
		return "in table body"
	case InRowIM:
		return "in row"
	case InCellIM:
		return "in cell"
	case InSelectIM:
		return "in select"
	case InSelectInTableIM:
		return "in select in table"
	case InTemplateIM:
		return "in template"
	case AfterBodyIM:
		return "after body"
	case InFramesetIM:
		return "in frameset"
	case AfterFramesetIM:
		return "after frameset"
	case AfterAfterBodyIM:
		return "after after body"
	case AfterAfterFramesetIM:
		return "after after frameset"
	}
	return "invalid"
}

// ResetInsertionMode implements "reset the insertion mode
// appropriately": a pure, total function of the open-element stack,
// the fragment-parsing context, and the dispatcher's template
// insertion-mode stack.
//
// stack is ordered bottom-to-top (stack[0] is <html>, matching the
// Standard's "starting from the last element in the stack and working
// backwards" when walked from the end). fragmentContext is non-nil
// only when isFragment is true, and stands in for the bottom-most
// stack entry per the algorithm's step 2. templateModes is read
// top-first (templateModes[len-1] is the "current template insertion
// mode"); it is only consulted when the walk reaches a template
// element, and is never mutated here. headElementCreated reports
// whether a head element has ever been created for this document —
// the Standard keys the <html> branch off the parser's head element
// pointer, not off stack membership, since head is routinely popped
// before AfterHeadIM is reached.
func ResetInsertionMode(stack []*Node, fragmentContext *Node, isFragment bool, templateModes []InsertionMode, headElementCreated bool) InsertionMode {
	for i := len(stack) - 1; i >= 0; i-- {
		n := stack[i]
		last := i == 0

		if last && isFragment {
			n = fragmentContext
		}

		switch {
		case n.IsSelect():
			return resetForSelect(stack, i)
		case n.IsCell() && !last:
			return InCellIM
		case n.IsTR():
			return InRowIM
		case n.IsTableSection():
			return InTableBodyIM
		case n.IsCaption():
			return InCaptionIM
		case n.IsColgroup():
			return InColumnGroupIM
		case n.IsTable():
			return InTableIM
		case n.IsTemplate():
			if len(templateModes) == 0 {
				return InBodyIM
			}
			return templateModes[len(templateModes)-1]
		case n.IsHead() && !last:
			return InHeadIM
		case n.IsBody():
			return InBodyIM
		case n.IsFrameset():
			return InFramesetIM
		case n.IsHTML():
			if !headElementCreated {
				return BeforeHeadIM
			}
			return AfterHeadIM
		}

		if last {
			return InBodyIM
		}
	}
	return InBodyIM
}

// resetForSelect implements the "select" branch of step 4 in the
// Standard's algorithm: walk every ancestor of the select element,
// from nearest to the bottom of the stack inclusive, looking for a
// template (return InSelectIM immediately, templates take precedence
// over any table further down) or a table (return InSelectInTableIM).
// Reaching the bottom of the stack without a match falls back to
// InSelectIM.
func resetForSelect(stack []*Node, selectIndex int) InsertionMode {
	for j := selectIndex - 1; j >= 0; j-- {
		switch {
		case stack[j].IsTemplate():
			return InSelectIM
		case stack[j].IsTable():
			return InSelectInTableIM
		}
	}
	return InSelectIM
}
