package tree

import (
	"log/slog"

	"github.com/go-html5/tokenizer"
)

// voidElements names HTML elements that never have an end tag and are
// never pushed onto the open-element stack (HTML Standard §13.1.2,
// "elements/void elements").
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// contentModelElements maps a start tag name to the ContentModel the
// tokenizer must switch into once the tag is pushed.
var contentModelElements = map[string]tokenizer.ContentModel{
	"title":     tokenizer.RCDATA,
	"textarea":  tokenizer.RCDATA,
	"style":     tokenizer.RAWTEXT,
	"xmp":       tokenizer.RAWTEXT,
	"iframe":    tokenizer.RAWTEXT,
	"noembed":   tokenizer.RAWTEXT,
	"noframes":  tokenizer.RAWTEXT,
	"script":    tokenizer.ScriptData,
	"plaintext": tokenizer.PLAINTEXT,
}

// Dispatcher consumes the token stream from a tokenizer.Tokenizer and
// drives the open-element stack and insertion mode. Full
// tree-construction — the per-insertion-mode rules that decide how
// each token mutates a DOM — is an external collaborator; Dispatcher
// owns the stack, the mode, and the hand-off to the tokenizer's
// content model, which is enough to exercise ResetInsertionMode
// against real documents.
type Dispatcher struct {
	tok *tokenizer.Tokenizer

	stack         nodeStack
	mode          InsertionMode
	templateModes []InsertionMode
	headCreated   bool
	fragment      bool
	context       *Node

	// lastTagAcked tracks whether the dispatcher acknowledged the most
	// recently pushed self-closing tag.
	lastTagAcked bool

	logger *slog.Logger
}

// NewDispatcher returns a Dispatcher that pulls tokens from tok. A nil
// logger defaults to slog.Default().
func NewDispatcher(tok *tokenizer.Tokenizer, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{tok: tok, mode: InitialIM, logger: logger}
}

// NewFragmentDispatcher returns a Dispatcher configured for fragment
// parsing into contextElement. Reset immediately computes the initial
// insertion mode per the
// fragment-parsing algorithm's step that primes the stack with
// contextElement before any tokens are consumed.
func NewFragmentDispatcher(tok *tokenizer.Tokenizer, contextElement *Node, logger *slog.Logger) *Dispatcher {
	d := NewDispatcher(tok, logger)
	d.fragment = true
	d.context = contextElement
	d.stack.push(contextElement)
	if contextElement.IsHead() {
		d.headCreated = true
	}
	d.Reset()
	return d
}

// Mode returns the dispatcher's current insertion mode.
func (d *Dispatcher) Mode() InsertionMode { return d.mode }

// Stack returns the open-element stack, bottom element first. The
// returned slice is owned by the Dispatcher and must not be retained
// across further calls to Run/ConsumeToken.
func (d *Dispatcher) Stack() []*Node { return d.stack }

// Reset recomputes the insertion mode from the current stack by
// delegating to ResetInsertionMode. Called whenever the open-element
// stack changes in a way that can change the current insertion mode.
func (d *Dispatcher) Reset() {
	d.mode = ResetInsertionMode(d.stack, d.context, d.fragment, d.templateModes, d.headCreated)
}

// SwitchContentModel forwards to the tokenizer, matching the
// Tokenizer↔Dispatcher interface.
func (d *Dispatcher) SwitchContentModel(m tokenizer.ContentModel) {
	d.tok.SetContentModel(m)
}

// AcknowledgeSelfClosing forwards the acknowledgement to the
// tokenizer and records it, so startTag can log an un-acknowledged
// self-closing flag at Debug level.
func (d *Dispatcher) AcknowledgeSelfClosing() {
	d.lastTagAcked = true
	d.tok.AcknowledgeSelfClosing()
}

// Run drains the tokenizer to EndOfFile, dispatching every token
// through ConsumeToken. The final open-element stack keeps html and
// body, which their own end tags never pop, plus any element the
// document left unclosed; neither is a fatal condition.
func (d *Dispatcher) Run() {
	for {
		t := d.tok.Next()
		d.ConsumeToken(t)
		if t.Type == tokenizer.EndOfFileTokenMarker {
			return
		}
	}
}

// ConsumeToken feeds a single token through the dispatcher. It
// maintains the open-element stack (pushing start tags, popping
// matching end tags), advances the insertion mode across the
// document-structure boundaries the Standard defines purely in terms
// of element names (html/head/body/frameset), and triggers
// SwitchContentModel and Reset at the relevant points. Per-mode
// content rules beyond stack bookkeeping are delegated to an external
// tree-construction collaborator and are not reproduced here.
func (d *Dispatcher) ConsumeToken(t tokenizer.Token) {
	switch t.Type {
	case tokenizer.StartTagToken:
		d.startTag(t)
	case tokenizer.EndTagToken:
		d.endTag(t)
	case tokenizer.DoctypeToken:
		if d.mode == InitialIM {
			d.mode = BeforeHTMLIM
		}
	case tokenizer.EndOfFileTokenMarker:
		// Tree construction's per-mode EOF handling (e.g. emitting
		// implied end tags) is the external collaborator's job.
	}
}

// startTag pushes name onto the open-element stack (unless it's void),
// records the head-created flag and template-mode stack where
// relevant, switches the tokenizer's content model where required, and
// then re-derives the insertion mode from the resulting stack.
// Re-deriving on every push (rather than hand-coding each insertion
// mode's transition, which is the tree constructor's job) is what
// keeps this "surface only" dispatcher's Mode() accurate across
// documents that don't open with a conventional <html><head><body>
// skeleton, such as a bare fragment of table markup.
func (d *Dispatcher) startTag(t tokenizer.Token) {
	d.lastTagAcked = false
	name := t.Data

	switch name {
	case "html":
		if len(d.stack) == 0 {
			d.stack.push(NewNode(name))
		}
	case "head":
		d.stack.push(NewNode(name))
		d.headCreated = true
	case "template":
		d.stack.push(NewNode(name))
		d.templateModes = append(d.templateModes, InTemplateIM)
	default:
		if !voidElements[name] {
			d.stack.push(NewNode(name))
		}
	}

	if t.SelfClosing {
		// Void elements honor the flag; on anything else it has no
		// effect, which the Standard treats as a parse error
		// (non-void-html-element-start-tag-with-trailing-solidus).
		if voidElements[name] {
			d.AcknowledgeSelfClosing()
		}
		if !d.lastTagAcked {
			d.logger.Debug("self-closing flag not acknowledged", "name", name)
		}
	}

	if cm, ok := contentModelElements[name]; ok {
		d.SwitchContentModel(cm)
	}

	if len(d.stack) > 0 {
		d.Reset()
	}
}

// endTag pops the innermost matching element off the stack. body and
// html are special per the Standard: neither is ever popped by its own
// end tag (they stay open until the document ends), so those two
// names only flip the dispatcher between InBodyIM/AfterBodyIM/
// AfterAfterBodyIM, a sequence that can't be derived purely from the
// stack shape (the stack looks identical in all three). Every other
// name pops through the stack and re-derives the mode via Reset.
func (d *Dispatcher) endTag(t tokenizer.Token) {
	name := t.Data

	switch name {
	case "body":
		if d.mode != AfterBodyIM {
			d.mode = AfterBodyIM
		}
		return
	case "html":
		if d.mode == AfterBodyIM {
			d.mode = AfterAfterBodyIM
		}
		return
	case "template":
		if d.popUntil(func(n *Node) bool { return n.IsTemplate() }) {
			if len(d.templateModes) > 0 {
				d.templateModes = d.templateModes[:len(d.templateModes)-1]
			}
		}
	default:
		if !d.popUntil(func(n *Node) bool { return n != nil && n.Data == name }) {
			d.logger.Debug("unmatched end tag", "name", name)
		}
	}

	if len(d.stack) > 0 {
		d.Reset()
	}
}

// popUntil pops elements off the stack until match(top) is true,
// inclusive. It reports whether a match was found; if not, the stack
// is left unchanged rather than popping past a missing element.
func (d *Dispatcher) popUntil(match func(*Node) bool) bool {
	for i := len(d.stack) - 1; i >= 0; i-- {
		if match(d.stack[i]) {
			d.stack = d.stack[:i]
			return true
		}
	}
	return false
}
