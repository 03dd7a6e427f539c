package template

import (
	"fmt"
	"regexp"
	"strings"
)

// Helper decides whether a conditional block is included. Args are the raw
// block arguments: quoted strings resolve to literals, everything else is
// looked up in the context. Helpers never fail; an absent key is falsy.
type Helper func(ctx RenderContext, args []string) bool

// identifierPattern matches a bare or dotted substitution key.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)

// Renderer substitutes {{key}} tokens and evaluates conditional blocks
// against a flat RenderContext.
//
// Substitution tokens whose key is absent from the context — and any
// {{...}} text that is not a valid key or block tag at all — are left
// verbatim in the output: template corpora legitimately contain literal
// braces (CSS, JSX, GitHub Actions syntax) that must survive rendering.
//
// Block helpers gate regions of the template:
//
//	{{#eq database "sqlite"}} ... {{/eq}}
//	{{#and auth git}} ... {{/and}}
//	{{#or database backend}} ... {{/or}}
//	{{#contains addons "pwa"}} ... {{/contains}}
//
// Blocks nest. An unbalanced or unknown block tag is a *SyntaxError; a
// missing key never is. The helper set is injected at construction so
// concurrent runs and tests never share mutable registry state.
type Renderer struct {
	helpers map[string]Helper
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithHelper registers an additional block helper under the given name,
// replacing any default helper with the same name.
func WithHelper(name string, h Helper) RendererOption {
	return func(r *Renderer) {
		r.helpers[name] = h
	}
}

// NewRenderer creates a Renderer with the default helper set
// (eq, and, or, contains) plus any options.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		helpers: map[string]Helper{
			"eq":       helperEq,
			"and":      helperAnd,
			"or":       helperOr,
			"contains": helperContains,
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render substitutes tokens and evaluates blocks in text. It is a pure
// function: identical arguments always produce identical output and no
// I/O is performed. The only failure mode is malformed block syntax.
func (r *Renderer) Render(text string, ctx RenderContext) (string, error) {
	tokens := tokenize(text)
	nodes, rest, err := parseNodes(tokens, r.helpers, "")
	if err != nil {
		return "", err
	}
	if len(rest) != 0 {
		// parseNodes only stops early on a close tag; with no open block
		// pending, any close tag here is unbalanced.
		return "", &SyntaxError{Detail: fmt.Sprintf("unexpected closing tag %q", rest[0].raw)}
	}

	var sb strings.Builder
	renderNodes(&sb, nodes, ctx, r.helpers)
	return sb.String(), nil
}

// --- tokenization ---

type tokenKind int

const (
	tokenText tokenKind = iota
	tokenTag
)

type token struct {
	kind    tokenKind
	raw     string // original text including braces for tags
	content string // trimmed inner content for tags
}

// tokenize splits text into literal runs and {{...}} tags. A lone "{{"
// without a closing "}}" is literal text, not a tag.
func tokenize(text string) []token {
	var tokens []token
	for {
		open := strings.Index(text, "{{")
		if open < 0 {
			break
		}
		close := strings.Index(text[open:], "}}")
		if close < 0 {
			break
		}
		close += open

		if open > 0 {
			tokens = append(tokens, token{kind: tokenText, raw: text[:open]})
		}
		raw := text[open : close+2]
		tokens = append(tokens, token{
			kind:    tokenTag,
			raw:     raw,
			content: strings.TrimSpace(raw[2 : len(raw)-2]),
		})
		text = text[close+2:]
	}
	if text != "" {
		tokens = append(tokens, token{kind: tokenText, raw: text})
	}
	return tokens
}

// --- parsing ---

type nodeKind int

const (
	nodeText nodeKind = iota
	nodeSubst
	nodeBlock
)

type node struct {
	kind     nodeKind
	text     string   // nodeText: literal; nodeSubst: raw tag for verbatim fallback
	key      string   // nodeSubst: context key
	helper   string   // nodeBlock: helper name
	args     []string // nodeBlock: raw arguments
	children []node   // nodeBlock
}

// parseNodes consumes tokens until the closing tag of openBlock (or the end
// of input when openBlock is empty). It returns the parsed nodes and the
// remaining tokens starting at the close tag it stopped on.
func parseNodes(tokens []token, helpers map[string]Helper, openBlock string) ([]node, []token, error) {
	var nodes []node

	for len(tokens) > 0 {
		tok := tokens[0]

		if tok.kind == tokenText {
			nodes = append(nodes, node{kind: nodeText, text: tok.raw})
			tokens = tokens[1:]
			continue
		}

		switch {
		case strings.HasPrefix(tok.content, "#"):
			name, args, err := parseBlockTag(tok, helpers)
			if err != nil {
				return nil, nil, err
			}
			children, rest, err := parseNodes(tokens[1:], helpers, name)
			if err != nil {
				return nil, nil, err
			}
			if len(rest) == 0 {
				return nil, nil, &SyntaxError{Detail: fmt.Sprintf("unclosed block %q", tok.raw)}
			}
			// rest[0] is the matching close tag
			nodes = append(nodes, node{kind: nodeBlock, helper: name, args: args, children: children})
			tokens = rest[1:]

		case strings.HasPrefix(tok.content, "/"):
			name := strings.TrimSpace(tok.content[1:])
			if openBlock == "" {
				return nil, nil, &SyntaxError{Detail: fmt.Sprintf("unexpected closing tag %q", tok.raw)}
			}
			if name != openBlock {
				return nil, nil, &SyntaxError{Detail: fmt.Sprintf("closing tag %q does not match open block %q", tok.raw, openBlock)}
			}
			return nodes, tokens, nil

		default:
			if identifierPattern.MatchString(tok.content) {
				nodes = append(nodes, node{kind: nodeSubst, key: tok.content, text: tok.raw})
			} else {
				// Literal braces unrelated to substitution pass through.
				nodes = append(nodes, node{kind: nodeText, text: tok.raw})
			}
			tokens = tokens[1:]
		}
	}

	if openBlock != "" {
		return nil, nil, &SyntaxError{Detail: fmt.Sprintf("unclosed block {{#%s}}", openBlock)}
	}
	return nodes, nil, nil
}

// parseBlockTag splits an open tag into helper name and arguments.
func parseBlockTag(tok token, helpers map[string]Helper) (string, []string, error) {
	fields := splitArgs(tok.content[1:])
	if len(fields) == 0 || fields[0] == "" {
		return "", nil, &SyntaxError{Detail: fmt.Sprintf("empty block tag %q", tok.raw)}
	}
	name := fields[0]
	if _, ok := helpers[name]; !ok {
		return "", nil, &SyntaxError{Detail: fmt.Sprintf("unknown block helper %q in %q", name, tok.raw)}
	}
	if len(fields) < 2 {
		return "", nil, &SyntaxError{Detail: fmt.Sprintf("block %q requires at least one argument", tok.raw)}
	}
	return name, fields[1:], nil
}

// splitArgs splits a tag body on whitespace, keeping double-quoted strings
// (including embedded spaces) as single arguments with quotes preserved.
func splitArgs(s string) []string {
	var args []string
	var cur strings.Builder
	inQuote := false

	for _, r := range s {
		switch {
		case r == '"':
			inQuote = !inQuote
			cur.WriteRune(r)
		case !inQuote && (r == ' ' || r == '\t' || r == '\n'):
			if cur.Len() > 0 {
				args = append(args, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		args = append(args, cur.String())
	}
	return args
}

// --- rendering ---

func renderNodes(sb *strings.Builder, nodes []node, ctx RenderContext, helpers map[string]Helper) {
	for _, n := range nodes {
		switch n.kind {
		case nodeText:
			sb.WriteString(n.text)
		case nodeSubst:
			if v, ok := ctx.Lookup(n.key); ok {
				sb.WriteString(stringify(v))
			} else {
				sb.WriteString(n.text) // unresolved token left verbatim
			}
		case nodeBlock:
			if helpers[n.helper](ctx, n.args) {
				renderNodes(sb, n.children, ctx, helpers)
			}
		}
	}
}

// resolveArg evaluates one block argument: a double-quoted argument is a
// string literal; anything else is a context lookup.
func resolveArg(ctx RenderContext, arg string) (any, bool) {
	if len(arg) >= 2 && strings.HasPrefix(arg, `"`) && strings.HasSuffix(arg, `"`) {
		return arg[1 : len(arg)-1], true
	}
	return ctx.Lookup(arg)
}

// truthy reports whether a resolved value enables a block. Absent keys,
// false booleans, empty strings, the "none" enum value, "false", and empty
// lists are all falsy.
func truthy(v any, found bool) bool {
	if !found {
		return false
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val != "" && val != "none" && val != "false"
	case []string:
		return len(val) > 0
	case []any:
		return len(val) > 0
	case nil:
		return false
	}
	return true
}

// stringify converts a context value to its template output form.
func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case []string:
		return strings.Join(val, ",")
	default:
		return fmt.Sprintf("%v", val)
	}
}

// --- default helpers ---

// helperEq includes the block when both arguments stringify equally.
// A missing key never equals anything, including another missing key.
func helperEq(ctx RenderContext, args []string) bool {
	if len(args) != 2 {
		return false
	}
	a, okA := resolveArg(ctx, args[0])
	b, okB := resolveArg(ctx, args[1])
	if !okA || !okB {
		return false
	}
	return stringify(a) == stringify(b)
}

// helperAnd includes the block when every argument is truthy. Short-circuits.
func helperAnd(ctx RenderContext, args []string) bool {
	for _, arg := range args {
		v, ok := resolveArg(ctx, arg)
		if !truthy(v, ok) {
			return false
		}
	}
	return len(args) > 0
}

// helperOr includes the block when any argument is truthy. Short-circuits.
func helperOr(ctx RenderContext, args []string) bool {
	for _, arg := range args {
		v, ok := resolveArg(ctx, arg)
		if truthy(v, ok) {
			return true
		}
	}
	return false
}

// helperContains includes the block when the first argument resolves to a
// list (or comma-separated string) containing the second argument.
func helperContains(ctx RenderContext, args []string) bool {
	if len(args) != 2 {
		return false
	}
	list, okList := resolveArg(ctx, args[0])
	needle, okNeedle := resolveArg(ctx, args[1])
	if !okList || !okNeedle {
		return false
	}

	want := stringify(needle)
	switch vals := list.(type) {
	case []string:
		for _, v := range vals {
			if v == want {
				return true
			}
		}
	case []any:
		for _, v := range vals {
			if stringify(v) == want {
				return true
			}
		}
	case string:
		for _, v := range strings.Split(vals, ",") {
			if strings.TrimSpace(v) == want {
				return true
			}
		}
	}
	return false
}
