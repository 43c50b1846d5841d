// Package match implements the identifier matchers: the token-path tree over
// known client identifiers, the ordered heuristic fallback rules, and the
// name-hint keyword tables.
package match

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/teklink/devid/internal/common"
	"github.com/teklink/devid/internal/model"
)

// TableNode is one entry of the static identifier table: either a leaf
// resolving to a family, or a branch keyed by the next token. Exactly one of
// the two fields may be set.
type TableNode struct {
	Children map[string]TableNode
	Family   model.Family
}

func leaf(f model.Family) TableNode { return TableNode{Family: f} }

func branch(children map[string]TableNode) TableNode { return TableNode{Children: children} }

// node is the built, immutable form of a TableNode.
type node struct {
	children map[string]*node
	family   model.Family
}

func (n *node) leaf() bool { return n.children == nil }

// Tree resolves a device family from a client identifier string by walking
// token prefixes. It is built once at startup and read-only afterwards.
type Tree struct {
	root map[string]*node
}

// NewTree builds the tree from the default identifier table plus the given
// extension entries.
func NewTree(extensions []model.Extension) (*Tree, error) {
	return NewTreeFromTable(deviceTable, extensions)
}

// NewTreeFromTable builds a tree from an explicit table. Extension paths are
// merged create-if-missing; a collision with an existing value overwrites it.
// Malformed table or extension data is the one startup-time error this
// package can produce.
func NewTreeFromTable(table map[string]TableNode, extensions []model.Extension) (*Tree, error) {
	root := make(map[string]*node, len(table))
	for token, tn := range table {
		built, err := buildNode(token, tn)
		if err != nil {
			return nil, err
		}
		root[token] = built
	}

	t := &Tree{root: root}
	for _, ext := range extensions {
		if err := t.merge(ext); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func buildNode(token string, tn TableNode) (*node, error) {
	if tn.Family != "" && tn.Children != nil {
		return nil, fmt.Errorf("%w: identifier table entry %q is both leaf and branch", common.ErrBadExtension, token)
	}
	if tn.Family == "" && tn.Children == nil {
		return nil, fmt.Errorf("%w: identifier table entry %q has no value", common.ErrBadExtension, token)
	}
	if tn.Family != "" {
		return &node{family: tn.Family}, nil
	}
	children := make(map[string]*node, len(tn.Children))
	for tok, child := range tn.Children {
		built, err := buildNode(token+"."+tok, child)
		if err != nil {
			return nil, err
		}
		children[tok] = built
	}
	return &node{children: children}, nil
}

// merge grafts one extension entry onto the tree, creating intermediate
// branches as needed. A leaf sitting on the path is replaced by a fresh
// branch; the final token overwrites whatever is there.
func (t *Tree) merge(ext model.Extension) error {
	if len(ext.Path) == 0 {
		return fmt.Errorf("%w: empty path", common.ErrBadExtension)
	}
	if ext.Family == "" {
		return fmt.Errorf("%w: entry %v has no family", common.ErrBadExtension, ext.Path)
	}

	first := strings.ToLower(ext.Path[0])
	if len(ext.Path) == 1 {
		t.root[first] = &node{family: ext.Family}
		return nil
	}

	cur := t.root[first]
	if cur == nil || cur.leaf() {
		cur = &node{children: make(map[string]*node)}
		t.root[first] = cur
	}
	for i := 1; i < len(ext.Path)-1; i++ {
		token := strings.ToLower(ext.Path[i])
		next := cur.children[token]
		if next == nil || next.leaf() {
			next = &node{children: make(map[string]*node)}
			cur.children[token] = next
		}
		cur = next
	}
	last := strings.ToLower(ext.Path[len(ext.Path)-1])
	cur.children[last] = &node{family: ext.Family}
	return nil
}

// tokenSplit breaks an identifier on any run of characters that is not a
// letter, digit, dot, or colon.
var tokenSplit = regexp.MustCompile(`[^a-z0-9.:]+`)

func tokenize(raw string) []string {
	u := strings.ToLower(strings.TrimSpace(raw))
	if u == "" {
		return nil
	}
	parts := tokenSplit.Split(u, -1)
	tokens := parts[:0]
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// Lookup resolves a family from the identifier string. The walk consumes one
// token per level; reaching a leaf resolves immediately even with tokens left
// over, and a missing child aborts the walk.
func (t *Tree) Lookup(identifier string) (model.Family, bool) {
	tokens := tokenize(identifier)
	if len(tokens) == 0 {
		return "", false
	}

	n := t.root[tokens[0]]
	if n == nil {
		return "", false
	}
	for i := 1; i < len(tokens) && n != nil && !n.leaf(); i++ {
		n = n.children[tokens[i]]
	}
	if n != nil && n.leaf() {
		return n.family, true
	}
	return "", false
}
