package comments

import (
	"corpusdash/internal/corpus"
)

// Node is one comment and its replies in source order.
type Node struct {
	Row     *corpus.Row
	Replies []*Node
}

// Tree is a video's comment forest. Roots are comments whose parent id is
// empty or the root sentinel; every one of them is a top-level thread.
// Platforms without reply nesting yield flat root lists, since their rows
// never reference another comment as parent.
type Tree struct {
	VideoID string
	Roots   []*Node

	byID map[string]*Node
}

// BuildTree indexes a video's comment rows once by parent id. Rows without
// comment data are skipped. A reply whose parent is missing from the table
// becomes a root rather than being dropped.
func BuildTree(t *corpus.Table) *Tree {
	tree := &Tree{byID: make(map[string]*Node)}
	if t.Len() > 0 {
		tree.VideoID = t.Rows[0].VideoID
	}

	nodes := make([]*Node, 0, t.Len())
	for i := range t.Rows {
		row := &t.Rows[i]
		if !row.HasComment() {
			continue
		}
		node := &Node{Row: row}
		nodes = append(nodes, node)
		tree.byID[row.CommentID] = node
	}

	for _, node := range nodes {
		if node.Row.IsRootComment() {
			tree.Roots = append(tree.Roots, node)
			continue
		}
		parent, ok := tree.byID[node.Row.ParentCommentID]
		if !ok {
			tree.Roots = append(tree.Roots, node)
			continue
		}
		parent.Replies = append(parent.Replies, node)
	}
	return tree
}

// Lookup returns the node for a comment id.
func (t *Tree) Lookup(commentID string) (*Node, bool) {
	node, ok := t.byID[commentID]
	return node, ok
}

// Size returns the total number of comments in the tree.
func (t *Tree) Size() int {
	return len(t.byID)
}

// Walk visits every node depth-first, roots in source order, passing the
// nesting depth (roots are depth 0).
func (t *Tree) Walk(visit func(node *Node, depth int)) {
	var walk func(node *Node, depth int)
	walk = func(node *Node, depth int) {
		visit(node, depth)
		for _, reply := range node.Replies {
			walk(reply, depth+1)
		}
	}
	for _, root := range t.Roots {
		walk(root, 0)
	}
}
