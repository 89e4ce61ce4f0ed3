package tree

import (
	"github.com/google/uuid"

	"github.com/workloom/sdk/node"
)

// Root is the sentinel parent id under which root-level nodes are bucketed.
// A node whose ParentID is nil, or whose ParentID does not resolve within the
// snapshot, belongs to Root.
var Root = uuid.Nil

// Index holds the relationship lookup structures derived from one node
// snapshot. It is immutable once built: rebuild it from scratch whenever the
// snapshot changes. Building is a single pass over the collection and is
// cheap at the expected scale (tens to low thousands of nodes), so repeated
// rebuilds under rapid updates can always be coalesced to the latest
// snapshot.
type Index struct {
	nodes       []node.Node
	byID        map[uuid.UUID]node.Node
	children    map[uuid.UUID][]node.Node
	hasChildren map[uuid.UUID]bool
}

// Build constructs an Index from an ordered node snapshot.
//
// Children buckets preserve the snapshot's order; they are never sorted.
// Duplicate ids are a data-integrity issue belonging to the upstream
// collaborator: the id map keeps the last occurrence.
func Build(nodes []node.Node) *Index {
	idx := &Index{
		nodes:       make([]node.Node, len(nodes)),
		byID:        make(map[uuid.UUID]node.Node, len(nodes)),
		children:    make(map[uuid.UUID][]node.Node),
		hasChildren: make(map[uuid.UUID]bool),
	}
	copy(idx.nodes, nodes)

	for _, n := range idx.nodes {
		idx.byID[n.ID] = n
	}

	// Second pass so that a parent declared later in the snapshot still
	// resolves for children that precede it.
	for _, n := range idx.nodes {
		parent := Root
		if n.ParentID != nil {
			if _, ok := idx.byID[*n.ParentID]; ok {
				parent = *n.ParentID
			}
		}
		idx.children[parent] = append(idx.children[parent], n)
		if parent != Root {
			idx.hasChildren[parent] = true
		}
	}
	if len(idx.children[Root]) > 0 {
		idx.hasChildren[Root] = true
	}

	return idx
}

// Node returns the node with the given id, if present.
func (x *Index) Node(id uuid.UUID) (node.Node, bool) {
	n, ok := x.byID[id]
	return n, ok
}

// Nodes returns the snapshot in its original order.
func (x *Index) Nodes() []node.Node {
	out := make([]node.Node, len(x.nodes))
	copy(out, x.nodes)
	return out
}

// Len reports the number of nodes in the snapshot.
func (x *Index) Len() int {
	return len(x.nodes)
}

// Children returns the ordered children of the given parent id. Root returns
// the root-level nodes. An unknown id returns an empty slice, never an error:
// a stale id simply renders as an empty view.
func (x *Index) Children(parent uuid.UUID) []node.Node {
	kids := x.children[parent]
	out := make([]node.Node, len(kids))
	copy(out, kids)
	return out
}

// HasChildren reports whether the given id has at least one child.
func (x *Index) HasChildren(id uuid.UUID) bool {
	return x.hasChildren[id]
}

// WouldCreateCycle reports whether re-parenting id under newParent would
// create a cycle in the parent relation, by walking newParent's ancestor
// chain. Moving a node under itself counts as a cycle. The walk carries a
// visited set so that an already-corrupt chain terminates instead of
// looping.
func (x *Index) WouldCreateCycle(id, newParent uuid.UUID) bool {
	if id == newParent {
		return true
	}
	visited := map[uuid.UUID]bool{id: true}
	cur := newParent
	for cur != Root {
		if visited[cur] {
			return true
		}
		visited[cur] = true
		n, ok := x.byID[cur]
		if !ok || n.ParentID == nil {
			return false
		}
		cur = *n.ParentID
	}
	return false
}
