package tree

import (
	"github.com/google/uuid"

	"github.com/workloom/sdk/node"
)

// Crumb is one element of a breadcrumb path.
type Crumb struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

// Navigator is a stateful cursor over the hierarchy exposed by an Index.
// The cursor survives snapshot refreshes: Rebind swaps in the new index
// while keeping the current folder, so a folder deleted out from under the
// user degrades to an empty view rather than an error.
//
// A Navigator is intended for a single UI event loop; it is not safe for
// concurrent use.
type Navigator struct {
	idx     *Index
	current uuid.UUID
}

// NewNavigator creates a Navigator over idx with the cursor at Root.
func NewNavigator(idx *Index) *Navigator {
	return &Navigator{idx: idx, current: Root}
}

// Rebind points the navigator at a freshly built index, preserving the
// cursor.
func (nav *Navigator) Rebind(idx *Index) {
	nav.idx = idx
}

// Navigate moves the cursor to id unconditionally. The id is not validated:
// navigating to a node that no longer exists yields an empty children view
// downstream. Navigate to Root to return to the top level.
func (nav *Navigator) Navigate(id uuid.UUID) {
	nav.current = id
}

// Current returns the cursor's folder id; Root when nothing is selected.
func (nav *Navigator) Current() uuid.UUID {
	return nav.current
}

// CurrentChildren returns the ordered children of the current folder.
func (nav *Navigator) CurrentChildren() []node.Node {
	return nav.idx.Children(nav.current)
}

// IsLeafView reports whether the grid should switch from a grid-of-children
// presentation to a detail presentation: a folder is selected and it has no
// children.
func (nav *Navigator) IsLeafView() bool {
	return nav.current != Root && !nav.idx.HasChildren(nav.current)
}

// Breadcrumbs returns the path from the topmost known ancestor down to the
// current folder, current folder last. At Root the path is empty.
//
// The upward walk terminates at the first unknown parent reference, and a
// visited set guards against a cyclic parent chain in corrupt data; either
// way the path built so far is returned rather than an error.
func (nav *Navigator) Breadcrumbs() []Crumb {
	if nav.current == Root {
		return nil
	}

	var path []Crumb
	visited := make(map[uuid.UUID]bool)
	cur := nav.current
	for cur != Root && !visited[cur] {
		visited[cur] = true
		n, ok := nav.idx.Node(cur)
		if !ok {
			break
		}
		path = append(path, Crumb{ID: n.ID, Title: n.Title})
		if n.ParentID == nil {
			break
		}
		cur = *n.ParentID
	}

	// Walked child-to-root; callers want root-to-child.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
