// Package tree turns a flat, parent-linked node snapshot into a navigable
// hierarchy.
//
// Index is the derived lookup structure: an id map, children buckets keyed
// by parent id (with tree.Root as the sentinel bucket for nodes without a
// resolvable parent), and a has-children predicate. It is rebuilt wholesale
// on every snapshot change.
//
// Navigator layers a stateful cursor on top of an Index for the grid view:
// navigation, the current children list, leaf-view detection, and breadcrumb
// derivation.
//
//	idx := tree.Build(nodes)
//	nav := tree.NewNavigator(idx)
//
//	nav.Navigate(folderID)
//	for _, child := range nav.CurrentChildren() {
//	    // render child card
//	}
//	for _, crumb := range nav.Breadcrumbs() {
//	    // render breadcrumb segment
//	}
//
// Malformed references never fail: an unresolvable parent id places a node
// at the root, and navigating to an id that no longer exists yields an empty
// children view.
package tree
