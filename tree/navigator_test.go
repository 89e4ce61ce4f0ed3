package tree_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workloom/sdk/node"
	"github.com/workloom/sdk/tree"
)

// chain builds A (root) -> B -> C and returns the nodes plus the index.
func chain(t *testing.T) (a, b, c node.Node, idx *tree.Index) {
	t.Helper()
	a = named("A")
	b = child("B", a.ID)
	c = child("C", b.ID)
	return a, b, c, tree.Build([]node.Node{a, b, c})
}

// TestBreadcrumbs_Chain verifies breadcrumbPath(C) == [A, B, C] for the
// chain A -> B -> C, and that the path is empty at the root.
func TestBreadcrumbs_Chain(t *testing.T) {
	a, b, c, idx := chain(t)
	nav := tree.NewNavigator(idx)

	assert.Empty(t, nav.Breadcrumbs())

	nav.Navigate(c.ID)
	crumbs := nav.Breadcrumbs()
	require.Len(t, crumbs, 3)
	assert.Equal(t, tree.Crumb{ID: a.ID, Title: "A"}, crumbs[0])
	assert.Equal(t, tree.Crumb{ID: b.ID, Title: "B"}, crumbs[1])
	assert.Equal(t, tree.Crumb{ID: c.ID, Title: "C"}, crumbs[2])
}

// TestBreadcrumbs_UnknownParentTerminates verifies the upward walk stops at
// the first parent reference pointing outside the snapshot.
func TestBreadcrumbs_UnknownParentTerminates(t *testing.T) {
	orphan := child("Orphan", uuid.New())
	leaf := child("Leaf", orphan.ID)
	idx := tree.Build([]node.Node{orphan, leaf})

	nav := tree.NewNavigator(idx)
	nav.Navigate(leaf.ID)

	crumbs := nav.Breadcrumbs()
	require.Len(t, crumbs, 2)
	assert.Equal(t, "Orphan", crumbs[0].Title)
	assert.Equal(t, "Leaf", crumbs[1].Title)
}

// TestBreadcrumbs_CyclicChainTerminates verifies the visited-set guard on a
// corrupt parent chain: the walk must terminate rather than loop.
func TestBreadcrumbs_CyclicChainTerminates(t *testing.T) {
	idA, idB := uuid.New(), uuid.New()
	a := *node.New("A").WithID(idA).WithParent(idB)
	b := *node.New("B").WithID(idB).WithParent(idA)
	idx := tree.Build([]node.Node{a, b})

	nav := tree.NewNavigator(idx)
	nav.Navigate(idA)

	crumbs := nav.Breadcrumbs()
	require.Len(t, crumbs, 2)
	assert.Equal(t, "B", crumbs[0].Title)
	assert.Equal(t, "A", crumbs[1].Title)
}

// TestBreadcrumbs_UnknownCurrent verifies a stale cursor yields an empty
// path.
func TestBreadcrumbs_UnknownCurrent(t *testing.T) {
	_, _, _, idx := chain(t)
	nav := tree.NewNavigator(idx)
	nav.Navigate(uuid.New())

	assert.Empty(t, nav.Breadcrumbs())
}

// TestIsLeafView verifies the grid/detail presentation switch: true only
// when a folder is selected and it has no children.
func TestIsLeafView(t *testing.T) {
	a, b, c, idx := chain(t)
	nav := tree.NewNavigator(idx)

	assert.False(t, nav.IsLeafView(), "root is never a leaf view")

	nav.Navigate(a.ID)
	assert.False(t, nav.IsLeafView())

	nav.Navigate(b.ID)
	assert.False(t, nav.IsLeafView())

	nav.Navigate(c.ID)
	assert.True(t, nav.IsLeafView())
}

// TestNavigate_StaleID verifies navigating to a nonexistent id yields an
// empty children view, not an error.
func TestNavigate_StaleID(t *testing.T) {
	_, _, _, idx := chain(t)
	nav := tree.NewNavigator(idx)

	nav.Navigate(uuid.New())
	assert.Empty(t, nav.CurrentChildren())
	assert.True(t, nav.IsLeafView())
}

// TestNavigate_RoundTripDeterminism verifies navigating away and back
// reproduces the identical children sequence.
func TestNavigate_RoundTripDeterminism(t *testing.T) {
	a, b, _, idx := chain(t)
	nav := tree.NewNavigator(idx)

	nav.Navigate(b.ID)
	first := nav.CurrentChildren()

	nav.Navigate(a.ID)
	nav.Navigate(b.ID)
	second := nav.CurrentChildren()

	assert.Equal(t, first, second)
}

// TestRebind_PreservesCursor verifies the cursor survives a snapshot
// refresh, degrading to an empty view if the folder vanished.
func TestRebind_PreservesCursor(t *testing.T) {
	a, b, c, idx := chain(t)
	nav := tree.NewNavigator(idx)
	nav.Navigate(b.ID)
	require.Len(t, nav.CurrentChildren(), 1)

	// b deleted from the workspace; c reattached to a.
	c.ParentID = &a.ID
	nav.Rebind(tree.Build([]node.Node{a, c}))

	assert.Equal(t, b.ID, nav.Current())
	assert.Empty(t, nav.CurrentChildren())
}
