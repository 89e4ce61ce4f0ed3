// Package uistate models the workspace's UI state as an explicit value with
// an explicit persistence policy.
//
// State carries the current organization, project, selection, navigation
// cursor, view mode, and canvas viewport. Only the organization, project,
// and view mode survive a reload; PersistedFields names the allow-list, and
// Encode/Decode enforce it. Ephemeral fields always come back at their
// session defaults.
//
//	data, err := state.Encode()
//	// hand data to whatever storage the host app uses
//
//	restored, err := uistate.Decode(data)
//	// restored.SelectedNodeID == uuid.Nil, restored.Viewport.Zoom == 1
package uistate
