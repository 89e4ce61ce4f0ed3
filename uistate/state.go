package uistate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ViewMode selects how the workspace presents the node collection.
type ViewMode string

const (
	// ViewModeGrid is the breadcrumb-navigable tree/grid view.
	ViewModeGrid ViewMode = "grid"

	// ViewModeCanvas is the force-directed graph canvas view.
	ViewModeCanvas ViewMode = "canvas"
)

// Viewport is the canvas camera: zoom factor plus pan offset. It is
// ephemeral and never persisted.
type Viewport struct {
	Zoom float64 `json:"zoom"`
	PanX float64 `json:"panX"`
	PanY float64 `json:"panY"`
}

// State is the workspace UI state, modeled as an explicit struct rather
// than an ambient process-wide store. Only the fields named in
// PersistedFields survive Encode/Decode; everything else (selection,
// navigation cursor, camera) is session-scoped and resets to its zero or
// default value on load.
//
// The json tags are the renderer-facing handoff shape: hosts that mirror
// the state into an embedded web view marshal the whole struct. They play
// no part in persistence, which goes through the yaml allow-list.
type State struct {
	OrgID           uuid.UUID `json:"orgId"`
	ProjectID       uuid.UUID `json:"projectId"`
	SelectedNodeID  uuid.UUID `json:"selectedNodeId"`
	CurrentFolderID uuid.UUID `json:"currentFolderId"`
	ViewMode        ViewMode  `json:"viewMode"`
	Viewport        Viewport  `json:"viewport"`
}

// persisted is the on-disk shape of the allow-listed subset. Extending
// persistence means extending this struct and Encode/Decode together;
// PersistedFields follows automatically.
type persisted struct {
	OrgID     string `yaml:"org_id,omitempty"`
	ProjectID string `yaml:"project_id,omitempty"`
	ViewMode  string `yaml:"view_mode,omitempty"`
}

// PersistedFields is the serialization allow-list: the exact set of State
// fields that survive a reload, derived from the persisted struct's yaml
// tags so the list cannot drift from the on-disk shape.
func PersistedFields() []string {
	t := reflect.TypeOf(persisted{})
	fields := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("yaml"), ",")
		fields = append(fields, name)
	}
	return fields
}

// Default returns the initial UI state for a fresh session.
func Default() State {
	return State{
		ViewMode: ViewModeGrid,
		Viewport: Viewport{Zoom: 1},
	}
}

// Encode serializes the persisted subset of the state as YAML.
func (s State) Encode() ([]byte, error) {
	p := persisted{ViewMode: string(s.ViewMode)}
	if s.OrgID != uuid.Nil {
		p.OrgID = s.OrgID.String()
	}
	if s.ProjectID != uuid.Nil {
		p.ProjectID = s.ProjectID.String()
	}
	out, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("uistate: encode: %w", err)
	}
	return out, nil
}

// Decode restores a State from a previously encoded payload. Ephemeral
// fields come back at their session defaults; an unrecognized or missing
// view mode falls back to the grid.
func Decode(data []byte) (State, error) {
	var p persisted
	if err := yaml.Unmarshal(data, &p); err != nil {
		return State{}, fmt.Errorf("uistate: decode: %w", err)
	}

	s := Default()
	if p.OrgID != "" {
		id, err := uuid.Parse(p.OrgID)
		if err != nil {
			return State{}, fmt.Errorf("uistate: decode org id: %w", err)
		}
		s.OrgID = id
	}
	if p.ProjectID != "" {
		id, err := uuid.Parse(p.ProjectID)
		if err != nil {
			return State{}, fmt.Errorf("uistate: decode project id: %w", err)
		}
		s.ProjectID = id
	}
	switch ViewMode(p.ViewMode) {
	case ViewModeGrid, ViewModeCanvas:
		s.ViewMode = ViewMode(p.ViewMode)
	}
	return s, nil
}
