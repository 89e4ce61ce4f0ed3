package node

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// AuthorType identifies who authored a node.
const (
	AuthorUser  = "user"
	AuthorAgent = "agent"
)

// InputType identifies the kind of an input attached to a node.
type InputType string

// Input types supported by the workspace.
const (
	// InputTypeFile references an uploaded file by id.
	InputTypeFile InputType = "file"

	// InputTypeNodeReference declares a dependency on another node's output;
	// the referenced node is identified by SourceNodeID.
	InputTypeNodeReference InputType = "node_reference"

	// InputTypeExternalURL references content outside the workspace.
	InputTypeExternalURL InputType = "external_url"

	// InputTypeText carries inline text content.
	InputTypeText InputType = "text"
)

// Position is a persisted 2D canvas coordinate. It is a layout hint written
// back by the persistence collaborator after a canvas layout settles; a node
// without one gets a fresh initial placement on the next projection.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Metadata carries presentation and workflow metadata. The graph and tree
// layers treat it as opaque.
type Metadata struct {
	Tags     []string `json:"tags,omitempty"`
	Priority string   `json:"priority,omitempty"`
	DueDate  *string  `json:"dueDate,omitempty"`
}

// Input is one entry in a node's ordered input sequence. Exactly which
// optional fields are meaningful depends on Type: a node reference carries
// SourceNodeID, a file input carries FileID, and so on.
type Input struct {
	Type         InputType  `json:"inputType"`
	SourceNodeID *uuid.UUID `json:"sourceNodeId,omitempty"`
	FileID       *uuid.UUID `json:"fileId,omitempty"`
	ExternalURL  string     `json:"externalUrl,omitempty"`
	TextContent  string     `json:"textContent,omitempty"`
	Label        string     `json:"label,omitempty"`
	SortOrder    int        `json:"sortOrder"`
}

// Node is the unit of hierarchical, versioned work content. A nil ParentID
// means root-level; a ParentID that does not resolve within the same snapshot
// is treated as root-level by the tree index rather than rejected.
//
// Nodes are plain values: the tree, graph, and layout layers never mutate
// them. A fresh snapshot of the full collection is supplied on every
// workspace change.
type Node struct {
	ID          uuid.UUID  `json:"id"`
	ParentID    *uuid.UUID `json:"parentId,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	AuthorType  string     `json:"authorType"`
	Version     int        `json:"version"`
	Metadata    Metadata   `json:"metadata"`
	Position    *Position  `json:"position,omitempty"`
	Inputs      []Input    `json:"inputs,omitempty"`
}

// New creates a Node with a fresh random id and sensible defaults.
func New(title string) *Node {
	return &Node{
		ID:         uuid.New(),
		Title:      title,
		AuthorType: AuthorUser,
		Version:    1,
	}
}

// WithID sets the node id and returns the node for method chaining.
func (n *Node) WithID(id uuid.UUID) *Node {
	n.ID = id
	return n
}

// WithParent sets the parent id and returns the node for method chaining.
func (n *Node) WithParent(parentID uuid.UUID) *Node {
	n.ParentID = &parentID
	return n
}

// WithStatus sets the workflow status and returns the node for method chaining.
func (n *Node) WithStatus(status string) *Node {
	n.Status = status
	return n
}

// WithPosition sets the persisted canvas position and returns the node for
// method chaining.
func (n *Node) WithPosition(x, y float64) *Node {
	n.Position = &Position{X: x, Y: y}
	return n
}

// WithInput appends an input and returns the node for method chaining.
// SortOrder is assigned from the current input count if left zero.
func (n *Node) WithInput(in Input) *Node {
	if in.SortOrder == 0 {
		in.SortOrder = len(n.Inputs)
	}
	n.Inputs = append(n.Inputs, in)
	return n
}

// WithNodeReference appends a node-reference input declaring a dependency on
// source, and returns the node for method chaining. The label is the
// display name shown on the dependency edge; it may be empty.
func (n *Node) WithNodeReference(source uuid.UUID, label string) *Node {
	return n.WithInput(Input{
		Type:         InputTypeNodeReference,
		SourceNodeID: &source,
		Label:        label,
	})
}

// Validate checks that the node has all required fields set correctly.
func (n *Node) Validate() error {
	if n.ID == uuid.Nil {
		return errors.New("node id is required")
	}
	if n.Title == "" {
		return errors.New("node title is required")
	}
	for i, in := range n.Inputs {
		if in.Type == InputTypeNodeReference && in.SourceNodeID == nil {
			return fmt.Errorf("input %d: node reference requires a source node id", i)
		}
	}
	return nil
}
