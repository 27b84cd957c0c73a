// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

// TabIndex is the positional index shared by a tab and its panel.
type TabIndex int

// NoTab marks an absent index: no active tab, or no caller-pinned index.
const NoTab TabIndex = -1

// Valid reports whether the index can address a tab.
func (i TabIndex) Valid() bool {
	return i >= 0
}

// Role tags a node of the presentation tree.
type Role int

const (
	RoleOther   Role = iota // Plain container, may hold tabs or panels
	RoleTab                 // Tab trigger
	RolePanel               // Tab panel
	RoleTabList             // Container of tab triggers
	RoleText                // Opaque leaf content, never descended
)

func (r Role) String() string {
	switch r {
	case RoleOther:
		return "other"
	case RoleTab:
		return "tab"
	case RolePanel:
		return "panel"
	case RoleTabList:
		return "tablist"
	case RoleText:
		return "text"
	default:
		return "unknown"
	}
}

// Node is an element of the presentation tree.
// Nodes are treated as immutable: indexing produces new nodes instead of
// rewriting existing ones, so an untouched subtree keeps its pointer.
type Node struct {
	Role     Role
	Key      string
	Index    TabIndex // Caller-pinned index before indexing, assigned index after
	Children []*Node
}

// Element creates a plain container node.
func Element(key string, children ...*Node) *Node {
	return &Node{Role: RoleOther, Key: key, Index: NoTab, Children: children}
}

// TabNode creates a tab node without a pinned index.
func TabNode(key string, children ...*Node) *Node {
	return &Node{Role: RoleTab, Key: key, Index: NoTab, Children: children}
}

// PinnedTabNode creates a tab node whose index is fixed by the caller.
func PinnedTabNode(key string, index TabIndex, children ...*Node) *Node {
	return &Node{Role: RoleTab, Key: key, Index: index, Children: children}
}

// PanelNode creates a panel node without a pinned index.
func PanelNode(key string, children ...*Node) *Node {
	return &Node{Role: RolePanel, Key: key, Index: NoTab, Children: children}
}

// PinnedPanelNode creates a panel node whose index is fixed by the caller.
func PinnedPanelNode(key string, index TabIndex, children ...*Node) *Node {
	return &Node{Role: RolePanel, Key: key, Index: index, Children: children}
}

// TabListNode creates the container holding the tab triggers.
func TabListNode(key string, children ...*Node) *Node {
	return &Node{Role: RoleTabList, Key: key, Index: NoTab, Children: children}
}

// TextNode creates an opaque content leaf.
func TextNode(key string) *Node {
	return &Node{Role: RoleText, Key: key, Index: NoTab}
}

// Pinned returns true if the node carries an index.
func (n *Node) Pinned() bool {
	return n.Index.Valid()
}

// WithIndex returns a copy of the node carrying the given index.
func (n *Node) WithIndex(index TabIndex) *Node {
	clone := *n
	clone.Index = index
	return &clone
}

// WithChildren returns a copy of the node holding the given children.
func (n *Node) WithChildren(children []*Node) *Node {
	clone := *n
	clone.Children = children
	return &clone
}

// Walk traverses the tree calling fn for each node. Returns early if fn returns false.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}
