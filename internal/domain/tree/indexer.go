// Package tree assigns positional indices to tab and panel nodes.
//
// Tabs are expected on one depth among their siblings, panels likewise. Once a
// match is found on a level the indexer stops descending into further
// siblings, which keeps a pass cheap on large trees.
package tree

import "github.com/accessible-ui/tabs/internal/domain/entity"

// AssignIndices returns the tree with every node of role carrying an index.
// Caller-pinned indices are kept and move the counter to pinned+1 (never
// backwards). The input is never modified; subtrees without changes keep
// their original pointers and an unchanged level returns the input slice.
func AssignIndices(nodes []*entity.Node, role entity.Role) []*entity.Node {
	out, _ := assignLevel(nodes, role)
	return out
}

// IndexTree runs the tab pass then the panel pass.
func IndexTree(nodes []*entity.Node) []*entity.Node {
	return AssignIndices(AssignIndices(nodes, entity.RoleTab), entity.RolePanel)
}

// Collect returns the nodes of role in document order, looking through every depth.
func Collect(nodes []*entity.Node, role entity.Role) []*entity.Node {
	var found []*entity.Node
	for _, n := range nodes {
		n.Walk(func(node *entity.Node) bool {
			if node.Role == role {
				found = append(found, node)
				return false
			}
			return node.Role != entity.RoleText
		})
	}
	return found
}

func assignLevel(nodes []*entity.Node, role entity.Role) ([]*entity.Node, bool) {
	var (
		counter entity.TabIndex
		out     []*entity.Node
	)

	for i, n := range nodes {
		next := visit(n, role, &counter)
		if next == n {
			if out != nil {
				out[i] = n
			}
			continue
		}
		if out == nil {
			out = make([]*entity.Node, len(nodes))
			copy(out, nodes[:i])
		}
		out[i] = next
	}

	if out == nil {
		return nodes, false
	}
	return out, true
}

func visit(n *entity.Node, role entity.Role, counter *entity.TabIndex) *entity.Node {
	if n == nil || terminates(n.Role, role) {
		return n
	}

	if n.Role == role {
		if n.Pinned() {
			if n.Index+1 > *counter {
				*counter = n.Index + 1
			}
			return n
		}
		index := *counter
		*counter++
		return n.WithIndex(index)
	}

	// Only look deeper while nothing matched on this level.
	if *counter != 0 || len(n.Children) == 0 {
		return n
	}
	children, changed := assignLevel(n.Children, role)
	if !changed {
		return n
	}
	return n.WithChildren(children)
}

// terminates reports whether a node of kind can never hold nodes of role.
func terminates(kind, role entity.Role) bool {
	switch kind {
	case entity.RoleText:
		return true
	case entity.RoleTab:
		return role == entity.RolePanel
	case entity.RolePanel:
		return role == entity.RoleTab
	case entity.RoleTabList:
		return role == entity.RolePanel
	default:
		return false
	}
}
