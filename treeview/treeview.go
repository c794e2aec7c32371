// Package treeview renders an injection tree for diagnostics.
package treeview

import (
	"fmt"
	"strings"

	"github.com/m1gwings/treedrawer/tree"

	"github.com/mazrean/kozue"
)

// Render draws the tree rooted at root. Each node is labeled with its
// name, the dynamic type of its underlying object, its bound roles (for
// kozue.Bound objects) and its readiness. Purely a diagnostic aid; the
// tree is read the same way the engines read it, without caching.
func Render(root kozue.Node) string {
	t := tree.NewTree(tree.NodeString(label(root)))
	addChildren(t, root)

	return t.String()
}

func addChildren(t *tree.Tree, n kozue.Node) {
	for i, child := range n.Children() {
		t.AddChild(tree.NodeString(label(child)))

		childTree, err := t.Child(i)
		if err != nil {
			continue
		}
		addChildren(childTree, child)
	}
}

func label(n kozue.Node) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (%T)", n.Name(), n.Object())

	if bound, ok := n.Object().(kozue.Bound); ok {
		if roles := bound.Bindings().Summary(); len(roles) > 0 {
			fmt.Fprintf(&b, "\n%s", strings.Join(roles, "\n"))
		}
	}

	if !n.Ready() {
		b.WriteString("\nnot ready")
	}

	return b.String()
}
