package actions

import (
	"gopkg.in/src-d/go-expression-dag.v0/sql"
)

// RemoveUnusedActions drops every node not reachable from the output.
// With required names given, the index is first replaced by exactly those
// entries; with none, the current index is kept. Array join nodes survive
// regardless of reachability because they change the row count.
//
// Reached nodes with children that already carry a constant result and
// allow constant folding (folded functions, aliases of constants) are
// rewritten in place to column actions, cutting their children loose so
// the same pass collects them.
func (d *ActionsDAG) RemoveUnusedActions(requiredNames ...string) error {
	if len(requiredNames) == 0 {
		d.removeUnused()
		return nil
	}

	seen := make(map[*Node]bool, len(requiredNames))
	required := make([]*Node, 0, len(requiredNames))
	for _, name := range requiredNames {
		node, ok := d.index.Get(name)
		if !ok {
			return ErrUnknownColumn.New(name, d.DumpNames())
		}

		if !seen[node] {
			seen[node] = true
			required = append(required, node)
		}
	}

	d.removeUnusedNodes(required)
	return nil
}

func (d *ActionsDAG) removeUnusedNodes(required []*Node) {
	index := NewIndex()
	for _, node := range required {
		index.Insert(node)
	}
	d.index.Swap(index)

	d.removeUnused()
}

func (d *ActionsDAG) removeUnused() {
	visited := make(map[*Node]bool, len(d.nodes))
	var stack []*Node

	for _, node := range d.index.Nodes() {
		if !visited[node] {
			visited[node] = true
			stack = append(stack, node)
		}
	}

	// Array joins cannot be removed: they change the number of rows.
	for _, node := range d.nodes {
		if node.Type == ActionArrayJoin && !visited[node] {
			visited[node] = true
			stack = append(stack, node)
		}
	}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(node.Children) > 0 && node.Column != nil &&
			sql.IsConst(node.Column) && node.AllowConstantFolding {
			// Constant folding.
			node.Type = ActionColumn
			node.Children = nil
		}

		for _, child := range node.Children {
			if !visited[child] {
				visited[child] = true
				stack = append(stack, child)
			}
		}
	}

	nodes := d.nodes[:0]
	for _, node := range d.nodes {
		if visited[node] {
			nodes = append(nodes, node)
		}
	}
	d.nodes = nodes

	inputs := d.inputs[:0]
	for _, input := range d.inputs {
		if visited[input] {
			inputs = append(inputs, input)
		}
	}
	d.inputs = inputs
}
