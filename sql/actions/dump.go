package actions

import (
	"fmt"
	"strings"
)

// DumpNames returns the node names in insertion order, comma separated.
func (d *ActionsDAG) DumpNames() string {
	var sb strings.Builder
	for i, node := range d.nodes {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(node.ResultName)
	}
	return sb.String()
}

// DumpDAG returns a line per node: its position, kind, child positions,
// column, type and result name, followed by the index positions. The
// output is stable for a given DAG.
func (d *ActionsDAG) DumpDAG() string {
	positions := make(map[*Node]int, len(d.nodes))
	for i, node := range d.nodes {
		positions[node] = i
	}

	var sb strings.Builder
	for _, node := range d.nodes {
		fmt.Fprintf(&sb, "%d : %s (", positions[node], node.Type)
		for i, child := range node.Children {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", positions[child])
		}
		sb.WriteString(")")

		column := "(no column)"
		if node.Column != nil {
			column = node.Column.Name()
		}

		typ := "(no type)"
		if node.ResultType != nil {
			typ = node.ResultType.Name()
		}

		name := "(no name)"
		if node.ResultName != "" {
			name = node.ResultName
		}

		fmt.Fprintf(&sb, " %s %s %s", column, typ, name)
		if node.Function != nil {
			fmt.Fprintf(&sb, " [%s]", node.Function.Name())
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("Index:")
	for _, node := range d.index.Nodes() {
		fmt.Fprintf(&sb, " %d", positions[node])
	}
	sb.WriteByte('\n')

	return sb.String()
}
