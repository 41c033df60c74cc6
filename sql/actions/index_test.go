package actions

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-expression-dag.v0/sql"
)

func newNamedNode(name string) *Node {
	return &Node{Type: ActionInput, ResultName: name, ResultType: sql.Integer}
}

func indexNames(i *Index) []string {
	nodes := i.Nodes()
	names := make([]string, len(nodes))
	for pos, n := range nodes {
		names[pos] = n.ResultName
	}
	return names
}

func TestIndexInsertAndReplace(t *testing.T) {
	require := require.New(t)

	idx := NewIndex()
	a, b := newNamedNode("a"), newNamedNode("b")

	require.True(idx.Insert(a))
	require.True(idx.Insert(b))
	require.False(idx.Insert(newNamedNode("a")))
	require.Equal([]string{"a", "b"}, indexNames(idx))

	// Replace keeps the original position.
	a2 := newNamedNode("a")
	idx.Replace(a2)
	require.Equal([]string{"a", "b"}, indexNames(idx))
	got, ok := idx.Get("a")
	require.True(ok)
	require.Equal(a2, got)

	idx.Replace(newNamedNode("c"))
	require.Equal([]string{"a", "b", "c"}, indexNames(idx))
}

func TestIndexRemove(t *testing.T) {
	require := require.New(t)

	idx := NewIndex()
	a, b, c := newNamedNode("a"), newNamedNode("b"), newNamedNode("c")
	idx.Insert(a)
	idx.Insert(b)
	idx.Insert(c)

	require.True(idx.Remove("b"))
	require.False(idx.Remove("b"))
	require.Equal([]string{"a", "c"}, indexNames(idx))

	// RemoveNode only matches the exact node.
	require.False(idx.RemoveNode(newNamedNode("a")))
	require.True(idx.RemoveNode(a))
	require.Equal([]string{"c"}, indexNames(idx))
}

func TestIndexPrepend(t *testing.T) {
	require := require.New(t)

	idx := NewIndex()
	idx.Insert(newNamedNode("a"))
	idx.Insert(newNamedNode("b"))

	idx.Prepend(newNamedNode("c"))
	require.Equal([]string{"c", "a", "b"}, indexNames(idx))

	// A prepended name replaces an existing entry.
	idx.Prepend(newNamedNode("b"))
	require.Equal([]string{"b", "c", "a"}, indexNames(idx))
}

func TestIndexSwap(t *testing.T) {
	require := require.New(t)

	left, right := NewIndex(), NewIndex()
	left.Insert(newNamedNode("a"))
	right.Insert(newNamedNode("b"))
	right.Insert(newNamedNode("c"))

	left.Swap(right)
	require.Equal([]string{"b", "c"}, indexNames(left))
	require.Equal([]string{"a"}, indexNames(right))
	require.True(left.Contains("b"))
	require.True(right.Contains("a"))
	require.False(left.Contains("a"))
}
