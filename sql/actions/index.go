package actions

// Index is the ordered set of nodes forming a DAG's current output schema.
// It holds at most one node per result name. Replacing an entry keeps its
// original position; new entries append.
type Index struct {
	nodes  []*Node
	byName map[string]int
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{byName: map[string]int{}}
}

// Size returns the number of entries.
func (i *Index) Size() int { return len(i.nodes) }

// Contains reports whether the index has an entry with the given name.
func (i *Index) Contains(name string) bool {
	_, ok := i.byName[name]
	return ok
}

// Get returns the entry with the given name.
func (i *Index) Get(name string) (*Node, bool) {
	pos, ok := i.byName[name]
	if !ok {
		return nil, false
	}
	return i.nodes[pos], true
}

// Insert adds the node under its result name, reporting false if the name
// is already present.
func (i *Index) Insert(n *Node) bool {
	if _, ok := i.byName[n.ResultName]; ok {
		return false
	}
	i.byName[n.ResultName] = len(i.nodes)
	i.nodes = append(i.nodes, n)
	return true
}

// Replace adds the node under its result name, overwriting an existing
// entry in place: the original position is kept.
func (i *Index) Replace(n *Node) {
	if pos, ok := i.byName[n.ResultName]; ok {
		i.nodes[pos] = n
		return
	}
	i.byName[n.ResultName] = len(i.nodes)
	i.nodes = append(i.nodes, n)
}

// Remove erases the entry with the given name, reporting whether it was
// present.
func (i *Index) Remove(name string) bool {
	pos, ok := i.byName[name]
	if !ok {
		return false
	}
	i.nodes = append(i.nodes[:pos], i.nodes[pos+1:]...)
	i.rebuild()
	return true
}

// RemoveNode erases the entry referencing exactly the given node, if any.
func (i *Index) RemoveNode(n *Node) bool {
	pos, ok := i.byName[n.ResultName]
	if !ok || i.nodes[pos] != n {
		return false
	}
	i.nodes = append(i.nodes[:pos], i.nodes[pos+1:]...)
	i.rebuild()
	return true
}

// Prepend pushes the node to the front of the order. An existing entry
// with the same name is dropped first.
func (i *Index) Prepend(n *Node) {
	if pos, ok := i.byName[n.ResultName]; ok {
		i.nodes = append(i.nodes[:pos], i.nodes[pos+1:]...)
	}
	i.nodes = append([]*Node{n}, i.nodes...)
	i.rebuild()
}

// Swap exchanges the contents of the two indexes.
func (i *Index) Swap(other *Index) {
	i.nodes, other.nodes = other.nodes, i.nodes
	i.byName, other.byName = other.byName, i.byName
}

// Nodes returns the entries in order.
func (i *Index) Nodes() []*Node {
	nodes := make([]*Node, len(i.nodes))
	copy(nodes, i.nodes)
	return nodes
}

func (i *Index) rebuild() {
	i.byName = make(map[string]int, len(i.nodes))
	for pos, n := range i.nodes {
		i.byName[n.ResultName] = pos
	}
}
