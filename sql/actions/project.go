package actions

// NameWithAlias is a source column name and the alias it is exposed under.
type NameWithAlias struct {
	Name  string
	Alias string
}

// AddAliases adds a rename for every pair whose alias differs from its
// source name. Existing index entries under the alias are replaced.
func (d *ActionsDAG) AddAliases(aliases []NameWithAlias) error {
	_, err := d.addAliases(aliases)
	return err
}

func (d *ActionsDAG) addAliases(aliases []NameWithAlias) ([]*Node, error) {
	children := make([]*Node, len(aliases))
	for i, item := range aliases {
		child, err := d.GetNode(item.Name)
		if err != nil {
			return nil, err
		}
		children[i] = child
	}

	result := make([]*Node, len(aliases))
	for i, item := range aliases {
		child := children[i]

		if item.Alias != "" && item.Alias != item.Name {
			alias, err := d.addAliasNode(child, item.Alias, true)
			if err != nil {
				return nil, err
			}
			result[i] = alias
		} else {
			result[i] = child
		}
	}

	return result, nil
}

// Project applies the aliases, restricts the index to exactly the aliased
// results, prunes everything else and marks the inputs as projected.
func (d *ActionsDAG) Project(projection []NameWithAlias) error {
	result, err := d.addAliases(projection)
	if err != nil {
		return err
	}

	d.removeUnusedNodes(result)
	d.ProjectInput()
	d.settings.ProjectedOutput = true
	return nil
}

// TryRestoreColumn brings a column dropped from the index back, using the
// most recently added node with that name. It reports whether the column
// is in the index afterwards.
func (d *ActionsDAG) TryRestoreColumn(name string) bool {
	if d.index.Contains(name) {
		return true
	}

	for i := len(d.nodes) - 1; i >= 0; i-- {
		if d.nodes[i].ResultName == name {
			d.index.Replace(d.nodes[i])
			return true
		}
	}

	return false
}

// RemoveUnusedInput removes the named input from the DAG. The input must
// not be a child of any node: pruning dependents is the caller's job, this
// does not cascade.
func (d *ActionsDAG) RemoveUnusedInput(name string) error {
	pos := -1
	for i, input := range d.inputs {
		if input.ResultName == name {
			pos = i
			break
		}
	}
	if pos < 0 {
		return ErrInputNotFound.New(name, d.DumpDAG())
	}

	input := d.inputs[pos]
	for _, node := range d.nodes {
		for _, child := range node.Children {
			if child == input {
				return ErrInputHasDependents.New(name, d.DumpDAG())
			}
		}
	}

	d.index.RemoveNode(input)

	for i, node := range d.nodes {
		if node == input {
			d.nodes = append(d.nodes[:i], d.nodes[i+1:]...)
			break
		}
	}

	d.inputs = append(d.inputs[:pos], d.inputs[pos+1:]...)
	return nil
}
