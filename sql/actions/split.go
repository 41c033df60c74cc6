package actions

type splitData struct {
	neededBySplit bool
	visited       bool
	usedInResult  bool

	// Copies of the node in each half. Inputs and columns may have both.
	toFirst  *Node
	toSecond *Node
}

// Split partitions the DAG into two pipelined halves. The first half
// computes the given split nodes and everything they depend on, exposing
// as its output exactly the values the second half needs; the second half
// reproduces the original output, reading the boundary values as inputs.
//
// The receiver is not modified.
func (d *ActionsDAG) Split(splitNodes map[*Node]bool) (*ActionsDAG, *ActionsDAG) {
	var firstNodes, secondNodes []*Node
	firstIndex, secondIndex := NewIndex(), NewIndex()

	// Nodes of this DAG whose values the second half reads as inputs: the
	// original inputs it consumes and the first-half nodes crossing the
	// boundary.
	var newInputs []*Node

	data := make(map[*Node]*splitData, len(d.nodes))
	getData := func(n *Node) *splitData {
		s, ok := data[n]
		if !ok {
			s = &splitData{}
			data[n] = s
		}
		return s
	}

	for _, node := range d.index.Nodes() {
		getData(node).usedInResult = true
	}

	// Everything a split node depends on goes to the first half.
	for _, node := range d.nodes {
		if !splitNodes[node] {
			continue
		}

		cur := getData(node)
		if cur.neededBySplit {
			continue
		}
		cur.neededBySplit = true

		stack := []*Node{node}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			for _, child := range n.Children {
				childData := getData(child)
				if !childData.neededBySplit {
					childData.neededBySplit = true
					stack = append(stack, child)
				}
			}
		}
	}

	// Post-order: move each node into one of the halves once all its
	// children have moved.
	type frame struct {
		node *Node
		next int
	}

	for _, root := range d.nodes {
		if getData(root).visited {
			continue
		}

		stack := []frame{{node: root}}
		for len(stack) > 0 {
			cur := &stack[len(stack)-1]

			pushed := false
			for cur.next < len(cur.node.Children) {
				child := cur.node.Children[cur.next]
				if !getData(child).visited {
					stack = append(stack, frame{node: child})
					pushed = true
					break
				}
				cur.next++
			}
			if pushed {
				continue
			}

			node := cur.node
			curData := getData(node)
			curData.visited = true
			stack = stack[:len(stack)-1]

			if !curData.neededBySplit {
				cp := *node
				cp.Children = make([]*Node, len(node.Children))

				for i, child := range node.Children {
					childData := getData(child)

					// A child without a second-half copy lies in the first
					// half. Column values are self contained and can just
					// be duplicated; anything else crosses the boundary as
					// an input.
					if childData.toSecond == nil {
						if child.Type == ActionColumn {
							ccp := *child
							childData.toSecond = &ccp
							secondNodes = append(secondNodes, &ccp)
						} else {
							childData.toSecond = &Node{
								Type:                 ActionInput,
								ResultType:           child.ResultType,
								ResultName:           child.ResultName,
								AllowConstantFolding: true,
							}
							secondNodes = append(secondNodes, childData.toSecond)
							newInputs = append(newInputs, child)
						}
					}

					cp.Children[i] = childData.toSecond
				}

				curData.toSecond = &cp
				secondNodes = append(secondNodes, &cp)

				// An input of the second half must be an input of the
				// first half as well.
				if cp.Type == ActionInput {
					icp := *node
					curData.toFirst = &icp
					firstNodes = append(firstNodes, &icp)
					newInputs = append(newInputs, node)
				}
			} else {
				cp := *node
				cp.Children = make([]*Node, len(node.Children))
				for i, child := range node.Children {
					cp.Children[i] = getData(child).toFirst
				}

				curData.toFirst = &cp
				firstNodes = append(firstNodes, &cp)

				if curData.usedInResult {
					// Needed in the final output too: the second half
					// reads it back as an input.
					curData.toSecond = &Node{
						Type:                 ActionInput,
						ResultType:           node.ResultType,
						ResultName:           node.ResultName,
						AllowConstantFolding: true,
					}
					secondNodes = append(secondNodes, curData.toSecond)
					newInputs = append(newInputs, node)
				}
			}
		}
	}

	for _, node := range d.index.Nodes() {
		secondIndex.Insert(getData(node).toSecond)
	}

	var firstInputs, secondInputs []*Node
	for _, input := range d.inputs {
		firstInputs = append(firstInputs, getData(input).toFirst)
	}

	for _, input := range newInputs {
		cur := getData(input)
		secondInputs = append(secondInputs, cur.toSecond)
		firstIndex.Insert(cur.toFirst)
	}

	first := d.cloneEmpty()
	first.nodes = firstNodes
	first.index = firstIndex
	first.inputs = firstInputs

	second := d.cloneEmpty()
	second.nodes = secondNodes
	second.index = secondIndex
	second.inputs = secondInputs

	return first, second
}

// SplitActionsBeforeArrayJoin splits off everything that can run before an
// array join over the named columns: a node goes to the first half unless
// it reads an array-joined input, is an array join itself, or depends on a
// node that stays behind.
func (d *ActionsDAG) SplitActionsBeforeArrayJoin(arrayJoinedColumns []string) (*ActionsDAG, *ActionsDAG) {
	joined := make(map[string]bool, len(arrayJoinedColumns))
	for _, name := range arrayJoinedColumns {
		joined[name] = true
	}

	splitNodes := make(map[*Node]bool, len(d.nodes))
	visited := make(map[*Node]bool, len(d.nodes))

	type frame struct {
		node *Node
		next int
	}

	for _, root := range d.nodes {
		if visited[root] {
			continue
		}
		visited[root] = true

		stack := []frame{{node: root}}
		for len(stack) > 0 {
			cur := &stack[len(stack)-1]

			// Visit all children first: a node depends on the array join
			// if any child does.
			pushed := false
			for cur.next < len(cur.node.Children) {
				child := cur.node.Children[cur.next]
				if !visited[child] {
					visited[child] = true
					stack = append(stack, frame{node: child})
					pushed = true
					break
				}
				cur.next++
			}
			if pushed {
				continue
			}

			node := cur.node
			stack = stack[:len(stack)-1]

			dependsOnArrayJoin := node.Type == ActionArrayJoin ||
				(node.Type == ActionInput && joined[node.ResultName])

			for _, child := range node.Children {
				if !splitNodes[child] {
					dependsOnArrayJoin = true
				}
			}

			if !dependsOnArrayJoin {
				splitNodes[node] = true
			}
		}
	}

	first, second := d.Split(splitNodes)
	// Keep unused array joined columns: they still multiply rows.
	first.settings.ProjectInput = false
	return first, second
}

// SplitActionsForFilter splits off the computation of the named filter
// column: the first half computes the filter, the second half consumes it
// together with whatever else crosses the boundary.
func (d *ActionsDAG) SplitActionsForFilter(columnName string) (*ActionsDAG, *ActionsDAG, error) {
	node, ok := d.index.Get(columnName)
	if !ok {
		return nil, nil, ErrFilterColumnMissing.New(columnName, d.DumpDAG())
	}

	first, second := d.Split(map[*Node]bool{node: true})
	return first, second, nil
}
