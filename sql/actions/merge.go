package actions

// Merge pipelines first into second, producing one DAG that computes
// second's output over first's inputs. Inputs of second that match a
// result of first are wired to the producing node; the rest become inputs
// of the merged DAG, unless first's inputs are projected, in which case
// an unmatched input is an error.
//
// Second's outputs end up at the front of the merged index, in their own
// order, ahead of whatever results of first were not consumed. When
// second's inputs are projected, the merged index is second's index alone.
//
// Both arguments are consumed: the merged DAG shares their nodes and
// neither may be used afterwards.
func Merge(first, second *ActionsDAG) (*ActionsDAG, error) {
	// Nodes leaving first's index because second consumes them as inputs,
	// with the number of pending removals.
	removedFirstResult := make(map[*Node]int)
	// Inputs of second mapped to the nodes of first that produce them.
	inputsMap := make(map[*Node]*Node)

	firstResult := make(map[string][]*Node)
	for _, node := range first.index.Nodes() {
		firstResult[node.ResultName] = append(firstResult[node.ResultName], node)
	}

	for _, input := range second.inputs {
		remaining := firstResult[input.ResultName]
		if len(remaining) == 0 {
			if first.settings.ProjectInput {
				return nil, ErrMergeResultMissing.New(input.ResultName)
			}
			first.inputs = append(first.inputs, input)
		} else {
			inputsMap[input] = remaining[0]
			removedFirstResult[remaining[0]]++
			firstResult[input.ResultName] = remaining[1:]
		}
	}

	// Rewire second's nodes from its inputs to first's results.
	for _, node := range second.nodes {
		for i, child := range node.Children {
			if child.Type == ActionInput {
				if mapped, ok := inputsMap[child]; ok {
					node.Children[i] = mapped
				}
			}
		}
	}

	for i, node := range second.index.nodes {
		if node.Type == ActionInput {
			if mapped, ok := inputsMap[node]; ok {
				second.index.nodes[i] = mapped
			}
		}
	}

	if second.settings.ProjectInput {
		first.index.Swap(second.index)
		first.settings.ProjectInput = true
	} else {
		// Drop consumed results from first's index, then push second's
		// results to the front, keeping their order.
		for _, node := range first.index.Nodes() {
			if removedFirstResult[node] > 0 {
				removedFirstResult[node]--
				first.index.RemoveNode(node)
			}
		}

		secondResult := second.index.Nodes()
		for i := len(secondResult) - 1; i >= 0; i-- {
			first.index.Prepend(secondResult[i])
		}
	}

	first.nodes = append(first.nodes, second.nodes...)
	first.index.rebuild()

	if first.cache == nil {
		first.cache = second.cache
	}

	if second.settings.MaxTemporaryColumns > first.settings.MaxTemporaryColumns {
		first.settings.MaxTemporaryColumns = second.settings.MaxTemporaryColumns
	}
	if second.settings.MaxTemporaryNonConstColumns > first.settings.MaxTemporaryNonConstColumns {
		first.settings.MaxTemporaryNonConstColumns = second.settings.MaxTemporaryNonConstColumns
	}
	if second.settings.MinCountToCompileExpression > first.settings.MinCountToCompileExpression {
		first.settings.MinCountToCompileExpression = second.settings.MinCountToCompileExpression
	}
	first.settings.ProjectedOutput = second.settings.ProjectedOutput

	// Drop inputs and actions nothing reaches anymore.
	first.removeUnused()

	return first, nil
}
