package actions

import (
	"gopkg.in/src-d/go-expression-dag.v0/sql"
	"gopkg.in/src-d/go-expression-dag.v0/sql/expression"
)

// MatchColumnsMode selects how source columns are matched to result
// columns when building converting actions.
type MatchColumnsMode byte

const (
	// MatchColumnsPosition matches the i-th source to the i-th result.
	MatchColumnsPosition MatchColumnsMode = iota
	// MatchColumnsName matches each result to the leftmost remaining
	// source with the same name.
	MatchColumnsName
)

// MakeConvertingActions builds a DAG converting a block of source columns
// into the result schema: reordering, casting, materializing constants and
// renaming as needed.
//
// When the result column is constant the source must be too, with the same
// value unless ignoreConstantValues is set, in which case the result's
// value simply replaces the source.
func MakeConvertingActions(
	source []sql.TypedColumn,
	result []sql.TypedColumn,
	mode MatchColumnsMode,
	ignoreConstantValues bool,
) (*ActionsDAG, error) {
	if mode == MatchColumnsPosition && len(source) != len(result) {
		return nil, ErrColumnCountMismatch.New(len(source), len(result))
	}

	d := NewFromColumns(source)
	projection := make([]*Node, len(result))

	materialize := expression.NewMaterialize()

	// Remaining inputs by name. Duplicated names are consumed left to
	// right.
	var inputsByName map[string][]int
	if mode == MatchColumnsName {
		inputsByName = make(map[string][]int)
		for pos, input := range d.inputs {
			inputsByName[input.ResultName] = append(inputsByName[input.ResultName], pos)
		}
	}

	for i, res := range result {
		var src *Node

		switch mode {
		case MatchColumnsPosition:
			src = d.inputs[i]

		case MatchColumnsName:
			remaining := inputsByName[res.Name]
			if len(remaining) == 0 {
				return nil, ErrSourceColumnNotFound.New(res.Name)
			}
			src = d.inputs[remaining[0]]
			inputsByName[res.Name] = remaining[1:]
		}

		// Check constants.
		if res.Column != nil && sql.IsConst(res.Column) {
			if src.Column != nil && sql.IsConst(src.Column) {
				if ignoreConstantValues {
					node, err := d.addColumn(res, true)
					if err != nil {
						return nil, err
					}
					src = node
				} else if !constValuesEqual(res, src.Column) {
					return nil, ErrConstantValueMismatch.New(res.Name)
				}
			} else {
				return nil, ErrConstantExpected.New(res.Name)
			}
		}

		// Add a cast to convert into the result type if needed.
		if !sql.TypesEqual(res.Type, src.ResultType) {
			typeName := res.Type.Name()
			typeCol, err := sql.NewConstColumn(sql.String, 0, typeName)
			if err != nil {
				return nil, err
			}

			rightArg, err := d.addColumn(sql.TypedColumn{
				Column: typeCol,
				Type:   sql.String,
				Name:   typeName,
			}, true)
			if err != nil {
				return nil, err
			}

			cast := expression.NewCast(expression.Diagnostic{
				SourceName: src.ResultName,
				TargetName: res.Name,
			})

			src, err = d.addFunction(cast, []*Node{src, rightArg}, "", true)
			if err != nil {
				return nil, err
			}
		}

		if src.Column != nil && sql.IsConst(src.Column) &&
			!(res.Column != nil && sql.IsConst(res.Column)) {
			var err error
			src, err = d.addFunction(materialize, []*Node{src}, "", true)
			if err != nil {
				return nil, err
			}
		}

		if src.ResultName != res.Name {
			var err error
			src, err = d.addAliasNode(src, res.Name, true)
			if err != nil {
				return nil, err
			}
		}

		projection[i] = src
	}

	d.removeUnusedNodes(projection)
	d.ProjectInput()

	return d, nil
}

// constValuesEqual compares a source constant against the result constant
// in the result's type: values that convert and compare equal are equal
// even when the columns disagree on representation.
func constValuesEqual(res sql.TypedColumn, src sql.Column) bool {
	resValue := res.Column.(*sql.ConstColumn).Value()
	srcValue := src.(*sql.ConstColumn).Value()

	converted, err := res.Type.Convert(srcValue)
	if err != nil {
		return false
	}
	return res.Type.Compare(resValue, converted) == 0
}
