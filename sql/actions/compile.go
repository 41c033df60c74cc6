package actions

import (
	"github.com/mitchellh/hashstructure"
	"github.com/sirupsen/logrus"

	"gopkg.in/src-d/go-expression-dag.v0/sql"
	"gopkg.in/src-d/go-expression-dag.v0/sql/expression"
)

// expressionShape is the cache key material of a function node: the
// function and the names and types of its arguments.
type expressionShape struct {
	Function string
	Types    []string
	Args     []string
	Result   string
}

// Fingerprint returns a stable hash identifying the shape of a function
// node, used to key the compiled expression cache.
func Fingerprint(node *Node) (uint64, error) {
	shape := expressionShape{
		Function: node.Function.Name(),
		Result:   node.ResultType.Name(),
	}
	for _, child := range node.Children {
		shape.Types = append(shape.Types, child.ResultType.Name())
		shape.Args = append(shape.Args, child.ResultName)
	}

	key, err := hashstructure.Hash(shape, nil)
	if err != nil {
		return sql.CacheKey(shape), nil
	}
	return key, nil
}

// CompileExpressions lets the DAG share prepared functions through the
// compiled expression cache: once an expression shape has been seen
// MinCountToCompileExpression times, its prepared form is published and
// later DAGs with the same shape pick it up instead of preparing their
// own. Only deterministic, stateless functions take part. Afterwards
// unreachable actions are pruned.
//
// Without the setting enabled or a cache on the DAG this is a no-op.
func (d *ActionsDAG) CompileExpressions() {
	if !d.settings.CompileExpressions || d.cache == nil {
		return
	}

	d.compileFunctions()
	d.removeUnused()
}

func (d *ActionsDAG) compileFunctions() {
	for _, node := range d.nodes {
		if node.Type != ActionFunction ||
			!node.Function.Deterministic() || node.Function.Stateful() {
			continue
		}

		key, err := Fingerprint(node)
		if err != nil {
			logrus.WithError(err).Debug("cannot fingerprint expression")
			continue
		}

		cached, err := d.cache.Get(key)
		if err != nil {
			if d.settings.MinCountToCompileExpression <= 1 {
				d.cache.Put(key, node.Executable)
			} else {
				d.cache.Put(key, uint64(1))
			}
			continue
		}

		switch v := cached.(type) {
		case expression.Executable:
			node.Executable = v
		case uint64:
			v++
			if v >= d.settings.MinCountToCompileExpression {
				d.cache.Put(key, node.Executable)
			} else {
				d.cache.Put(key, v)
			}
		}
	}
}
