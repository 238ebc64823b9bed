// Package lineage implements a read-only view of a task's parent DAG,
// backing the `INF lineage <task-id>` command, with an Acyclic check over
// the built graph.
package lineage

import (
	"fmt"

	"github.com/dominikbraun/graph"
	"github.com/narust/reasoner/internal/evidence"
)

func taskHash(t *evidence.Task) string { return t.PersistentID }

// View wraps a graph built from one task's ancestry, rooted at that task.
type View struct {
	g    graph.Graph[string, *evidence.Task]
	root string
}

// Build walks t's Parent chain (§9, "cyclic/shared graphs": a task DAG via
// parent pointers, reference-counted, never cyclic by construction since
// parents are set only at creation) and returns a View over it.
func Build(t *evidence.Task) (*View, error) {
	g := graph.New(taskHash, graph.Directed(), graph.PreventCycles())

	cur := t
	for cur != nil {
		if err := addVertex(g, cur); err != nil {
			return nil, err
		}
		if cur.Parent != nil {
			if err := addVertex(g, cur.Parent); err != nil {
				return nil, err
			}
			if err := g.AddEdge(taskHash(cur.Parent), taskHash(cur)); err != nil && err != graph.ErrEdgeAlreadyExists {
				return nil, fmt.Errorf("lineage: add edge: %w", err)
			}
		}
		cur = cur.Parent
	}
	return &View{g: g, root: taskHash(t)}, nil
}

func addVertex(g graph.Graph[string, *evidence.Task], t *evidence.Task) error {
	if err := g.AddVertex(t); err != nil && err != graph.ErrVertexAlreadyExists {
		return fmt.Errorf("lineage: add vertex: %w", err)
	}
	return nil
}

// Ancestors returns the root task's parent chain, nearest ancestor first,
// rendered as printed sentences — the body of an `INF lineage` response.
func (v *View) Ancestors() ([]string, error) {
	preds, err := v.g.PredecessorMap()
	if err != nil {
		return nil, fmt.Errorf("lineage: predecessor map: %w", err)
	}
	var out []string
	cur := v.root
	for {
		edges := preds[cur]
		if len(edges) == 0 {
			break
		}
		var parentHash string
		for h := range edges {
			parentHash = h
			break
		}
		parent, err := v.g.Vertex(parentHash)
		if err != nil {
			return nil, fmt.Errorf("lineage: vertex %q: %w", parentHash, err)
		}
		out = append(out, parent.Sentence.String())
		cur = parentHash
	}
	return out, nil
}

// Acyclic reports whether the underlying graph admits a topological order.
// graph.PreventCycles already rejects any edge that would close a cycle at
// insertion time, so this always succeeds for a View built by Build; it
// lets a caller or test assert the property directly rather than trust
// construction-time enforcement silently.
func (v *View) Acyclic() (bool, error) {
	if _, err := graph.TopologicalSort(v.g); err != nil {
		return false, nil
	}
	return true, nil
}

// Depth reports how many ancestors the root task has.
func (v *View) Depth() (int, error) {
	ancestors, err := v.Ancestors()
	if err != nil {
		return 0, err
	}
	return len(ancestors), nil
}
