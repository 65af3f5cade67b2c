package construct

import (
	"sort"

	"github.com/dominikbraun/graph"
	"go.uber.org/zap"
)

type ResourceGraph struct {
	underlying graph.Graph[ResourceId, Resource]
}

func NewResourceGraph() *ResourceGraph {
	return &ResourceGraph{
		underlying: graph.New(
			func(r Resource) ResourceId { return r.Id() },
			graph.Directed(),
			graph.PreventCycles(),
		),
	}
}

// AddResource adds the resource as a vertex. Adding the same resource twice
// is a no-op.
func (rg *ResourceGraph) AddResource(resource Resource) {
	err := rg.underlying.AddVertex(resource)
	if err == graph.ErrVertexAlreadyExists {
		return
	}
	zap.S().Debugf("adding resource: %s", resource.Id())
}

// AddDependency records that source depends on dest, adding either vertex if
// it is not yet present.
func (rg *ResourceGraph) AddDependency(source Resource, dest Resource) {
	rg.AddResource(source)
	rg.AddResource(dest)
	err := rg.underlying.AddEdge(source.Id(), dest.Id())
	if err == graph.ErrEdgeAlreadyExists {
		return
	}
	zap.S().Debugf("adding dependency %s -> %s", source.Id(), dest.Id())
}

func (rg *ResourceGraph) GetResource(id ResourceId) Resource {
	r, err := rg.underlying.Vertex(id)
	if err != nil {
		return nil
	}
	return r
}

// ListResources returns every resource ordered by id.
func (rg *ResourceGraph) ListResources() []Resource {
	adjacency, err := rg.underlying.AdjacencyMap()
	if err != nil {
		return nil
	}
	ids := make([]ResourceId, 0, len(adjacency))
	for id := range adjacency {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })

	resources := make([]Resource, 0, len(ids))
	for _, id := range ids {
		resources = append(resources, rg.GetResource(id))
	}
	return resources
}

// Dependencies returns the ids the given resource depends on, ordered.
func (rg *ResourceGraph) Dependencies(id ResourceId) []ResourceId {
	adjacency, err := rg.underlying.AdjacencyMap()
	if err != nil {
		return nil
	}
	deps := make([]ResourceId, 0, len(adjacency[id]))
	for dep := range adjacency[id] {
		deps = append(deps, dep)
	}
	sort.Slice(deps, func(i, j int) bool { return deps[i].Less(deps[j]) })
	return deps
}

// TopologicalSort returns the resource ids with every dependency ordered
// before its dependents, ties broken by id so the result is stable across
// runs.
func (rg *ResourceGraph) TopologicalSort() ([]ResourceId, error) {
	adjacency, err := rg.underlying.AdjacencyMap()
	if err != nil {
		return nil, err
	}
	return topologicalSort(adjacency, func(a, b ResourceId) bool { return a.Less(b) })
}
