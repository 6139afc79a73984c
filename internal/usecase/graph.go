package usecase

import (
	"container/heap"
	"context"
	"fmt"

	"airnova-service/internal/domain/repository"
)

// Edge is one directed edge of the route graph.
type Edge struct {
	To     string
	Weight float64
}

// Graph is the adjacency representation of all route legs, keyed by airport
// code. It is built fresh per search and owned by the request that built it.
type Graph map[string][]Edge

// GraphBuilder turns the persisted route legs into a searchable graph.
type GraphBuilder struct {
	routeRepo repository.RouteRepository
}

// NewGraphBuilder creates a new graph builder.
func NewGraphBuilder(routeRepo repository.RouteRepository) *GraphBuilder {
	return &GraphBuilder{routeRepo: routeRepo}
}

// Build reads all route legs once and inserts each as two directed edges,
// one per direction, with the leg's weight. An empty route table yields an
// empty graph, not an error. Parallel legs between the same pair are kept;
// the shortest-path search prefers the cheaper one on its own.
func (b *GraphBuilder) Build(ctx context.Context) (Graph, error) {
	routes, err := b.routeRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing route legs: %w", err)
	}

	graph := make(Graph, len(routes))
	for _, r := range routes {
		graph[r.SourceAirport] = append(graph[r.SourceAirport], Edge{To: r.DestinationAirport, Weight: r.DistanceKM})
		graph[r.DestinationAirport] = append(graph[r.DestinationAirport], Edge{To: r.SourceAirport, Weight: r.DistanceKM})
	}
	return graph, nil
}

// frontierEntry carries the accumulated cost and the full path so far.
// seq is a monotonic insertion counter: equal-cost entries pop in insertion
// order, making tie-breaks deterministic across runs.
type frontierEntry struct {
	cost float64
	node string
	path []string
	seq  int
}

type frontier []frontierEntry

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x interface{}) {
	*f = append(*f, x.(frontierEntry))
}

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	entry := old[n-1]
	*f = old[:n-1]
	return entry
}

// ShortestPath runs Dijkstra over the graph and returns the total cost and
// ordered airport codes from start to end. found is false when end cannot be
// reached; callers must treat that as "no route", not an error.
// start == end returns cost 0 with a single-element path.
func ShortestPath(graph Graph, start, end string) (cost float64, path []string, found bool) {
	visited := make(map[string]bool)

	pq := &frontier{{cost: 0, node: start, path: nil, seq: 0}}
	heap.Init(pq)
	seq := 1

	for pq.Len() > 0 {
		entry := heap.Pop(pq).(frontierEntry)

		if visited[entry.node] {
			continue
		}
		visited[entry.node] = true

		// Copy, never append in place: sibling entries share the parent's
		// backing array and must not clobber each other's paths.
		entryPath := make([]string, len(entry.path), len(entry.path)+1)
		copy(entryPath, entry.path)
		entryPath = append(entryPath, entry.node)

		if entry.node == end {
			return entry.cost, entryPath, true
		}

		for _, edge := range graph[entry.node] {
			if visited[edge.To] {
				continue
			}
			heap.Push(pq, frontierEntry{
				cost: entry.cost + edge.Weight,
				node: edge.To,
				path: entryPath,
				seq:  seq,
			})
			seq++
		}
	}

	return 0, nil, false
}
