package usecase

import (
	"context"

	"airnova-service/pkg/logger"
	"airnova-service/pkg/metrics"
)

// RoutePlan is the outcome of one shortest-route search. Reachable is false
// when the two airports sit in disconnected components; that is a legitimate
// negative result, not an error.
type RoutePlan struct {
	Source          string   `json:"source"`
	Destination     string   `json:"destination"`
	TotalDistanceKM float64  `json:"total_distance_km"`
	Path            []string `json:"path,omitempty"`
	Reachable       bool     `json:"reachable"`
}

// RoutePlanner composes the airport resolver, graph builder and shortest
// path search into one operation. The graph is rebuilt per request: the
// route table is small and a fresh build keeps results current without an
// invalidation protocol.
type RoutePlanner struct {
	resolver *AirportResolver
	builder  *GraphBuilder
	metrics  *metrics.Metrics
	logger   logger.Logger
}

// NewRoutePlanner creates a new route planner.
func NewRoutePlanner(resolver *AirportResolver, builder *GraphBuilder, m *metrics.Metrics, logger logger.Logger) *RoutePlanner {
	return &RoutePlanner{
		resolver: resolver,
		builder:  builder,
		metrics:  m,
		logger:   logger,
	}
}

// Plan resolves both endpoints (city name or code) and finds the cheapest
// multi-leg itinerary between them. Returns ErrAirportNotFound when either
// endpoint cannot be resolved.
func (p *RoutePlanner) Plan(ctx context.Context, from, to string) (*RoutePlan, error) {
	source, err := p.resolver.Resolve(ctx, from)
	if err != nil {
		return nil, err
	}
	destination, err := p.resolver.Resolve(ctx, to)
	if err != nil {
		return nil, err
	}

	graph, err := p.builder.Build(ctx)
	if err != nil {
		return nil, err
	}

	if p.metrics != nil {
		p.metrics.RouteSearches.Inc()
	}

	cost, path, found := ShortestPath(graph, source, destination)
	if !found {
		p.logger.Info("no route between airports", "source", source, "destination", destination)
		return &RoutePlan{Source: source, Destination: destination, Reachable: false}, nil
	}

	return &RoutePlan{
		Source:          source,
		Destination:     destination,
		TotalDistanceKM: cost,
		Path:            path,
		Reachable:       true,
	}, nil
}
