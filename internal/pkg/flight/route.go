package flight

// ResolveRoutes returns the usable paths from origin to destination over the given edges:
// at most one direct path, and for every first hop out of origin the first second hop
// that reaches destination. Paths with more than one intermediate airport are never produced.
// An empty result means no route exists.
func ResolveRoutes(edges []RouteEdge, origin, destination string) []CandidatePath {
	paths := make([]CandidatePath, 0)

	for _, edge := range edges {
		if edge.Origin == origin && edge.Destination == destination {
			paths = append(paths, DirectPath(edge))
			break
		}
	}

	// duplicate edges in the source data must not yield duplicate paths
	seen := make(map[[2]RouteEdge]struct{})

	for _, first := range edges {
		if first.Origin != origin || first.Destination == destination || first.Destination == origin {
			continue
		}

		// only the first matching second hop is kept per first hop
		for _, second := range edges {
			if second.Origin != first.Destination || second.Destination != destination {
				continue
			}

			key := [2]RouteEdge{first, second}
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				paths = append(paths, OneStopPath(first, second))
			}

			break
		}
	}

	return paths
}

// DistinctEdges returns every edge used by paths once, in first-seen order.
func DistinctEdges(paths []CandidatePath) []RouteEdge {
	seen := make(map[RouteEdge]struct{})
	edges := make([]RouteEdge, 0, len(paths)*2)

	for _, path := range paths {
		for _, edge := range path.Edges() {
			if _, ok := seen[edge]; ok {
				continue
			}
			seen[edge] = struct{}{}
			edges = append(edges, edge)
		}
	}

	return edges
}
