package resolve

import "slices"

// components finds the strongly connected components of the graph given by
// nodes and edges, using Tarjan's algorithm.
//
// Nodes are visited in the given order and successors in the order edges
// returns them, so the result is deterministic. Components are returned in
// reverse topological order: a component comes after every component it
// has an edge to. Members of a component keep the order of nodes.
func components[N comparable](nodes []N, edges func(N) []N) [][]N {
	var (
		index   = 0
		stack   []N
		indices = make(map[N]int, len(nodes))
		lowlink = make(map[N]int, len(nodes))
		onStack = make(map[N]bool, len(nodes))
		sccs    [][]N
	)
	position := make(map[N]int, len(nodes))
	for i, n := range nodes {
		position[n] = i
	}

	var strongConnect func(N)
	strongConnect = func(v N) {
		indices[v] = index
		lowlink[v] = index
		index++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range edges(v) {
			if _, known := position[w]; !known {
				continue
			}
			if _, visited := indices[w]; !visited {
				strongConnect(w)
				lowlink[v] = min(lowlink[v], lowlink[w])
			} else if onStack[w] {
				lowlink[v] = min(lowlink[v], indices[w])
			}
		}

		if lowlink[v] == indices[v] {
			var scc []N
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			slices.SortFunc(scc, func(a, b N) int { return position[a] - position[b] })
			sccs = append(sccs, scc)
		}
	}

	for _, n := range nodes {
		if _, visited := indices[n]; !visited {
			strongConnect(n)
		}
	}
	return sccs
}

// cyclic reports whether the component is a cycle: it has more than one
// member, or its only member has an edge to itself.
func cyclic[N comparable](scc []N, edges func(N) []N) bool {
	if len(scc) > 1 {
		return true
	}
	for _, w := range edges(scc[0]) {
		if w == scc[0] {
			return true
		}
	}
	return false
}

// cyclePath returns a path through the component that starts and ends at
// its first member, following edges inside the component.
func cyclePath[N comparable](scc []N, edges func(N) []N) []N {
	in := make(map[N]bool, len(scc))
	for _, n := range scc {
		in[n] = true
	}
	start := scc[0]
	path := []N{start}
	seen := map[N]bool{start: true}
	var walk func(N) bool
	walk = func(v N) bool {
		for _, w := range edges(v) {
			if w == start {
				path = append(path, w)
				return true
			}
			if !in[w] || seen[w] {
				continue
			}
			seen[w] = true
			path = append(path, w)
			if walk(w) {
				return true
			}
			path = path[:len(path)-1]
		}
		return false
	}
	walk(start)
	return path
}
