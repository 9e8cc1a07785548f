// Package statespace is a toolkit for exploring finite puzzle state spaces:
// sparse 2D grids and the breadth-first and weighted searches that walk them.
//
// Packages:
//
//	geom/      Coord, the integer 2D point used as a grid key and search state
//	window/    bounding rectangle, auto-tracked from data or pinned by the caller
//	grid/      sparse Grid[V] with default-value reads, transforms, text codec,
//	           optional R-tree index and connected regions
//	frontier/  wave-by-wave BFS (distances, reachability, all shortest paths)
//	           and Dijkstra-style weighted search over successor functions
//	upqueue/   ascending priority queue of unique keys with decrease-key
//
// Everything is single-owner and synchronous: no locks, no goroutines, no
// cancellation. Searches run until their successor function's reachable set
// is exhausted, so that set must be finite.
//
// Quick example:
//
//	maze, _ := grid.ParseBool([]string{
//		"..#",
//		".##",
//		"...",
//	}, '#', grid.WithSize(3, 3))
//	next := func(c geom.Coord) []geom.Coord {
//		ns, _ := maze.NeighboursFunc(c, false, func(n geom.Coord) bool { return !maze.Get(n) })
//		return ns
//	}
//	steps, _ := frontier.Distance(geom.C(0, 0), geom.C(2, 2), next)
//	// steps == 4
package statespace
