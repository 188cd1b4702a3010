// Package lvgrid is a small toolkit for puzzle and simulation grids.
//
// It offers two grid models and the graph search that ties them together:
//
//	core/        arena directed multigraph with stable integer node IDs
//	dijkstra/    single-source shortest paths over core graphs, with an optional early-exit target
//	linkedgrid/  dense W×H grid whose cells are graph nodes joined by caller-chosen links
//	gridgraph/   bulk linking rules, connected components and reachability for linked grids
//	sparsegrid/  unbounded map-backed grid that tracks its bounds and draws windows with rulers
//
// A typical flow builds a linkedgrid.Grid, links it with gridgraph, and asks
// for distances or paths:
//
//	g := linkedgrid.New(w, h, parse)
//	gridgraph.LinkNeighbors(g, gridgraph.Conn4, canStep)
//	steps, ok, err := g.Distance(start, goal)
//
// None of the types are safe for concurrent mutation; each grid has a single owner.
package lvgrid
