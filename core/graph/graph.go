package graph

import (
	"sync"

	"github.com/figgo/figgo/core/logger"
)

// Node is a single component in the local import graph.
type Node struct {
	Name         string
	Dependencies []string
	Dependents   []string
}

// ComponentGraph tracks which UI-kit components import which others.
type ComponentGraph struct {
	nodes map[string]*Node
	mutex sync.RWMutex
}

func New() *ComponentGraph {
	return &ComponentGraph{
		nodes: make(map[string]*Node),
	}
}

// Expand performs a worklist traversal starting from roots. For every
// name not yet expanded it calls expand to discover that component's own
// imports, records the edges, and queues newly discovered names. The
// returned set is the transitive closure of names reachable from roots.
//
// Names whose expansion yields nothing (including names with no backing
// file) stay in the result set but grow no edges.
func (g *ComponentGraph) Expand(roots []string, expand func(name string) []string) map[string]struct{} {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	used := make(map[string]struct{}, len(roots))
	checked := make(map[string]struct{})

	queue := make([]string, 0, len(roots))
	for _, root := range roots {
		used[root] = struct{}{}
		queue = append(queue, root)
	}

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		if _, done := checked[name]; done {
			continue
		}
		checked[name] = struct{}{}

		for _, dep := range expand(name) {
			g.addEdge(name, dep)
			if _, seen := used[dep]; !seen {
				used[dep] = struct{}{}
				queue = append(queue, dep)
			}
		}
	}

	logger.Debug("ComponentGraph: expanded %d roots into %d reachable components (%d nodes)",
		len(roots), len(used), len(g.nodes))

	return used
}

// Reachable returns the set of components reachable from roots over the
// edges already recorded in the graph.
func (g *ComponentGraph) Reachable(roots []string) map[string]struct{} {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	reachable := make(map[string]struct{}, len(roots))
	queue := make([]string, 0, len(roots))
	for _, root := range roots {
		reachable[root] = struct{}{}
		queue = append(queue, root)
	}

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		node, exists := g.nodes[name]
		if !exists {
			continue
		}
		for _, dep := range node.Dependencies {
			if _, seen := reachable[dep]; !seen {
				reachable[dep] = struct{}{}
				queue = append(queue, dep)
			}
		}
	}

	return reachable
}

// Dependencies returns the direct imports recorded for a component.
func (g *ComponentGraph) Dependencies(name string) []string {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	node, exists := g.nodes[name]
	if !exists {
		return nil
	}

	deps := make([]string, len(node.Dependencies))
	copy(deps, node.Dependencies)
	return deps
}

// Dependents returns the components that import a component directly.
func (g *ComponentGraph) Dependents(name string) []string {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	node, exists := g.nodes[name]
	if !exists {
		return nil
	}

	dependents := make([]string, len(node.Dependents))
	copy(dependents, node.Dependents)
	return dependents
}

// Len returns the number of nodes in the graph.
func (g *ComponentGraph) Len() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return len(g.nodes)
}

// addEdge records from -> to, creating nodes as needed. Caller must hold
// the write lock.
func (g *ComponentGraph) addEdge(from, to string) {
	fromNode := g.ensureNode(from)
	toNode := g.ensureNode(to)

	for _, existing := range fromNode.Dependencies {
		if existing == to {
			return
		}
	}
	fromNode.Dependencies = append(fromNode.Dependencies, to)
	toNode.Dependents = append(toNode.Dependents, from)
}

func (g *ComponentGraph) ensureNode(name string) *Node {
	node, exists := g.nodes[name]
	if !exists {
		node = &Node{Name: name}
		g.nodes[name] = node
	}
	return node
}
