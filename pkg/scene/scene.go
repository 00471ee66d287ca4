// Package scene holds the render-agnostic visual nodes that trackers
// and view providers publish. A renderer owns the drawing; this layer
// only carries coordinate arrays, line vertex counts, marker flags and
// colors, and a retained graph to attach them to.
package scene

import "github.com/trailscad/trails/pkg/geometry"

// Color is an RGB triple in [0, 1]
type Color struct {
	R, G, B float32
}

// Node is one retained visual element. A node with VertexCounts is a
// line set over Points; a node with Marker set draws Points as pick
// handles; a bare node just groups its children.
type Node struct {
	ID      string
	Visible bool
	Color   Color

	Points       []geometry.Vector3
	VertexCounts []int32
	Marker       bool
	MarkerSize   float32

	Children []*Node
}

// Graph is the retained scene state shared by every tracker in an edit
// session. Nodes are addressed by ID for picking and removal.
type Graph struct {
	Root *Node
	byID map[string]*Node
}

// NewGraph creates a scene graph with an empty root
func NewGraph() *Graph {
	root := &Node{ID: "root", Visible: true}
	return &Graph{
		Root: root,
		byID: map[string]*Node{root.ID: root},
	}
}

// Insert attaches a node under the given parent (nil means root)
func (g *Graph) Insert(parent, node *Node) {
	if parent == nil {
		parent = g.Root
	}

	parent.Children = append(parent.Children, node)
	g.index(node)
}

func (g *Graph) index(node *Node) {
	if node.ID != "" {
		g.byID[node.ID] = node
	}
	for _, child := range node.Children {
		g.index(child)
	}
}

// Remove detaches a node (and its subtree) from the graph
func (g *Graph) Remove(id string) {
	node, ok := g.byID[id]
	if !ok {
		return
	}

	g.unindex(node)
	g.detach(g.Root, node)
}

func (g *Graph) unindex(node *Node) {
	delete(g.byID, node.ID)
	for _, child := range node.Children {
		g.unindex(child)
	}
}

func (g *Graph) detach(parent, node *Node) bool {
	for i, child := range parent.Children {
		if child == node {
			parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
			return true
		}
		if g.detach(child, node) {
			return true
		}
	}
	return false
}

// Find returns the node with the given ID, or nil
func (g *Graph) Find(id string) *Node {
	return g.byID[id]
}

// Walk visits every visible node depth-first
func (g *Graph) Walk(visit func(*Node)) {
	walk(g.Root, visit)
}

func walk(node *Node, visit func(*Node)) {
	if !node.Visible {
		return
	}

	visit(node)
	for _, child := range node.Children {
		walk(child, visit)
	}
}
