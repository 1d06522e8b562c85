// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

package artifact

import (
	"fmt"
	"math"
)

// LeafChild is the child id recorded for both children of a leaf node.
const LeafChild = -1

// Node is one record of a tree arena. Split nodes send x[Feature] <= Threshold
// to Left and everything else to Right. Leaf nodes carry Value and have both
// children set to LeafChild.
type Node struct {
	Feature   int
	Threshold float64
	Left      int
	Right     int
	Value     float64
}

// IsLeaf reports whether n terminates evaluation.
func (n *Node) IsLeaf() bool {
	return n.Left == LeafChild
}

// Tree is a regression tree stored as an arena of nodes indexed by id.
// Node 0 is the root. Children always have a larger id than their parent,
// so evaluation walks strictly forward and cannot cycle.
type Tree struct {
	nodes []Node
}

// NewTree validates nodes against numFeatures and returns the tree.
func NewTree(nodes []Node, numFeatures int) (*Tree, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("tree has no nodes")
	}
	n := len(nodes)
	for id := range nodes {
		node := &nodes[id]
		if node.Left == LeafChild || node.Right == LeafChild {
			if node.Left != node.Right {
				return nil, fmt.Errorf("node %d has exactly one child", id)
			}
			if math.IsNaN(node.Value) || math.IsInf(node.Value, 0) {
				return nil, fmt.Errorf("leaf %d has non-finite value", id)
			}
			continue
		}
		if node.Left <= id || node.Left >= n || node.Right <= id || node.Right >= n {
			return nil, fmt.Errorf("node %d has out-of-order children %d/%d", id, node.Left, node.Right)
		}
		if node.Feature < 0 || node.Feature >= numFeatures {
			return nil, fmt.Errorf("node %d splits on feature %d, model has %d", id, node.Feature, numFeatures)
		}
		if math.IsNaN(node.Threshold) || math.IsInf(node.Threshold, 0) {
			return nil, fmt.Errorf("node %d has non-finite threshold", id)
		}
	}
	return &Tree{nodes: append([]Node(nil), nodes...)}, nil
}

// NodeCount returns the number of nodes in the arena.
func (t *Tree) NodeCount() int {
	return len(t.nodes)
}

// Evaluate walks the tree for x and returns the leaf value.
//
// Feature values are narrowed to float32 before the threshold comparison.
// Split thresholds were fitted on float32 inputs, so this reproduces the
// routing of values that fall between two float32 neighbours.
//
// x must have at least as many values as the ensemble's feature count.
func (t *Tree) Evaluate(x []float64) float64 {
	id := 0
	for {
		node := &t.nodes[id]
		if node.IsLeaf() {
			return node.Value
		}
		if float64(float32(x[node.Feature])) <= node.Threshold {
			id = node.Left
		} else {
			id = node.Right
		}
	}
}

// Ensemble is an ordered collection of independently trained trees whose
// outputs are averaged.
type Ensemble struct {
	ModelType   string
	NumFeatures int
	Trees       []*Tree
}

// TreeCount returns the number of trees in the ensemble.
func (e *Ensemble) TreeCount() int {
	return len(e.Trees)
}

// Outputs evaluates every tree on x and writes one value per tree into out,
// which is grown if needed. The returned slice is in tree order.
func (e *Ensemble) Outputs(x []float64, out []float64) ([]float64, error) {
	if len(x) != e.NumFeatures {
		return nil, fmt.Errorf("feature vector has %d values, model expects %d", len(x), e.NumFeatures)
	}
	if cap(out) < len(e.Trees) {
		out = make([]float64, len(e.Trees))
	}
	out = out[:len(e.Trees)]
	for i, tree := range e.Trees {
		out[i] = tree.Evaluate(x)
	}
	return out, nil
}
