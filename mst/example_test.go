// SPDX-License-Identifier: MIT

package mst_test

import (
	"fmt"

	"github.com/katalvlaran/mstforest/core"
	"github.com/katalvlaran/mstforest/mst"
)

// ExampleSolve grows the spanning tree of a four-vertex graph by repeatedly
// letting the front partition absorb its nearest neighbour.
func ExampleSolve() {
	g := core.NewGraph(core.WithWeighted())
	for _, v := range []string{"A", "B", "C", "D"} {
		_ = g.AddVertex(v)
	}
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("C", "D", 3)
	g.AddEdge("A", "D", 10)
	g.AddEdge("A", "C", 5)

	res, err := mst.Solve(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, a := range res.Arcs {
		fmt.Println(a)
	}
	fmt.Printf("total=%g spanning=%t\n", res.TotalWeight, res.Spanning())
	// Output:
	// A-B(1)
	// C-B(2)
	// D-C(3)
	// total=6 spanning=true
}

// ExampleSolve_disconnected shows the minimum spanning forest and the
// diagnostic reported for the component that could not grow further.
func ExampleSolve_disconnected() {
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 3)
	g.AddEdge("X", "Y", 4)
	g.AddEdge("Y", "Z", 1)
	g.AddEdge("X", "Z", 9)

	res, err := mst.Solve(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("arcs=%d total=%g\n", len(res.Arcs), res.TotalWeight)
	for _, d := range res.Diagnostics {
		fmt.Println(d.Err())
	}
	// Output:
	// arcs=4 total=8
	// mst: partition has no usable arc: partition 2 (root C, 3 vertices)
}

// ExampleVerify checks an arc set produced elsewhere.
func ExampleVerify() {
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("A", "B", 2)
	g.AddEdge("B", "C", 1)

	rep, err := mst.Verify(g, []mst.Arc{{From: "C", To: "B", Weight: 1}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(rep.Components, rep.Uncovered, rep.Spanning)
	// Output: 2 [A] false
}
