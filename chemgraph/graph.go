/*
 * graph.go, part of redint.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

//Package chemgraph represents a set of bonded atoms as an undirected gonum graph,
//with one node per atom, so the gonum graph algorithms can be used on it.
package chemgraph

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

//Topology is an undirected graph where the nodes are atoms, identified by
//their index, and the edges are bonds. It implements gonum's graph.Undirected.
type Topology struct {
	*simple.UndirectedGraph
}

//NewTopology returns a graph with n atoms and the given bonds. All atoms are
//present as nodes, even if they have no bonds. Self bonds and repeated bonds
//are ignored. It panics if a bond references an atom outside 0..n-1.
func NewTopology(n int, bonds [][2]int) *Topology {
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	for _, b := range bonds {
		if b[0] < 0 || b[1] < 0 || b[0] >= n || b[1] >= n {
			panic(fmt.Sprintf("NewTopology: bond %v references atoms outside 0-%d", b, n-1))
		}
		if b[0] == b[1] {
			continue
		}
		g.SetEdge(simple.Edge{F: simple.Node(b[0]), T: simple.Node(b[1])})
	}
	return &Topology{UndirectedGraph: g}
}

func ids(nodes []graph.Node) []int {
	ret := make([]int, 0, len(nodes))
	for _, v := range nodes {
		ret = append(ret, int(v.ID()))
	}
	sort.Ints(ret)
	return ret
}

//Neighbors returns the indexes of the atoms bonded to i, in ascending order.
func (T *Topology) Neighbors(i int) []int {
	return ids(graph.NodesOf(T.From(int64(i))))
}

//Components returns the connected components of the graph. Each component is
//sorted in ascending order, and the components are sorted by their first element,
//so the result is the same for the same graph, regardless of the
//order in which the bonds were added.
func (T *Topology) Components() [][]int {
	cc := topo.ConnectedComponents(T.UndirectedGraph)
	ret := make([][]int, 0, len(cc))
	for _, c := range cc {
		ret = append(ret, ids(c))
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}
