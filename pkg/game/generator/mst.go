package generator

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/zyedidia/generic/mapset"
)

var (
	// ErrInvalidInput is returned when a generation step is called outside
	// its preconditions
	ErrInvalidInput = errors.New("invalid input")

	// ErrTooFewPoints is returned when edges are requested for fewer than two points
	ErrTooFewPoints = fmt.Errorf("%w: need at least two points to connect", ErrInvalidInput)
)

// Edge is an undirected connection between two point indices, A < B.
type Edge struct {
	A, B int
}

// NewEdge returns the edge between i and j with its ends ordered
func NewEdge(i, j int) Edge {
	if i > j {
		i, j = j, i
	}
	return Edge{A: i, B: j}
}

// disjointSet is a union-find forest with path halving and union by size
type disjointSet struct {
	parent []int
	size   []int
}

func newDisjointSet(n int) *disjointSet {
	d := &disjointSet{parent: make([]int, n), size: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}
	return d
}

func (d *disjointSet) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

// union merges the sets of a and b, returning false if they were already joined
func (d *disjointSet) union(a, b int) bool {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return false
	}
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
	return true
}

func distSq(a, b mgl64.Vec2) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

type weightedEdge struct {
	edge   Edge
	weight float64
}

// SpanningTree returns the Kruskal minimum spanning tree of the complete
// graph over points, weighted by squared distance. Ties keep enumeration order.
func SpanningTree(points []mgl64.Vec2) []Edge {
	n := len(points)
	if n < 2 {
		return nil
	}

	candidates := make([]weightedEdge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			candidates = append(candidates, weightedEdge{
				edge:   Edge{A: i, B: j},
				weight: distSq(points[i], points[j]),
			})
		}
	}
	slices.SortStableFunc(candidates, func(a, b weightedEdge) int {
		return cmp.Compare(a.weight, b.weight)
	})

	forest := newDisjointSet(n)
	tree := make([]Edge, 0, n-1)
	for _, c := range candidates {
		if forest.union(c.edge.A, c.edge.B) {
			tree = append(tree, c.edge)
			if len(tree) == n-1 {
				break
			}
		}
	}
	return tree
}

// BuildMST connects points with their minimum spanning tree, then gives every
// vertex of degree one or less an extra tie-in edge. The tie-in target is the
// non-adjacent vertex j minimising d²(i,j)/|p_j|², first index on ties, which
// closes loops instead of leaving dead ends.
func BuildMST(points []mgl64.Vec2) ([]Edge, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("build mst over %d points: %w", len(points), ErrTooFewPoints)
	}

	edges := SpanningTree(points)
	adjacent := make([]mapset.Set[int], len(points))
	for i := range adjacent {
		adjacent[i] = mapset.New[int]()
	}
	link := func(e Edge) {
		adjacent[e.A].Put(e.B)
		adjacent[e.B].Put(e.A)
	}
	for _, e := range edges {
		link(e)
	}

	for i := range points {
		if adjacent[i].Size() > 1 {
			continue
		}
		j := tieInTarget(points, i, adjacent[i])
		if j < 0 {
			continue
		}
		e := NewEdge(i, j)
		edges = append(edges, e)
		link(e)
	}
	return edges, nil
}

func tieInTarget(points []mgl64.Vec2, i int, adjacent mapset.Set[int]) int {
	best := -1
	bestScore := math.Inf(1)
	for j, p := range points {
		if j == i || adjacent.Has(j) {
			continue
		}
		score := distSq(points[i], p) / p.Dot(p)
		if best < 0 || score < bestScore {
			best, bestScore = j, score
		}
	}
	return best
}

// Connected checks that edges join all n vertices into one component
func Connected(n int, edges []Edge) bool {
	if n == 0 {
		return true
	}
	forest := newDisjointSet(n)
	components := n
	for _, e := range edges {
		if e.A < 0 || e.A >= n || e.B < 0 || e.B >= n {
			continue
		}
		if forest.union(e.A, e.B) {
			components--
		}
	}
	return components == 1
}

// Degrees returns the number of edges touching each of n vertices
func Degrees(n int, edges []Edge) []int {
	deg := make([]int, n)
	for _, e := range edges {
		if e.A >= 0 && e.A < n && e.B >= 0 && e.B < n {
			deg[e.A]++
			deg[e.B]++
		}
	}
	return deg
}
