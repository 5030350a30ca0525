package topics

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

const (
	restarts       = 10
	maxIterations  = 300
	convergenceTol = 1e-4
)

type kmeansResult struct {
	assignments []int
	centroids   *mat.Dense
	inertia     float64
}

// kMeans partitions the rows of data into k clusters by Euclidean
// distance. It runs several independent random initializations from one
// seeded source and keeps the lowest-inertia solution, so results are
// identical for identical input and seed.
func kMeans(data *mat.Dense, k int, seed int64) kmeansResult {
	rng := rand.New(rand.NewSource(seed))
	best := kmeansResult{inertia: math.Inf(1)}
	for r := 0; r < restarts; r++ {
		res := runKMeans(data, k, rng)
		if res.inertia < best.inertia {
			best = res
		}
	}
	return best
}

func runKMeans(data *mat.Dense, k int, rng *rand.Rand) kmeansResult {
	n, _ := data.Dims()
	centroids := initialCentroids(data, k, rng)

	assignments := make([]int, n)
	prev := make([]int, n)
	for i := range prev {
		prev[i] = -1
	}

	for iter := 0; iter < maxIterations; iter++ {
		assignPoints(data, centroids, assignments)
		if equalInts(assignments, prev) {
			break
		}
		copy(prev, assignments)

		next := meanCentroids(data, assignments, k, centroids)
		shift := centroidShift(centroids, next)
		centroids = next
		if shift < convergenceTol {
			assignPoints(data, centroids, assignments)
			break
		}
	}

	return kmeansResult{
		assignments: assignments,
		centroids:   centroids,
		inertia:     totalInertia(data, centroids, assignments),
	}
}

// initialCentroids seeds k centroids from distinct random rows.
func initialCentroids(data *mat.Dense, k int, rng *rand.Rand) *mat.Dense {
	n, dims := data.Dims()
	centroids := mat.NewDense(k, dims, nil)
	for i, idx := range rng.Perm(n)[:k] {
		centroids.SetRow(i, data.RawRowView(idx))
	}
	return centroids
}

func assignPoints(data, centroids *mat.Dense, out []int) {
	n, _ := data.Dims()
	k, _ := centroids.Dims()
	for i := 0; i < n; i++ {
		point := data.RawRowView(i)
		bestCluster := 0
		bestDist := math.Inf(1)
		for c := 0; c < k; c++ {
			if d := squaredDistance(point, centroids.RawRowView(c)); d < bestDist {
				bestDist = d
				bestCluster = c
			}
		}
		out[i] = bestCluster
	}
}

// meanCentroids recomputes each centroid as the mean of its members. A
// cluster that lost every member keeps its previous centroid so the run
// stays deterministic.
func meanCentroids(data *mat.Dense, assignments []int, k int, prev *mat.Dense) *mat.Dense {
	n, dims := data.Dims()
	next := mat.NewDense(k, dims, nil)
	counts := make([]int, k)

	for i := 0; i < n; i++ {
		c := assignments[i]
		counts[c]++
		row := data.RawRowView(i)
		target := next.RawRowView(c)
		for j, val := range row {
			target[j] += val
		}
	}
	for c := 0; c < k; c++ {
		if counts[c] == 0 {
			next.SetRow(c, prev.RawRowView(c))
			continue
		}
		target := next.RawRowView(c)
		inv := 1 / float64(counts[c])
		for j := range target {
			target[j] *= inv
		}
	}
	return next
}

func centroidShift(a, b *mat.Dense) float64 {
	k, _ := a.Dims()
	var total float64
	for c := 0; c < k; c++ {
		total += squaredDistance(a.RawRowView(c), b.RawRowView(c))
	}
	return math.Sqrt(total)
}

func totalInertia(data, centroids *mat.Dense, assignments []int) float64 {
	n, _ := data.Dims()
	var total float64
	for i := 0; i < n; i++ {
		total += squaredDistance(data.RawRowView(i), centroids.RawRowView(assignments[i]))
	}
	return total
}

func squaredDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return sum
}

func equalInts(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
