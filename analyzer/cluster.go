package analyzer

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// ClusterOptions controls ClusterFeedback.
type ClusterOptions struct {
	K        int
	Seed     int64
	Restarts int
	MaxIter  int
}

func (o ClusterOptions) withDefaults() ClusterOptions {
	if o.K <= 0 {
		o.K = 3
	}
	if o.Seed == 0 {
		o.Seed = 42
	}
	if o.Restarts <= 0 {
		o.Restarts = 10
	}
	if o.MaxIter <= 0 {
		o.MaxIter = 300
	}
	return o
}

// ClusterFeedback partitions the non-blank texts into opts.K themes using k-means
// over their TF-IDF vectors. With fewer than K usable texts it returns a single
// General theme holding all of them. Items keep their input order within a theme.
func ClusterFeedback(texts []string, opts ClusterOptions) []Theme {
	opts = opts.withDefaults()
	docs := nonBlank(texts)
	if len(docs) < opts.K {
		return []Theme{{Label: GeneralTheme, Items: docs}}
	}

	rows := NewVectorizer(0).FitTransform(docs)
	rng := rand.New(rand.NewSource(opts.Seed))
	var best []int
	bestInertia := math.Inf(1)
	for run := 0; run < opts.Restarts; run++ {
		labels, inertia := kmeans(rows, opts.K, opts.MaxIter, rng)
		if inertia < bestInertia {
			best, bestInertia = labels, inertia
		}
	}

	themes := make([]Theme, opts.K)
	for i := range themes {
		themes[i] = Theme{Label: fmt.Sprintf("Theme %d", i+1), Items: []string{}}
	}
	for i, label := range best {
		themes[label].Items = append(themes[label].Items, docs[i])
	}
	return themes
}

// kmeans runs Lloyd's algorithm from a k-means++ seeding and returns the
// cluster index of every point with the final inertia.
func kmeans(points [][]float64, k, maxIter int, rng *rand.Rand) ([]int, float64) {
	centroids := seedCentroids(points, k, rng)
	labels := make([]int, len(points))
	for i := range labels {
		labels[i] = -1
	}
	for iter := 0; iter < maxIter; iter++ {
		changed := false
		for i, p := range points {
			nearest := nearestCentroid(p, centroids)
			if nearest != labels[i] {
				labels[i] = nearest
				changed = true
			}
		}
		if !changed {
			break
		}
		updateCentroids(points, labels, centroids)
	}
	var inertia float64
	for i, p := range points {
		d := floats.Distance(p, centroids[labels[i]], 2)
		inertia += d * d
	}
	return labels, inertia
}

func seedCentroids(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	centroids := make([][]float64, 0, k)
	centroids = append(centroids, cloneFloats(points[rng.Intn(len(points))]))
	dist := make([]float64, len(points))
	for len(centroids) < k {
		var total float64
		for i, p := range points {
			d := floats.Distance(p, centroids[nearestCentroid(p, centroids)], 2)
			dist[i] = d * d
			total += dist[i]
		}
		if total == 0 {
			centroids = append(centroids, cloneFloats(points[rng.Intn(len(points))]))
			continue
		}
		target := rng.Float64() * total
		pick := len(points) - 1
		for i, d := range dist {
			target -= d
			if target < 0 {
				pick = i
				break
			}
		}
		centroids = append(centroids, cloneFloats(points[pick]))
	}
	return centroids
}

func nearestCentroid(p []float64, centroids [][]float64) int {
	best := 0
	bestDist := math.Inf(1)
	for j, c := range centroids {
		if d := floats.Distance(p, c, 2); d < bestDist {
			best, bestDist = j, d
		}
	}
	return best
}

// updateCentroids moves every centroid to the mean of its members.
// A centroid without members stays where it is.
func updateCentroids(points [][]float64, labels []int, centroids [][]float64) {
	counts := make([]int, len(centroids))
	sums := make([][]float64, len(centroids))
	for j := range sums {
		sums[j] = make([]float64, len(centroids[j]))
	}
	for i, p := range points {
		floats.Add(sums[labels[i]], p)
		counts[labels[i]]++
	}
	for j := range centroids {
		if counts[j] == 0 {
			continue
		}
		floats.Scale(1/float64(counts[j]), sums[j])
		centroids[j] = sums[j]
	}
}

func cloneFloats(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
