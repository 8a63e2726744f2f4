package image

import (
	"cmp"
	"fmt"
	"image"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/colorprism/pkg/colour"
)

// MaxDominantColours bounds the number of clusters Dominant will compute.
const MaxDominantColours = 64

// DominantColour is one cluster of an image's pixels.
type DominantColour struct {
	Colour colour.RGBA
	// Weight is the share of sampled pixels in the cluster, in (0, 1].
	Weight float64
}

// Clusterer groups image pixels with k-means in CIE L*a*b* space.
type Clusterer struct {
	MaxIterations int
	// Convergence is the mean centroid movement, in Lab units, below which
	// iteration stops.
	Convergence float64
	MaxSamples  int
	// Seed makes centroid initialisation repeatable.
	Seed uint64
}

// NewClusterer creates a Clusterer with default settings.
func NewClusterer() *Clusterer {
	return &Clusterer{
		MaxIterations: 20,
		Convergence:   0.5,
		MaxSamples:    2000,
		Seed:          1,
	}
}

// Dominant returns up to count colours that best represent img, heaviest
// first. Fully transparent pixels are ignored. When the image holds no more
// than count distinct colours, each is returned with its exact share.
func (c *Clusterer) Dominant(img image.Image, count int) ([]DominantColour, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 || count > MaxDominantColours {
		return nil, fmt.Errorf("colour count must be between 1 and %d, got %d", MaxDominantColours, count)
	}

	pixels := c.samplePixels(img)
	if len(pixels) == 0 {
		return nil, fmt.Errorf("no opaque pixels found in image")
	}

	counts := make(map[uint32]int)
	for _, p := range pixels {
		counts[p.ARGB()]++
	}
	if len(counts) <= count {
		result := make([]DominantColour, 0, len(counts))
		for argb, n := range counts {
			result = append(result, DominantColour{
				Colour: colour.FromARGB(argb),
				Weight: float64(n) / float64(len(pixels)),
			})
		}
		sortDominant(result)
		return result, nil
	}

	points := make([]lab, len(pixels))
	for i, p := range pixels {
		points[i] = toLab(p)
	}

	centroids, assignments := c.kmeans(points, count)

	weights := make([]int, len(centroids))
	for _, a := range assignments {
		weights[a]++
	}

	result := make([]DominantColour, 0, len(centroids))
	for i, centroid := range centroids {
		if weights[i] == 0 {
			continue
		}
		result = append(result, DominantColour{
			Colour: centroid.rgba(),
			Weight: float64(weights[i]) / float64(len(points)),
		})
	}
	sortDominant(result)
	return result, nil
}

func sortDominant(colours []DominantColour) {
	slices.SortFunc(colours, func(a, b DominantColour) int {
		if c := cmp.Compare(b.Weight, a.Weight); c != 0 {
			return c
		}
		return cmp.Compare(a.Colour.ARGB(), b.Colour.ARGB())
	})
}

// samplePixels reads every pixel of small images and a regular grid of
// large ones. Alpha is dropped from the samples it keeps.
func (c *Clusterer) samplePixels(img image.Image) []colour.RGBA {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total <= 0 {
		return nil
	}

	step := 1
	if c.MaxSamples > 0 && total > c.MaxSamples {
		step = max(int(math.Sqrt(float64(total)/float64(c.MaxSamples))), 1)
	}

	pixels := make([]colour.RGBA, 0, min(total, max(c.MaxSamples, 1)))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			p := colour.FromColor(img.At(x, y))
			if p.A == 0 {
				continue
			}
			pixels = append(pixels, p.WithAlpha(1))
		}
	}
	return pixels
}

type lab struct {
	L, A, B float64
}

func toLab(c colour.RGBA) lab {
	l, a, b := colorful.Color{R: c.R, G: c.G, B: c.B}.Lab()
	return lab{l, a, b}
}

func (p lab) distance(other lab) float64 {
	dl := p.L - other.L
	da := p.A - other.A
	db := p.B - other.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

func (p lab) rgba() colour.RGBA {
	c := colorful.Lab(p.L, p.A, p.B).Clamped()
	return colour.RGBA{R: c.R, G: c.G, B: c.B, A: 1}
}

// kmeans clusters points into k groups and returns the centroids with the
// cluster index of every point.
func (c *Clusterer) kmeans(points []lab, k int) ([]lab, []int) {
	rng := rand.New(rand.NewPCG(c.Seed, c.Seed^0x9e3779b97f4a7c15))
	centroids := initialCentroids(points, k, rng)
	assignments := make([]int, len(points))
	assign(points, centroids, assignments)

	for range c.MaxIterations {
		next := recalculate(points, assignments, k, rng)

		movement := 0.0
		for i := range centroids {
			movement += centroids[i].distance(next[i])
		}
		centroids = next

		changed := assign(points, centroids, assignments)
		if changed == 0 || movement/float64(k) < c.Convergence {
			break
		}
	}

	return centroids, assignments
}

// initialCentroids seeds the clusters with k-means++: each new centroid is
// drawn with probability proportional to its squared distance from the
// nearest existing one.
func initialCentroids(points []lab, k int, rng *rand.Rand) []lab {
	centroids := make([]lab, 0, k)
	centroids = append(centroids, points[rng.IntN(len(points))])

	distances := make([]float64, len(points))
	for len(centroids) < k {
		total := 0.0
		for i, p := range points {
			d := p.distance(centroids[nearest(p, centroids)])
			distances[i] = d * d
			total += distances[i]
		}

		if total == 0 {
			centroids = append(centroids, centroids[len(centroids)-1])
			continue
		}

		target := rng.Float64() * total
		chosen := len(points) - 1
		cumulative := 0.0
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				chosen = i
				break
			}
		}
		centroids = append(centroids, points[chosen])
	}

	return centroids
}

func nearest(p lab, centroids []lab) int {
	best, bestDist := 0, math.Inf(1)
	for i, c := range centroids {
		if d := p.distance(c); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// assign moves every point to its nearest centroid and reports how many
// changed cluster.
func assign(points, centroids []lab, assignments []int) int {
	changed := 0
	for i, p := range points {
		n := nearest(p, centroids)
		if assignments[i] != n {
			assignments[i] = n
			changed++
		}
	}
	return changed
}

// recalculate moves each centroid to the mean of its points. An empty
// cluster is reseeded on a random point.
func recalculate(points []lab, assignments []int, k int, rng *rand.Rand) []lab {
	sums := make([]lab, k)
	counts := make([]int, k)
	for i, p := range points {
		cluster := assignments[i]
		sums[cluster].L += p.L
		sums[cluster].A += p.A
		sums[cluster].B += p.B
		counts[cluster]++
	}

	centroids := make([]lab, k)
	for i := range k {
		if counts[i] == 0 {
			centroids[i] = points[rng.IntN(len(points))]
			continue
		}
		n := float64(counts[i])
		centroids[i] = lab{sums[i].L / n, sums[i].A / n, sums[i].B / n}
	}
	return centroids
}
