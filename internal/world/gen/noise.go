package gen

import "math"

// NoiseParameters shape the height field produced by a NoiseGenerator.
type NoiseParameters struct {
	Octaves      int
	Amplitude    int
	Smoothness   int
	HeightOffset int
	Roughness    float64
}

// DefaultNoiseParameters are used until SetParameters is called.
var DefaultNoiseParameters = NoiseParameters{
	Octaves:      7,
	Amplitude:    70,
	Smoothness:   235,
	HeightOffset: -5,
	Roughness:    0.53,
}

// NoiseGenerator is seeded 2D value noise summed over octaves.
type NoiseGenerator struct {
	params NoiseParameters
	seed   int32
}

// NewNoiseGenerator returns a generator using DefaultNoiseParameters.
func NewNoiseGenerator(seed int32) *NoiseGenerator {
	return &NoiseGenerator{params: DefaultNoiseParameters, seed: seed}
}

// SetParameters replaces the noise shape.
func (n *NoiseGenerator) SetParameters(p NoiseParameters) {
	n.params = p
}

// Parameters returns the current noise shape.
func (n *NoiseGenerator) Parameters() NoiseParameters { return n.params }

// Height samples the field at block (x, z) of chunk (chunkX, chunkZ).
// Negative world coordinates always yield one below water level.
// The result is never below 1.
func (n *NoiseGenerator) Height(x, z, chunkX, chunkZ int) float64 {
	newX := int32(x) + int32(chunkX)*ChunkSize
	newZ := int32(z) + int32(chunkZ)*ChunkSize
	if newX < 0 || newZ < 0 {
		return WaterLevel - 1
	}

	smooth := float64(n.params.Smoothness)
	total := 0.0
	for a := 0; a < n.params.Octaves-1; a++ {
		frequency := math.Pow(2, float64(a))
		amplitude := math.Pow(n.params.Roughness, float64(a))
		total += n.noise(
			float64(newX)*frequency/smooth,
			float64(newZ)*frequency/smooth,
		) * amplitude
	}

	val := (total/2.1+1.2)*float64(n.params.Amplitude) + float64(n.params.HeightOffset)
	if val > 0 {
		return val
	}
	return 1
}

// noiseInt hashes a lattice index into [-1, 1]. Arithmetic wraps at 32 bits.
func (n *NoiseGenerator) noiseInt(v int32) float64 {
	v += n.seed
	v = (v << 13) ^ v
	nn := (v*(v*v*60493+19990303) + 1376312589) & 0x7fffffff
	return 1 - float64(nn)/1073741824
}

func (n *NoiseGenerator) noiseAt(x, z float64) float64 {
	return n.noiseInt(int32(x + z*57))
}

// cosLerp blends a and b along t with a cosine curve.
func cosLerp(a, b, t float64) float64 {
	mu := (1 - math.Cos(t*3.14)) / 2
	return a*(1-mu) + b*mu
}

func (n *NoiseGenerator) noise(x, z float64) float64 {
	fx := math.Floor(x)
	fz := math.Floor(z)

	s := n.noiseAt(fx, fz)
	t := n.noiseAt(fx+1, fz)
	u := n.noiseAt(fx, fz+1)
	v := n.noiseAt(fx+1, fz+1)

	low := cosLerp(s, t, x-fx)
	high := cosLerp(u, v, x-fx)
	return cosLerp(low, high, z-fz)
}

func smoothStep(edge0, edge1, x float32) float32 {
	x = x * x * (3 - 2*x)
	return edge0*x + edge1*(1-x)
}

// smoothInterpolation blends four corner heights across the rectangle
// [xMin,xMax] x [zMin,zMax], smoothstepping along x then z.
func smoothInterpolation(bottomLeft, topLeft, bottomRight, topRight, xMin, xMax, zMin, zMax, x, z float32) float32 {
	width := xMax - xMin
	height := zMax - zMin
	xValue := 1 - (x-xMin)/width
	zValue := 1 - (z-zMin)/height

	a := smoothStep(bottomLeft, bottomRight, xValue)
	b := smoothStep(topLeft, topRight, xValue)
	return smoothStep(a, b, zValue)
}
