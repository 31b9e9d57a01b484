// Package noise implements a deterministic, seedable 2D fractal
// value-noise field. A Generator combines an integer lattice hash with
// smooth interpolation and octave summation (fractal Brownian motion),
// producing scalar values suitable for procedural terrain, textures,
// and visual effects.
package noise

// Generator holds the tunable parameters of a 2D noise field and
// samples it. It is a plain value holder: fields are independently
// settable, no cross-field validation is applied, and sampling never
// mutates the generator, so a single Generator may be shared by
// concurrent read-only samplers. Mutating it while another goroutine
// samples is a data race the caller must exclude.
type Generator struct {
	octaves     int
	amplitude   float64
	frequency   float64
	persistence float64
	lacunarity  float64
	scaleX      float64
	scaleY      float64
	bias        float64
	seed        int32
}

// New returns a Generator with the given parameters.
//
//   - octaves: number of summed fractal layers
//   - amplitude: output scaling multiplier
//   - frequency: base spatial frequency of the first octave
//   - persistence: per-octave amplitude decay multiplier
//   - lacunarity: per-octave frequency growth multiplier
//   - scaleX, scaleY: divisors applied to the input coordinates ("zoom");
//     a zero component yields NaN/Inf samples rather than an error
//   - bias: additive offset applied to the final result
//   - seed: deterministic offset injected into the lattice coordinates
func New(octaves int, amplitude, frequency, persistence, lacunarity, scaleX, scaleY, bias float64, seed int32) *Generator {
	return &Generator{
		octaves:     octaves,
		amplitude:   amplitude,
		frequency:   frequency,
		persistence: persistence,
		lacunarity:  lacunarity,
		scaleX:      scaleX,
		scaleY:      scaleY,
		bias:        bias,
		seed:        seed,
	}
}

// Noise2D samples the field at (x, y). The result is
// bias + amplitude * total(x/scaleX, y/scaleY): a pure function of the
// generator's parameters and the coordinate, bit-reproducible across
// calls. Floating-point specials (NaN, Inf) propagate through; there is
// no error channel.
func (g *Generator) Noise2D(x, y float64) float64 {
	return g.bias + g.amplitude*g.total(x/g.scaleX, y/g.scaleY)
}

// total sums the value sampler over the configured octaves, decaying
// amplitude by persistence and growing frequency by lacunarity per
// layer. Octave counts <= 0 yield 0.
func (g *Generator) total(x, y float64) float64 {
	t := 0.0
	amp := 1.0
	freq := g.frequency
	seed := float64(g.seed)

	for i := 0; i < g.octaves; i++ {
		// The axes are deliberately transposed going into the sampler,
		// and the seed shifts both identically. The generated field
		// depends on both; do not swap them back.
		t += value(y*freq+seed, x*freq+seed) * amp
		amp *= g.persistence
		freq *= g.lacunarity
	}
	return t
}

// Octaves returns the number of summed fractal layers.
func (g *Generator) Octaves() int { return g.octaves }

// SetOctaves sets the number of summed fractal layers.
func (g *Generator) SetOctaves(octaves int) { g.octaves = octaves }

// Amplitude returns the output scaling multiplier.
func (g *Generator) Amplitude() float64 { return g.amplitude }

// SetAmplitude sets the output scaling multiplier.
func (g *Generator) SetAmplitude(amplitude float64) { g.amplitude = amplitude }

// Frequency returns the base spatial frequency of the first octave.
func (g *Generator) Frequency() float64 { return g.frequency }

// SetFrequency sets the base spatial frequency of the first octave.
func (g *Generator) SetFrequency(frequency float64) { g.frequency = frequency }

// Persistence returns the per-octave amplitude decay multiplier.
func (g *Generator) Persistence() float64 { return g.persistence }

// SetPersistence sets the per-octave amplitude decay multiplier.
func (g *Generator) SetPersistence(persistence float64) { g.persistence = persistence }

// Lacunarity returns the per-octave frequency growth multiplier.
func (g *Generator) Lacunarity() float64 { return g.lacunarity }

// SetLacunarity sets the per-octave frequency growth multiplier.
func (g *Generator) SetLacunarity(lacunarity float64) { g.lacunarity = lacunarity }

// Scale returns the input coordinate divisors (scaleX, scaleY).
func (g *Generator) Scale() (float64, float64) { return g.scaleX, g.scaleY }

// SetScale sets the input coordinate divisors. Zero components are not
// rejected; they produce NaN/Inf samples.
func (g *Generator) SetScale(scaleX, scaleY float64) {
	g.scaleX = scaleX
	g.scaleY = scaleY
}

// Bias returns the additive offset applied to the final result.
func (g *Generator) Bias() float64 { return g.bias }

// SetBias sets the additive offset applied to the final result.
func (g *Generator) SetBias(bias float64) { g.bias = bias }

// Seed returns the deterministic lattice seed.
func (g *Generator) Seed() int32 { return g.seed }

// SetSeed sets the deterministic lattice seed.
func (g *Generator) SetSeed(seed int32) { g.seed = seed }
