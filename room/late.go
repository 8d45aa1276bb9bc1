package room

import (
	"math"
	"math/rand"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"github.com/go-gl/mathgl/mgl64"
)

// sabineFactor is 24*ln(10): RT60 = sabineFactor/c * V/A. At c = 343 m/s
// this reduces to the familiar 0.161*V/A.
var sabineFactor = 24 * math.Log(10)

const tailNoiseSeed = 0x5eed

// LateReflections models the statistical reverberant tail as per-band decay
// times derived from room volume and absorption (a Sabine estimate). It does
// not depend on the listener position.
type LateReflections struct {
	rt60 [NumBands]float64
}

// RT60 returns the per-band decay times in seconds.
func (l *LateReflections) RT60() [NumBands]float64 {
	return l.rt60
}

// DecayTime returns the longest per-band decay time in seconds.
func (l *LateReflections) DecayTime() float64 {
	var longest float64
	for _, t := range l.rt60 {
		longest = math.Max(longest, t)
	}

	return longest
}

// recompute rebuilds all band decay times from the full current parameter
// set. Volume and absorption area are clamped to a small positive floor so
// degenerate rooms yield a finite (near-zero) decay instead of dividing by
// zero.
func (l *LateReflections) recompute(dims Dimensions, mats Materials, speedOfSound float64) {
	volume := math.Max(dims.Volume(), volumeEpsilon)
	areas := dims.WallAreas()

	for band := range l.rt60 {
		var absorptionArea float64
		for wall := range mats {
			absorptionArea += areas[wall] * mgl64.Clamp(mats[wall].Absorption[band], 0, 1)
		}

		absorptionArea = math.Max(absorptionArea, volumeEpsilon)
		l.rt60[band] = sabineFactor / speedOfSound * volume / absorptionArea
	}
}

// synthesizeTail renders the late tail as band-filtered noise with per-band
// exponential decay. The noise is filtered in the frequency domain: one FFT
// of the shared noise burst, then per band a spectral gate over the octave
// around the band center, an inverse transform, and the band's -60 dB decay
// envelope.
func (l *LateReflections) synthesizeTail(sampleRate float64, n int) ([]float64, error) {
	fftSize := nextPowerOf2(n)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(tailNoiseSeed))

	noise := make([]complex128, fftSize)
	for i := range n {
		noise[i] = complex(2*rng.Float64()-1, 0)
	}

	noiseFreq := make([]complex128, fftSize)
	if err := plan.Forward(noiseFreq, noise); err != nil {
		return nil, err
	}

	binWidth := sampleRate / float64(fftSize)
	tail := make([]float64, n)
	bandFreq := make([]complex128, fftSize)
	bandTime := make([]complex128, fftSize)
	bandReal := make([]float64, n)
	envelope := make([]float64, n)

	for band := range BandCenters {
		rt := l.rt60[band]
		if rt <= 0 {
			continue
		}

		lo := BandCenters[band] / math.Sqrt2
		hi := BandCenters[band] * math.Sqrt2

		for i := range bandFreq {
			bandFreq[i] = 0
		}

		// Keep the conjugate-symmetric pair of every in-band bin so the
		// inverse transform stays real.
		for k := 1; k <= fftSize/2; k++ {
			f := float64(k) * binWidth
			if f < lo || f > hi {
				continue
			}

			bandFreq[k] = noiseFreq[k]
			bandFreq[fftSize-k] = noiseFreq[fftSize-k]
		}

		if err := plan.Inverse(bandTime, bandFreq); err != nil {
			return nil, err
		}

		for i := range bandReal {
			bandReal[i] = real(bandTime[i])
		}

		// -60 dB over RT60 seconds.
		decay := math.Pow(10, -3/(rt*sampleRate))
		env := 1.0
		for i := range envelope {
			envelope[i] = env
			env *= decay
		}

		vecmath.MulBlockInPlace(bandReal, envelope)

		for i := range tail {
			tail[i] += bandReal[i]
		}
	}

	normalizeTail(tail)

	return tail, nil
}

// normalizeTail scales the tail to unit peak so the caller controls its
// level relative to the early taps.
func normalizeTail(tail []float64) {
	var peak float64
	for _, v := range tail {
		peak = math.Max(peak, math.Abs(v))
	}

	if peak == 0 {
		return
	}

	for i := range tail {
		tail[i] /= peak
	}
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size *= 2
	}

	return size
}
