package donut

import "math"

// StartAngle is where the first slice begins: 12 o'clock, with angles
// growing clockwise.
const StartAngle = -90.0

// Span is the angular extent of one slice in degrees.
type Span struct {
	Start float64
	Sweep float64
	// Share is the slice's fraction of the total, in [0, 1].
	Share float64
}

func (s Span) Mid() float64 {
	return s.Start + s.Sweep/2
}

func (s Span) End() float64 {
	return s.Start + s.Sweep
}

// Percent is the slice's share of the total as a percentage.
func (s Span) Percent() float64 {
	return s.Share * 100
}

// effectiveValue is what the angle math sees: negative and NaN values count
// as empty slices.
func effectiveValue(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}

// Total sums the slice values the partition uses.
func Total(slices []Slice) float64 {
	var t float64
	for _, s := range slices {
		t += effectiveValue(s.Value)
	}
	return t
}

// Partition converts slices into consecutive spans that together cover 360
// degrees. It returns nil spans when there is nothing to draw. The returned
// total is the plain sum and may be +Inf for huge values; the spans are still
// computed in that case.
func Partition(slices []Slice) ([]Span, float64) {
	total := Total(slices)
	if len(slices) == 0 || total <= 0 || math.IsNaN(total) {
		return nil, total
	}
	// a sum that overflows is redone on values divided by the largest one
	scale, sum := 1.0, total
	if math.IsInf(sum, 1) {
		for _, s := range slices {
			scale = math.Max(scale, effectiveValue(s.Value))
		}
		if math.IsInf(scale, 1) {
			return nil, total
		}
		sum = 0
		for _, s := range slices {
			sum += effectiveValue(s.Value) / scale
		}
	}
	spans := make([]Span, len(slices))
	angle := StartAngle
	for i, s := range slices {
		share := effectiveValue(s.Value) / scale / sum
		sweep := share * 360
		spans[i] = Span{Start: angle, Sweep: sweep, Share: share}
		angle += sweep
	}
	return spans, total
}
