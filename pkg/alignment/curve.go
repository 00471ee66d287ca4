package alignment

import (
	"math"

	"github.com/trailscad/trails/pkg/geometry"
)

// Curve is a circular horizontal curve rounding one PI. All angles are
// measured in the XY plane; elevations ride along on the endpoints.
type Curve struct {
	PI     geometry.Vector3
	Radius float64

	// Derived from PI, Radius and the neighbouring PIs.
	Delta   float64 // deflection angle between tangent bearings, radians
	Tangent float64 // tangent leg length, Radius * tan(Delta / 2)
	Start   geometry.Vector3
	End     geometry.Vector3
}

// ComputeCurve derives the curve at pi between its neighbouring PIs
func ComputeCurve(prev, pi, next geometry.Vector3, radius float64) *Curve {
	c := &Curve{PI: pi, Radius: radius}
	c.Recompute(prev, next)
	return c
}

// Recompute re-derives delta, tangent length and curve endpoints from
// the current PI position and its neighbours
func (c *Curve) Recompute(prev, next geometry.Vector3) {
	in := c.PI.Sub(prev)
	out := next.Sub(c.PI)

	c.Delta = deflection(in, out)

	// A straight-through PI has no curve to fit.
	if c.Delta < 1e-12 || math.Abs(c.Delta-math.Pi) < 1e-12 {
		c.Tangent = 0
		c.Start = c.PI
		c.End = c.PI
		return
	}

	c.Tangent = c.Radius * math.Tan(c.Delta/2)

	inLen := in.Length()
	outLen := out.Length()

	if inLen > 0 {
		c.Start = c.PI.Sub(in.Mul(c.Tangent / inLen))
	} else {
		c.Start = c.PI
	}

	if outLen > 0 {
		c.End = c.PI.Add(out.Mul(c.Tangent / outLen))
	} else {
		c.End = c.PI
	}
}

// Fits reports whether the curve tangent legs, together with the
// neighbouring curves' tangent lengths, fit on the adjoining tangent
// runs
func (c *Curve) Fits(prev, next geometry.Vector3, leftTangent, rightTangent float64) bool {
	inLen := c.PI.DistanceXY(prev)
	outLen := c.PI.DistanceXY(next)

	return c.Tangent+leftTangent <= inLen+1e-9 &&
		c.Tangent+rightTangent <= outLen+1e-9
}

// ClampRadius reduces the radius to the largest value whose tangent
// legs fit between the neighbouring curves, then recomputes. Returns
// true when the radius was already valid.
func (c *Curve) ClampRadius(prev, next geometry.Vector3, leftTangent, rightTangent float64) bool {
	if c.Fits(prev, next, leftTangent, rightTangent) {
		return true
	}

	available := math.Min(
		c.PI.DistanceXY(prev)-leftTangent,
		c.PI.DistanceXY(next)-rightTangent,
	)
	if available < 0 {
		available = 0
	}

	tan := math.Tan(c.Delta / 2)
	if tan > 1e-12 {
		c.Radius = available / tan
	}

	c.Recompute(prev, next)
	return false
}

// Sample converts the curve to a polyline from its start to its end
// point. A zero-delta curve yields no points.
func (c *Curve) Sample(steps int) []geometry.Vector3 {
	if c.Delta < 1e-12 || c.Radius <= 0 || steps < 1 {
		return nil
	}

	// The curve centre sits along the PI angle bisector, at
	// Radius / cos(Delta/2) from the PI.
	toStart := c.Start.Sub(c.PI)
	toEnd := c.End.Sub(c.PI)

	startLen := toStart.Length()
	endLen := toEnd.Length()
	if startLen < 1e-12 || endLen < 1e-12 {
		return nil
	}

	bisector := toStart.Mul(1 / startLen).Add(toEnd.Mul(1 / endLen))
	bl := bisector.Length()
	if bl < 1e-12 {
		return nil
	}

	center := c.PI.Add(bisector.Mul((c.Radius / math.Cos(c.Delta/2)) / bl))

	a0 := math.Atan2(c.Start.Y-center.Y, c.Start.X-center.X)
	a1 := math.Atan2(c.End.Y-center.Y, c.End.X-center.X)

	sweep := a1 - a0
	for sweep > math.Pi {
		sweep -= 2 * math.Pi
	}
	for sweep < -math.Pi {
		sweep += 2 * math.Pi
	}

	points := make([]geometry.Vector3, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		a := a0 + sweep*t

		points = append(points, geometry.Vector3{
			X: center.X + c.Radius*math.Cos(a),
			Y: center.Y + c.Radius*math.Sin(a),
			Z: c.Start.Z + (c.End.Z-c.Start.Z)*t,
		})
	}

	return points
}

// deflection returns the absolute angle between two direction vectors
// in the XY plane
func deflection(in, out geometry.Vector3) float64 {
	a := math.Atan2(in.Y, in.X)
	b := math.Atan2(out.Y, out.X)

	d := math.Abs(b - a)
	if d > math.Pi {
		d = 2*math.Pi - d
	}

	return d
}
