// Package camera implements the thin-lens camera model: an orthonormal
// viewing frame that maps normalized image coordinates to world-space rays,
// with an optional lens aperture for depth-of-field.
package camera

import (
	"math"

	"github.com/tjrivera/pathtracer/pkg/core"
)

// Camera generates rays for rendering from normalized image coordinates.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // orthonormal viewing frame
	lensRadius      float64
}

// Config describes the parameters of a thin-lens camera.
type Config struct {
	LookFrom    core.Vec3
	LookAt      core.Vec3
	Up          core.Vec3
	VFov        float64 // vertical field of view, in degrees
	AspectRatio float64
	Aperture    float64
	FocusDist   float64
}

// New builds a Camera from cfg. The viewing frame (u,v,w) is derived from
// lookFrom/lookAt/up; the viewport is scaled by focusDist so the lens focal
// plane sits exactly at the look-at distance.
func New(cfg Config) *Camera {
	theta := cfg.VFov * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	viewportHeight := 2 * halfHeight
	viewportWidth := cfg.AspectRatio * viewportHeight

	w := cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	u := cfg.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := cfg.LookFrom
	horizontal := u.Multiply(cfg.FocusDist * viewportWidth)
	vertical := v.Multiply(cfg.FocusDist * viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(cfg.FocusDist))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      cfg.Aperture / 2,
	}
}

// GetRay generates a ray through normalized image coordinates (s, t), both
// in [0,1]; (0,0) is the bottom-left of the image. The ray origin is offset
// by a point on the lens disk drawn from sampler to produce depth-of-field
// blur.
func (c *Camera) GetRay(s, t float64, sampler *core.Sampler) core.Ray {
	rd := sampler.InUnitDisk().Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRay(origin, direction)
}
