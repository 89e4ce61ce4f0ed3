package layout

import "math"

// The four forces below follow the standard velocity-Verlet formulation used
// by force-directed canvas layouts: each force nudges velocities (or, for
// centering and collision, positions) and integrate() folds velocities into
// positions with damping.

// applyLinkForce pulls each linked pair toward the configured target
// separation. Both link kinds participate in the one force. Strength and
// bias are degree-derived so high-degree hubs move less than their leaves.
func (s *Simulation) applyLinkForce() {
	for _, l := range s.links {
		src, tgt := s.particles[l.source], s.particles[l.target]

		dx := tgt.x + tgt.vx - src.x - src.vx
		dy := tgt.y + tgt.vy - src.y - src.vy
		if dx == 0 && dy == 0 {
			dx, dy = s.jiggle(), s.jiggle()
		}
		dist := math.Hypot(dx, dy)

		scale := (dist - s.cfg.linkDistance) / dist * s.alpha * l.strength
		dx *= scale
		dy *= scale

		tgt.vx -= dx * l.bias
		tgt.vy -= dy * l.bias
		src.vx += dx * (1 - l.bias)
		src.vy += dy * (1 - l.bias)
	}
}

// applyChargeForce applies pairwise many-body repulsion. Exact pairwise
// evaluation is O(n^2) per tick, which is comfortably fast at the expected
// collection sizes and avoids the approximation error of a quadtree.
func (s *Simulation) applyChargeForce() {
	for i := 0; i < len(s.particles); i++ {
		pi := s.particles[i]
		for j := i + 1; j < len(s.particles); j++ {
			pj := s.particles[j]

			dx := pj.x - pi.x
			dy := pj.y - pi.y
			if dx == 0 && dy == 0 {
				dx, dy = s.jiggle(), s.jiggle()
			}
			d2 := dx*dx + dy*dy
			if d2 < 1 {
				d2 = 1
			}

			w := s.cfg.chargeStrength * s.alpha / d2
			pi.vx += dx * w
			pi.vy += dy * w
			pj.vx -= dx * w
			pj.vy -= dy * w
		}
	}
}

// applyCenterForce translates the layout so its centroid sits on the canvas
// center. Centering shifts positions directly rather than velocities; pinned
// axes are re-clamped during integration.
func (s *Simulation) applyCenterForce() {
	var sx, sy float64
	for _, pt := range s.particles {
		sx += pt.x
		sy += pt.y
	}
	n := float64(len(s.particles))
	ox := sx/n - s.cfg.centerX
	oy := sy/n - s.cfg.centerY
	for _, pt := range s.particles {
		pt.x -= ox
		pt.y -= oy
	}
}

// applyCollisionForce enforces the minimum separation between node centers,
// evaluated independently of the link force. Overlapping pairs are pushed
// apart along their anticipated (post-velocity) separation vector, half the
// correction to each side.
func (s *Simulation) applyCollisionForce() {
	minSep := s.cfg.collisionRadius
	for i := 0; i < len(s.particles); i++ {
		pi := s.particles[i]
		xi := pi.x + pi.vx
		yi := pi.y + pi.vy
		for j := i + 1; j < len(s.particles); j++ {
			pj := s.particles[j]

			dx := xi - (pj.x + pj.vx)
			dy := yi - (pj.y + pj.vy)
			if dx == 0 && dy == 0 {
				dx, dy = s.jiggle(), s.jiggle()
			}
			dist := math.Hypot(dx, dy)
			if dist >= minSep {
				continue
			}

			push := (minSep - dist) / dist / 2
			dx *= push
			dy *= push
			pi.vx += dx
			pi.vy += dy
			pj.vx -= dx
			pj.vy -= dy
		}
	}
}
