package poolphysics

import (
	"github.com/greigoat/Pool-Physics-2D/vect"
)

const (
	DefaultDensity    = vect.Float(1)
	DefaultElasticity = vect.Float(0.8)
)

// Material describes how a collider weighs and bounces.
// One Material is usually shared by many colliders; it must not change during a Step.
type Material struct {
	/// Density of the volume. Mass is volume * density.
	Density vect.Float
	/// Coefficient of restitution, usually in [0, 1].
	Elasticity vect.Float
}

func NewMaterial(density, elasticity vect.Float) *Material {
	return &Material{Density: density, Elasticity: elasticity}
}

func DefaultMaterial() *Material {
	return NewMaterial(DefaultDensity, DefaultElasticity)
}

func (m *Material) density() vect.Float {
	if m == nil {
		return DefaultDensity
	}
	return m.Density
}

// elasticity of a contact between a and b: the smaller of the two.
// A side without a material takes the other side's value.
func combinedElasticity(a, b *Material) vect.Float {
	switch {
	case a == nil && b == nil:
		return DefaultElasticity
	case a == nil:
		return b.Elasticity
	case b == nil:
		return a.Elasticity
	}
	return vect.FMin(a.Elasticity, b.Elasticity)
}
