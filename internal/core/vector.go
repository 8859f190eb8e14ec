package core

// Vector is a 3-component coordinate in logical surface units.
// The zero value is the origin.
type Vector struct {
	X float64 `yaml:"x" toml:"x" json:"x"`
	Y float64 `yaml:"y" toml:"y" json:"y"`
	Z float64 `yaml:"z" toml:"z" json:"z"`
}

// Vec creates a vector from three components.
func Vec(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// VectorFrom creates a vector from a partial coordinate keyed by "x", "y" and "z".
// Missing components default to 0.
func VectorFrom(m map[string]float64) Vector {
	return Vector{X: m["x"], Y: m["y"], Z: m["z"]}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale multiplies every component by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div divides every component by s.
// Dividing by zero leaves the vector unchanged.
func (v Vector) Div(s float64) Vector {
	if s == 0 {
		return v
	}
	return Vector{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}
