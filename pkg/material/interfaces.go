package material

// Kind identifies which variant of the closed Material set a value is
type Kind int

const (
	Diffuse    Kind = iota // Lambertian
	Reflective             // Metal
	Refractive             // Dielectric
)

// String returns the lower-case name of the kind
func (k Kind) String() string {
	switch k {
	case Diffuse:
		return "diffuse"
	case Reflective:
		return "reflective"
	case Refractive:
		return "refractive"
	default:
		return "unknown"
	}
}

// Material describes how a surface scatters light. The set of implementations
// is closed: Lambertian, Metal and Dielectric. Materials are immutable after
// construction and are shared by pointer between any number of shapes.
type Material interface {
	Kind() Kind
	sealed()
}
