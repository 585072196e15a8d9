package material

// StandardBuilderOption is a function that configures a standard material during construction.
type StandardBuilderOption func(*standard)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - StandardBuilderOption: a function that applies the name option to a material
func WithName(name string) StandardBuilderOption {
	return func(m *standard) {
		m.name = name
	}
}

// WithBaseColor is an option builder that sets the albedo/diffuse RGBA color of the material.
//
// Parameters:
//   - color: the base color as RGBA float32 values
//
// Returns:
//   - StandardBuilderOption: a function that applies the base color option to a material
func WithBaseColor(color [4]float32) StandardBuilderOption {
	return func(m *standard) {
		m.baseColor = color
	}
}

// WithMetallic is an option builder that sets the metallic factor of the material.
//
// Parameters:
//   - metallic: the metallic factor (0.0 = dielectric, 1.0 = metal)
//
// Returns:
//   - StandardBuilderOption: a function that applies the metallic option to a material
func WithMetallic(metallic float32) StandardBuilderOption {
	return func(m *standard) {
		m.metallic = metallic
	}
}

// WithRoughness is an option builder that sets the roughness factor of the material.
//
// Parameters:
//   - roughness: the roughness factor (0.0 = smooth, 1.0 = rough)
//
// Returns:
//   - StandardBuilderOption: a function that applies the roughness option to a material
func WithRoughness(roughness float32) StandardBuilderOption {
	return func(m *standard) {
		m.roughness = roughness
	}
}

// WithPipelineKey is an option builder that sets the render pipeline key for the material.
//
// Parameters:
//   - key: the pipeline key to associate with the material
//
// Returns:
//   - StandardBuilderOption: a function that applies the pipeline key option to a material
func WithPipelineKey(key string) StandardBuilderOption {
	return func(m *standard) {
		m.pipelineKey = key
	}
}
