package components

// Food is a food particle. Duplication copies this struct verbatim; the
// nutrition jitter is applied only when spawning from the base template.
//
// Particles never reference each other: all pairwise relations are
// recomputed from positions every frame.
type Food struct {
	Body Body

	NutritionalValue float32

	DuplicationChance float32 // probability mass per second
	SpawnVelocityMin  float32
	SpawnVelocityMax  float32

	CohesionRadius   float32
	CohesionForce    float32
	SeparationRadius float32
	SeparationForce  float32

	NeighbourRadius float32
	MaxNeighbours   int
}
