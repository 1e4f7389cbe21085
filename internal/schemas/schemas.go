package schemas

import "sceneplan/internal/types"

// All returns every schema module this build knows about, one per
// (concept, schemaVersion) pair. The registry registers exactly this
// set; adding a concept means adding its constructor here.
func All() []types.SceneSchema {
	return []types.SceneSchema{
		HarmonicOscillator(),
		DampedOscillator(),
		Pendulum(),
		ProjectileMotion(),
		TwoBodyOrbit(),
		LaminarPipeFlow(),
		AnnularFlow(),
		LidDrivenCavity(),
		FluidSystem(),
	}
}
