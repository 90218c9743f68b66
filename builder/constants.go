package builder

// Constructor names used to prefix errors.
const (
	MethodRandom      = "Random"
	MethodIdentical   = "Identical"
	MethodMutualFirst = "MutualFirst"
	MethodLatin       = "Latin"
	MethodBuild       = "Build"
)

// MinAgents is the smallest instance size accepted by every constructor.
const MinAgents = 1
