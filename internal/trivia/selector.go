package trivia

// Archetype identifiers for the registered question templates.
const (
	ArchetypeMatchOutcome = "matchOutcome"
	ArchetypeScore        = "score"
	ArchetypeGoalScorer   = "goalScorer"
)

// archetypes is the selection set. Adding a template means adding its
// generator plus one entry here; dispatch lives in Service.generate.
var archetypes = []string{
	ArchetypeMatchOutcome,
	ArchetypeScore,
	ArchetypeGoalScorer,
}

// pickArchetype chooses uniformly among the registered archetypes.
func pickArchetype(rng Rand) string {
	return archetypes[rng.Intn(len(archetypes))]
}
