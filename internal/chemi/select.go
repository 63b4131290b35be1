package chemi

// Offsets for draws taken from the base hash of a day.
// Each draw has its own offset so that the picks do not move together.
const (
	offsetEmoji    = 10
	offsetOneLiner = 20
	offsetScenario = 30

	offsetWeeklyMessage = 0
	offsetWeeklyEmoji   = 1
)

// pick returns the pool entry chosen by the draw at offset.
// Pools are validated as non-empty when content is loaded.
func pick[T any](base uint32, pool []T, offset int) T {
	return pool[HashToRange(base, len(pool)-1, offset)]
}
