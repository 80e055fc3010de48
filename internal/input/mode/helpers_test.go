package mode

import (
	"testing"

	"github.com/dshills/modal/internal/input/key"
)

// feed drives keys through the engine the way an embedding loop does:
// awaited keys go to Resolve and every result is applied.
func feed(t *testing.T, s *State, keys string) []KeyResult {
	t.Helper()

	var results []KeyResult
	var await Await
	for _, ev := range key.MustParseSequence(keys) {
		r := ResolveEvent(s, await, ev)
		await = r.Await
		s.Apply(r)
		results = append(results, r)
	}
	return results
}

// last returns the result of the final key in keys.
func last(t *testing.T, s *State, keys string) KeyResult {
	t.Helper()

	results := feed(t, s, keys)
	if len(results) == 0 {
		t.Fatal("no results")
	}
	return results[len(results)-1]
}
