package status

import (
	"testing"

	"github.com/narust/reasoner/internal/evidence"
	"github.com/narust/reasoner/internal/reasoner"
	"github.com/narust/reasoner/internal/term"
	"github.com/narust/reasoner/internal/truth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPopulatedReasoner(t *testing.T) *reasoner.Reasoner {
	t.Helper()
	r := reasoner.New(reasoner.Default())
	a, b, c := term.NewWord("A"), term.NewWord("B"), term.NewWord("C")
	ab, _ := term.MakeInheritance(a, b)
	bc, _ := term.MakeInheritance(b, c)

	tv := truth.New(1.0, 0.9, false)
	r.Submit(reasoner.InputSentence{Content: ab, Punctuation: evidence.Judgement, Truth: &tv})
	r.Submit(reasoner.InputSentence{Content: bc, Punctuation: evidence.Judgement, Truth: &tv})
	for i := 0; i < 20; i++ {
		r.Cycle()
	}
	return r
}

func TestCaptureRestoreRoundTrip(t *testing.T) {
	r := buildPopulatedReasoner(t)
	before := r.Memory.Size()

	snap := Capture(r)
	payload, err := Encode(snap)
	require.NoError(t, err)

	r2 := reasoner.New(reasoner.Default())
	require.NoError(t, Load(r2, payload))

	assert.Equal(t, before, r2.Memory.Size())
	assert.Equal(t, r.Now(), r2.Now())

	word := term.NewWord("A")
	ab, _ := term.MakeInheritance(word, term.NewWord("B"))
	c1, ok1 := r.Memory.Lookup(ab.Key())
	c2, ok2 := r2.Memory.Lookup(ab.Key())
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, len(c1.Beliefs), len(c2.Beliefs))
}

func TestLoadLeavesOldStateOnError(t *testing.T) {
	r := buildPopulatedReasoner(t)
	before := r.Memory.Size()

	err := Load(r, []byte(`{"concepts":[{"term":"<<<not a term"}]}`))
	assert.Error(t, err)
	assert.Equal(t, before, r.Memory.Size())
}

func TestMemoryStorePutGet(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Put("status", []byte("payload")))
	got, err := store.Get("status")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)

	_, err = store.Get("missing")
	assert.Error(t, err)
}

func TestSharedTaskReferenceSurvivesRoundTrip(t *testing.T) {
	r := buildPopulatedReasoner(t)
	payload, err := Save(r)
	require.NoError(t, err)

	snap, err := Decode(payload)
	require.NoError(t, err)

	// Every task-link's TaskID must resolve to an entry in Tasks (no
	// dangling references), which is what the shared-reference
	// normalization pass on Restore depends on.
	for _, cr := range snap.Concepts {
		for _, tl := range cr.TaskLinks {
			_, ok := snap.Tasks[tl.TaskID]
			assert.True(t, ok, "dangling task reference %q", tl.TaskID)
		}
	}
}
