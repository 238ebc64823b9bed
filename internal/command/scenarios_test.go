package command

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/narust/reasoner/internal/reasoner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(d *Dispatcher, lines ...string) []reasoner.Output {
	var all []reasoner.Output
	for _, line := range lines {
		all = append(all, d.Execute(context.Background(), line)...)
	}
	return all
}

func hasKindContaining(outs []reasoner.Output, kind reasoner.Kind, substr string) bool {
	for _, o := range outs {
		if o.Kind == kind && strings.Contains(o.Text, substr) {
			return true
		}
	}
	return false
}

// Scenario 1: revision after direct input produces an OUT for the revised
// sentence.
func TestScenarioRevisionAfterDirectInput(t *testing.T) {
	d := newDispatcher()
	outs := run(d,
		"NSE Sentence. %1.0;0.5%",
		"CYC 5",
		"NSE Sentence. %0.0;0.5%",
		"CYC 5",
	)
	for _, o := range outs {
		assert.NotEqual(t, reasoner.Error, o.Kind)
	}
	assert.True(t, hasKindContaining(outs, reasoner.Out, "Sentence"))
}

// Scenario 2: a question asked between two conflicting judgements is
// answered after the revision resolves it.
func TestScenarioAnswerAfterRevision(t *testing.T) {
	d := newDispatcher()
	outs := run(d,
		"NSE Sentence. %1.0;0.5%",
		"CYC 2",
		"NSE Sentence?",
		"CYC 2",
		"NSE Sentence. %0.0;0.5%",
		"CYC 2",
	)
	assert.True(t, hasKindContaining(outs, reasoner.Answer, "Sentence"))
}

// Scenario 3: a query variable in subject position is answered from a
// matching inheritance belief.
func TestScenarioQueryVariableAnswering(t *testing.T) {
	d := newDispatcher()
	outs := run(d,
		"NSE <A --> B>.",
		"CYC 5",
		"NSE <?1 --> B>?",
		"CYC 50",
	)
	assert.True(t, hasKindContaining(outs, reasoner.Answer, "<A-->B>"))
}

// Scenario 4: syllogistic deduction over two premises derives the
// transitive inheritance.
func TestScenarioSyllogisticDeduction(t *testing.T) {
	d := newDispatcher()
	outs := run(d,
		"NSE <A --> B>.",
		"NSE <B --> C>.",
		"CYC 20",
	)
	assert.True(t, hasKindContaining(outs, reasoner.Out, "<A-->C>"))
}

// Scenario 5: sixteen independent judgement/revision/question blocks
// followed by a long idle run never error, never panic, and keep memory
// within its configured cap.
func TestScenarioLongTermStability(t *testing.T) {
	params := reasoner.Default()
	params.ConceptCapacity = 50
	r := reasoner.New(params)
	d := New(r, nil)

	var outs []reasoner.Output
	for i := 0; i < 16; i++ {
		term := fmt.Sprintf("<A%d --> B>", i)
		outs = append(outs, run(d,
			fmt.Sprintf("NSE %s. %%1.0;0.9%%", term),
			"CYC 5",
			fmt.Sprintf("NSE %s. %%0.0;0.9%%", term),
			"CYC 5",
			fmt.Sprintf("NSE %s?", term),
			"CYC 5",
		)...)
	}
	outs = append(outs, run(d, "CYC 1000")...)
	for _, o := range outs {
		assert.NotEqual(t, reasoner.Error, o.Kind)
	}
	assert.LessOrEqual(t, d.Reasoner.Memory.Size(), d.Reasoner.Memory.Capacity())
}

// Scenario 6: an inline save/load round-trip leaves INF summary unchanged.
func TestScenarioSaveLoadRoundTrip(t *testing.T) {
	d := newDispatcher()
	run(d,
		"NSE <A --> B>.",
		"NSE <B --> C>.",
		"CYC 10",
	)
	before := run(d, "INF summary")

	outs := run(d, `SAV status ""`)
	require.Len(t, outs, 1)
	payload := outs[0].Text

	run(d, "RES")
	run(d, "LOA status "+payload)

	after := run(d, "INF summary")
	assert.Equal(t, before, after)
}
