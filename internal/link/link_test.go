package link

import (
	"testing"

	"github.com/narust/reasoner/internal/budget"
	"github.com/narust/reasoner/internal/evidence"
	"github.com/narust/reasoner/internal/term"
	"github.com/narust/reasoner/internal/truth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTemplatesForStatement(t *testing.T) {
	a, b := term.NewWord("A"), term.NewWord("B")
	stmt, ok := term.MakeInheritance(a, b)
	require.True(t, ok)

	templates := BuildTemplates(stmt)
	require.Len(t, templates, 2)
	assert.Equal(t, ComponentStatement, templates[0].Type)
	assert.Equal(t, ComponentStatement, templates[1].Type)
}

func TestTaskLinkNoveltyTracking(t *testing.T) {
	word := term.NewWord("A")
	s := evidence.NewJudgement(word, truth.New(1, 0.9, false), evidence.NewStamp(1, 0), true)
	task := evidence.New(s, budget.New(0.5, 0.5, 0.5), 0, 1, nil, nil)
	tl := NewTaskLink(task, budget.New(0.5, 0.5, 0.5), Self, nil, 10)

	assert.True(t, tl.IsNovel("key-1"))
	tl.RecordNovelty("key-1")
	assert.False(t, tl.IsNovel("key-1"))
}

func TestTemplateKeyFormat(t *testing.T) {
	tpl := Template{Target: "B", Type: Component, Indices: []int{0}}
	assert.Equal(t, "(T-Component(0))@B", tpl.Key())
}
