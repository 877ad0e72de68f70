package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuided_LinearProgression(t *testing.T) {
	g := NewGuided()
	assert.Equal(t, StepOrgType, g.Step())
	assert.False(t, g.Done())

	require.NoError(t, g.Answer("startup-0-10"))
	assert.Equal(t, StepIndustry, g.Step())

	require.NoError(t, g.Answer("technology"))
	assert.Equal(t, StepNeeds, g.Step())

	require.NoError(t, g.Answer("coding", "writing"))
	assert.Equal(t, StepBudget, g.Step())

	require.NoError(t, g.Answer("low"))
	assert.Equal(t, StepAILevel, g.Step())

	require.NoError(t, g.Answer("beginner"))
	assert.Equal(t, StepResults, g.Step())
	assert.True(t, g.Done())

	answers := g.Answers()
	assert.Equal(t, "startup-0-10", answers.OrgType)
	assert.Equal(t, "technology", answers.Industry)
	assert.Equal(t, []string{"coding", "writing"}, answers.Needs)
	assert.Equal(t, "low", answers.Budget)
	assert.Equal(t, "beginner", answers.AILevel)
}

func TestGuided_RejectsBadAnswers(t *testing.T) {
	g := NewGuided()

	// Single-select steps take exactly one non-empty value.
	assert.Error(t, g.Answer())
	assert.Error(t, g.Answer(""))
	assert.Error(t, g.Answer("a", "b"))
	assert.Equal(t, StepOrgType, g.Step(), "failed answers must not advance")

	require.NoError(t, g.Answer("individual"))
	require.NoError(t, g.Answer("education"))

	// The needs step rejects an empty selection.
	assert.Error(t, g.Answer())
	assert.Equal(t, StepNeeds, g.Step())
}

func TestGuided_AnsweringFinishedFlowFails(t *testing.T) {
	g := NewGuided()
	require.NoError(t, g.Answer("individual"))
	require.NoError(t, g.Answer("education"))
	require.NoError(t, g.Answer("writing"))
	require.NoError(t, g.Answer("free"))
	require.NoError(t, g.Answer("beginner"))

	assert.Error(t, g.Answer("anything"))
}

func TestGuided_ResetIsTheOnlyWayBack(t *testing.T) {
	g := NewGuided()
	require.NoError(t, g.Answer("individual"))
	require.NoError(t, g.Answer("education"))

	g.Reset()
	assert.Equal(t, StepOrgType, g.Step())
	assert.Empty(t, g.Answers().OrgType)
	assert.Empty(t, g.Answers().Industry)
}

func TestQuick_LinearProgression(t *testing.T) {
	q := NewQuick()
	assert.Equal(t, QuickStepUserType, q.Step())

	require.NoError(t, q.Answer("developer"))
	assert.Equal(t, QuickStepUseCases, q.Step())

	require.NoError(t, q.Answer("coding", "automation"))
	assert.True(t, q.Done())

	answers := q.Answers()
	assert.Equal(t, "developer", answers.UserType)
	assert.Equal(t, []string{"coding", "automation"}, answers.UseCases)

	assert.Error(t, q.Answer("more"))
}

func TestQuick_Reset(t *testing.T) {
	q := NewQuick()
	require.NoError(t, q.Answer("creator"))
	q.Reset()
	assert.Equal(t, QuickStepUserType, q.Step())
	assert.Empty(t, q.Answers().UserType)
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "org_type", StepOrgType.String())
	assert.Equal(t, "results", StepResults.String())
}
