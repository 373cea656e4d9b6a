package htn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elevhtn/internal/domain"
	"elevhtn/internal/htn"
)

func TestCheckPlan(t *testing.T) {
	p := lampProblem(t, false)

	require.NoError(t, htn.CheckPlan(p, nil))
	require.NoError(t, htn.CheckPlan(p, []domain.GroundAction{
		{Action: "carry", Args: []string{"lamp0", "kitchen", "hall"}},
		{Action: "switch_on", Args: []string{"lamp0"}},
	}))

	for name, step := range map[string]domain.GroundAction{
		"unknown action": {Action: "smash", Args: []string{"lamp0"}},
		"arity":          {Action: "switch_on"},
		"unknown object": {Action: "switch_on", Args: []string{"lamp9"}},
		"wrong type":     {Action: "switch_on", Args: []string{"kitchen"}},
	} {
		t.Run(name, func(t *testing.T) {
			err := htn.CheckPlan(p, []domain.GroundAction{step})
			require.ErrorIs(t, err, domain.ErrInvalidModel)
			assert.Contains(t, err.Error(), "step 1")
		})
	}
}

func TestSimulate(t *testing.T) {
	p := lampProblem(t, false)

	st, err := htn.Simulate(p, []domain.GroundAction{
		{Action: "carry", Args: []string{"lamp0", "kitchen", "hall"}},
		{Action: "switch_on", Args: []string{"lamp0"}},
	})
	require.NoError(t, err)
	v, _ := st.Get("lit", "lamp0")
	assert.Equal(t, domain.BoolValue(true), v)
	v, _ = st.Get("in", "lamp0")
	assert.Equal(t, domain.ObjectValue("hall"), v)

	_, err = htn.Simulate(p, []domain.GroundAction{
		{Action: "switch_on", Args: []string{"lamp0"}},
		{Action: "switch_on", Args: []string{"lamp0"}},
	})
	require.ErrorIs(t, err, domain.ErrNotApplicable)
	assert.Contains(t, err.Error(), "step 2")
}
