package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-engine/lattice/pkg/domain"
)

// RunPlanStoreContract runs a suite of tests to verify that a PlanStore
// implementation adheres to the defined interface contract.
func RunPlanStoreContract(t *testing.T, store PlanStore) {
	ctx := context.Background()
	planID := "contract-test-plan-" + time.Now().Format("20060102150405")

	samplePlan := func(id string) *domain.Plan {
		return &domain.Plan{
			ID:       id,
			Discount: 0.9,
			States:   []string{"s1", "s2"},
			Snapshots: []domain.Snapshot{
				{
					"s1": {Action: domain.NoAction, Value: 0},
					"s2": {Action: domain.NoAction, Value: 10},
				},
				{
					"s1": {Action: "b", Value: 9},
					"s2": {Action: domain.NoAction, Value: 10},
				},
			},
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		plan := samplePlan(planID)
		require.NoError(t, store.Save(ctx, plan), "Save should not return error")

		loaded, err := store.Load(ctx, planID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, plan.Discount, loaded.Discount)
		assert.Equal(t, plan.States, loaded.States)
		require.Len(t, loaded.Snapshots, 2)
		assert.Equal(t, domain.PolicyEntry{Action: "b", Value: 9}, loaded.Snapshots[1]["s1"])
	})

	t.Run("Load returns a copy", func(t *testing.T) {
		loaded, err := store.Load(ctx, planID)
		require.NoError(t, err)
		loaded.Snapshots[0]["s1"] = domain.PolicyEntry{Action: "tampered", Value: -1}

		again, err := store.Load(ctx, planID)
		require.NoError(t, err)
		assert.Equal(t, domain.NoAction, again.Snapshots[0]["s1"].Action)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+planID)
		assert.ErrorIs(t, err, domain.ErrPlanNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, samplePlan(planID)))

		require.NoError(t, store.Delete(ctx, planID), "Delete should not return error")

		_, err := store.Load(ctx, planID)
		assert.ErrorIs(t, err, domain.ErrPlanNotFound, "Load after Delete should return ErrPlanNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := planID + "-1"
		id2 := planID + "-2"
		_ = store.Save(ctx, samplePlan(id1))
		_ = store.Save(ctx, samplePlan(id2))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
	})
}
