package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowly-app/budgeting_backend/internal/apperrors"
	"github.com/flowly-app/budgeting_backend/internal/core/domain"
	"github.com/flowly-app/budgeting_backend/internal/core/services"
)

func TestOpenCycle(t *testing.T) {
	cycleSvc := services.NewCycleService()
	ctx := context.Background()

	t.Run("opens when no cycle is open", func(t *testing.T) {
		state, err := cycleSvc.OpenCycle(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, domain.CycleOpen, state)
	})

	t.Run("rejects a second open cycle", func(t *testing.T) {
		_, err := cycleSvc.OpenCycle(ctx, 1)
		require.Error(t, err)

		var openErr *apperrors.MultipleOpenCyclesNotAllowedError
		require.ErrorAs(t, err, &openErr)
		assert.Equal(t, 1, openErr.OpenCycleCount)
	})
}

func TestCloseCycle(t *testing.T) {
	cycleSvc := services.NewCycleService()
	ctx := context.Background()

	t.Run("open transitions to closed", func(t *testing.T) {
		state, err := cycleSvc.CloseCycle(ctx, domain.CycleOpen)
		require.NoError(t, err)
		assert.Equal(t, domain.CycleClosed, state)
	})

	t.Run("closed never reopens", func(t *testing.T) {
		_, err := cycleSvc.CloseCycle(ctx, domain.CycleClosed)

		var transitionErr *apperrors.InvalidCycleStateTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, "closed", transitionErr.From)
	})
}

func TestAssertCanPostAllocation(t *testing.T) {
	cycleSvc := services.NewCycleService()
	ctx := context.Background()

	t.Run("current open cycle accepts postings", func(t *testing.T) {
		assert.NoError(t, cycleSvc.AssertCanPostAllocation(ctx, domain.CycleOpen, true))
	})

	t.Run("current closed cycle is read only", func(t *testing.T) {
		err := cycleSvc.AssertCanPostAllocation(ctx, domain.CycleClosed, true)

		var readOnlyErr *apperrors.ClosedCycleReadOnlyError
		require.ErrorAs(t, err, &readOnlyErr)
	})

	t.Run("non-current check precedes the closed check", func(t *testing.T) {
		err := cycleSvc.AssertCanPostAllocation(ctx, domain.CycleClosed, false)

		var nonCurrentErr *apperrors.NonCurrentCyclePostingNotAllowedError
		require.ErrorAs(t, err, &nonCurrentErr)
	})
}
