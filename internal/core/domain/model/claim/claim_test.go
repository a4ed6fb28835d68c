package claim_test

import (
	"testing"

	"marketplace/internal/core/domain/model/claim"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClaim(t *testing.T) {
	t.Run("files claim in pending review", func(t *testing.T) {
		claimantID := kernel.NewUUID()

		c, err := claim.NewClaim(kernel.NewUUID(), kernel.NewUUID(), claimantID, "parcel arrived damaged")

		require.NoError(t, err)
		assert.Equal(t, claim.PendingReview, c.Status())
		assert.Equal(t, "parcel arrived damaged", c.Description())
		assert.True(t, c.IsFiledBy(claimantID))
		require.NoError(t, c.Validate())
	})

	t.Run("requires a description", func(t *testing.T) {
		_, err := claim.NewClaim(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "")

		require.Error(t, err)
	})

	t.Run("zero value claim fails validation", func(t *testing.T) {
		var c claim.Claim

		require.ErrorIs(t, c.Validate(), claim.ErrClaimIsNotConstructed)
	})
}

func TestStatusFromString(t *testing.T) {
	testCases := []struct {
		input    string
		expected claim.Status
	}{
		{"pending_review", claim.PendingReview},
		{"in_progress", claim.InProgress},
		{"rejected", claim.Rejected},
		{"refunded", claim.Refunded},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			status, err := claim.StatusFromString(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
			assert.Equal(t, tc.input, status.String())
		})
	}

	t.Run("unknown status name is rejected", func(t *testing.T) {
		_, err := claim.StatusFromString("escalated")

		require.Error(t, err)
	})
}

func TestClaim_ChangeStatus(t *testing.T) {
	newClaim := func(t *testing.T) *claim.Claim {
		t.Helper()
		c, err := claim.NewClaim(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "missing item")
		require.NoError(t, err)
		return c
	}

	t.Run("any declared status may be set", func(t *testing.T) {
		c := newClaim(t)

		for _, s := range []claim.Status{claim.InProgress, claim.Rejected, claim.Refunded, claim.PendingReview} {
			require.NoError(t, c.ChangeStatus(s))
			assert.Equal(t, s, c.Status())
		}
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		c := newClaim(t)

		require.Error(t, c.ChangeStatus(claim.Unknown))
		require.Error(t, c.ChangeStatus(claim.Status(42)))
		assert.Equal(t, claim.PendingReview, c.Status())
	})
}

func TestClaim_UpdateDescription(t *testing.T) {
	c, err := claim.NewClaim(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "wrong color")
	require.NoError(t, err)

	require.NoError(t, c.UpdateDescription("wrong color, size also differs from the listing"))
	assert.Equal(t, "wrong color, size also differs from the listing", c.Description())

	require.Error(t, c.UpdateDescription(""))
}

func TestRestoreClaim(t *testing.T) {
	t.Run("restores persisted state", func(t *testing.T) {
		c, err := claim.RestoreClaim(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "never arrived", claim.InProgress,
		)

		require.NoError(t, err)
		assert.Equal(t, claim.InProgress, c.Status())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := claim.RestoreClaim(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "never arrived", claim.Unknown,
		)

		require.Error(t, err)
	})
}
