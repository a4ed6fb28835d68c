package order_test

import (
	"testing"

	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Pending, "pending"},
		{order.Preparing, "preparing"},
		{order.ReadyForDelivery, "ready_for_delivery"},
		{order.InDelivery, "in_delivery"},
		{order.Delivered, "delivered"},
		{order.Cancelled, "cancelled"},
		{order.Refunded, "refunded"},
		{order.Unknown, "unknown"},
		{order.Status(99), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Preparing, order.ReadyForDelivery,
			order.InDelivery, order.Delivered, order.Cancelled, order.Refunded,
		} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("invalid statuses", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_MarkReady(t *testing.T) {
	t.Run("allowed from pending and preparing", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Preparing} {
			next, err := s.MarkReady()
			require.NoError(t, err)
			assert.Equal(t, order.ReadyForDelivery, next)
		}
	})

	t.Run("rejected from other statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.ReadyForDelivery, order.InDelivery, order.Cancelled} {
			_, err := s.MarkReady()
			require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		}
	})
}

func TestStatus_DeliveryTransitions(t *testing.T) {
	t.Run("start delivery from ready", func(t *testing.T) {
		next, err := order.ReadyForDelivery.StartDelivery()
		require.NoError(t, err)
		assert.Equal(t, order.InDelivery, next)
	})

	t.Run("start delivery is repeatable", func(t *testing.T) {
		next, err := order.InDelivery.StartDelivery()
		require.NoError(t, err)
		assert.Equal(t, order.InDelivery, next)
	})

	t.Run("start delivery rejected before delivery exists", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Preparing, order.Cancelled} {
			_, err := s.StartDelivery()
			require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		}
	})

	t.Run("complete delivery from ready or in delivery", func(t *testing.T) {
		for _, s := range []order.Status{order.ReadyForDelivery, order.InDelivery} {
			next, err := s.CompleteDelivery()
			require.NoError(t, err)
			assert.Equal(t, order.Delivered, next)
		}
	})

	t.Run("revert to preparing when delivery removed", func(t *testing.T) {
		for _, s := range []order.Status{order.ReadyForDelivery, order.InDelivery} {
			next, err := s.RevertToPreparing()
			require.NoError(t, err)
			assert.Equal(t, order.Preparing, next)
		}
	})
}

func TestStatus_CancelAndRefund(t *testing.T) {
	t.Run("cancel from pending or preparing", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Preparing} {
			next, err := s.Cancel()
			require.NoError(t, err)
			assert.Equal(t, order.Cancelled, next)
		}
	})

	t.Run("cancel rejected once fulfillment started", func(t *testing.T) {
		for _, s := range []order.Status{order.ReadyForDelivery, order.InDelivery} {
			_, err := s.Cancel()
			require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		}
	})

	t.Run("refund from pending or cancelled", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Cancelled} {
			next, err := s.Refund()
			require.NoError(t, err)
			assert.Equal(t, order.Refunded, next)
		}
	})
}

func TestStatus_TerminalStates(t *testing.T) {
	terminal := []order.Status{order.Delivered, order.Refunded}

	t.Run("terminal detection", func(t *testing.T) {
		for _, s := range terminal {
			assert.True(t, s.IsTerminal())
		}
		for _, s := range []order.Status{order.Pending, order.Preparing, order.Cancelled} {
			assert.False(t, s.IsTerminal())
		}
	})

	t.Run("every transition from a terminal state fails", func(t *testing.T) {
		for _, s := range terminal {
			_, err := s.MarkReady()
			require.ErrorIs(t, err, order.ErrTerminalStatus)
			_, err = s.StartDelivery()
			require.ErrorIs(t, err, order.ErrTerminalStatus)
			_, err = s.CompleteDelivery()
			require.ErrorIs(t, err, order.ErrTerminalStatus)
			_, err = s.Cancel()
			require.ErrorIs(t, err, order.ErrTerminalStatus)
			_, err = s.Refund()
			require.ErrorIs(t, err, order.ErrTerminalStatus)
			_, err = s.RevertToPreparing()
			require.ErrorIs(t, err, order.ErrTerminalStatus)
		}
	})
}

func TestStatus_DeletionAndReservations(t *testing.T) {
	t.Run("only pending and cancelled orders are deletable", func(t *testing.T) {
		assert.True(t, order.Pending.CanBeDeleted())
		assert.True(t, order.Cancelled.CanBeDeleted())
		for _, s := range []order.Status{
			order.Preparing, order.ReadyForDelivery, order.InDelivery,
			order.Delivered, order.Refunded,
		} {
			assert.False(t, s.CanBeDeleted(), s.String())
		}
	})

	t.Run("only pending orders hold reservations", func(t *testing.T) {
		assert.True(t, order.Pending.HoldsReservations())
		for _, s := range []order.Status{
			order.Preparing, order.ReadyForDelivery, order.InDelivery,
			order.Delivered, order.Cancelled, order.Refunded,
		} {
			assert.False(t, s.HoldsReservations(), s.String())
		}
	})
}
