package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from non-negative cents", func(t *testing.T) {
		m, err := kernel.NewMoney(1250)

		require.NoError(t, err)
		assert.Equal(t, int64(1250), m.Cents())
		assert.Equal(t, "12.50", m.String())
	})

	t.Run("should accept zero amount", func(t *testing.T) {
		m, err := kernel.NewMoney(0)

		require.NoError(t, err)
		assert.Equal(t, int64(0), m.Cents())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("multiply by quantity", func(t *testing.T) {
		m, _ := kernel.NewMoney(300)

		total, err := m.Multiply(4)

		require.NoError(t, err)
		assert.Equal(t, int64(1200), total.Cents())
	})

	t.Run("multiply by negative quantity fails", func(t *testing.T) {
		m, _ := kernel.NewMoney(300)

		_, err := m.Multiply(-1)

		require.Error(t, err)
	})

	t.Run("add amounts", func(t *testing.T) {
		a, _ := kernel.NewMoney(100)
		b, _ := kernel.NewMoney(250)

		assert.Equal(t, int64(350), a.Add(b).Cents())
	})

	t.Run("equality", func(t *testing.T) {
		a, _ := kernel.NewMoney(100)
		b, _ := kernel.NewMoney(100)
		c, _ := kernel.NewMoney(101)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}
