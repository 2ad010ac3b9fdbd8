package enum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("create a enum of string", func(t *testing.T) {
		type EnumString string

		bar := New(EnumString("bar"))
		require.Equal(t, bar, EnumString("bar"))

		v, err := ToEnum[EnumString]("bar")
		require.NoError(t, err)
		require.Equal(t, v, bar)

		_, err = ToEnum[EnumString]("unknown")
		require.Error(t, err)
	})

	t.Run("all returns values in registration order", func(t *testing.T) {
		type EnumOrdered string

		first := New(EnumOrdered("first"))
		second := New(EnumOrdered("second"))
		New(EnumOrdered("second"))

		require.Equal(t, []EnumOrdered{first, second}, All[EnumOrdered]())
	})
}
