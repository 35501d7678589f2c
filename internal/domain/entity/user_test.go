package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUser_DefaultState(t *testing.T) {
	u := NewUser(1, 10)
	require.Equal(t, StateMainMenu, u.State)
	require.Equal(t, int64(1), u.ID)
	require.Equal(t, int64(10), u.ChatID)
	require.Empty(t, u.Genotype)
}

func TestNewSample_DefaultGenotype(t *testing.T) {
	s := NewSample(3, "", &NormalizedContour{})
	require.Equal(t, DefaultGenotype, s.Genotype)
	require.Equal(t, int64(3), s.UserID)
	require.False(t, s.CreatedAt.IsZero())

	s = NewSample(3, "phyB", nil)
	require.Equal(t, "phyB", s.Genotype)
}
