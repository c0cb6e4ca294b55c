package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSortedKeys(t *testing.T) {
	m := map[int]string{8: "h", 2: "b", 5: "e", 3: "c"}
	require.Equal(t, []int{2, 3, 5, 8}, GetSortedKeys(m))
}

func TestEqualSlice(t *testing.T) {
	require.True(t, EqualSlice([]int64{1, -7, 5}, []int64{1, -7, 5}))
	require.False(t, EqualSlice([]int64{1, -7, 5}, []int64{1, -7}))
	require.False(t, EqualSlice([]int64{1, -7, 5}, []int64{1, -7, 4}))
}
