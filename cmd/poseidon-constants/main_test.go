package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderMatchesCheckedIn(t *testing.T) {
	src, err := render([]int{1, 2, 3, 4, 5}, 57, 8)
	require.NoError(t, err)

	checkedIn, err := os.ReadFile("../../internal/params/constants.go")
	require.NoError(t, err)
	require.Equal(t, string(checkedIn), string(src))
}

func TestParseWidths(t *testing.T) {
	ws, err := parseWidths("1, 3,5")
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 5}, ws)

	_, err = parseWidths("1,x")
	require.Error(t, err)
	_, err = parseWidths("0")
	require.Error(t, err)
}
