package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalizedPick(t *testing.T) {
	l := Localized{En: "Inception", Ar: "استهلال"}
	require.Equal(t, "استهلال", l.Pick("ar"))
	require.Equal(t, "Inception", l.Pick("en"))
	require.Equal(t, "Inception", l.Pick(""))
	require.Equal(t, "Inception", l.Pick("fr"))

	enOnly := Localized{En: "Dune"}
	require.Equal(t, "Dune", enOnly.Pick("ar"))
}
