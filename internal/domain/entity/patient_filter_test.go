package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPatientFilterNormalize(t *testing.T) {
	f := &PatientFilter{}
	f.Normalize()

	require.Equal(t, 1, f.Page)
	require.Equal(t, 10, f.Limit)
	require.Equal(t, PatientSortCreatedAt, f.SortBy)
	require.Equal(t, "desc", f.SortOrder)
	require.Equal(t, "all", f.Status)
	require.Equal(t, 0, f.Offset())
}

func TestPatientFilterNormalize_ClampsAndWhitelists(t *testing.T) {
	f := &PatientFilter{Page: -3, Limit: 500, SortBy: "password", SortOrder: "DROP TABLE"}
	f.Normalize()

	require.Equal(t, 1, f.Page)
	require.Equal(t, 100, f.Limit)
	require.Equal(t, PatientSortCreatedAt, f.SortBy)
	require.Equal(t, "desc", f.SortOrder)
}

func TestPatientFilterOffset(t *testing.T) {
	f := &PatientFilter{Page: 3, Limit: 10}
	f.Normalize()
	require.Equal(t, 20, f.Offset())
}
