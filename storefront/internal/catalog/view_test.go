package catalog_test

import (
	"testing"

	"github.com/Astemirdum/bookstore-storefront/storefront/internal/catalog"
	"github.com/stretchr/testify/require"
)

func TestView_Navigation(t *testing.T) {
	t.Parallel()
	v := catalog.NewView(catalog.NewPipeline("bn"))
	require.Equal(t, 1, v.TotalPages())
	require.Empty(t, v.Items())

	v.SetBooks(makeBooks(65, func(i int) float64 { return 100 }))
	require.Equal(t, 3, v.TotalPages())

	v.PrevPage()
	require.Equal(t, 1, v.CurrentPage())

	v.NextPage()
	v.NextPage()
	v.NextPage()
	require.Equal(t, 3, v.CurrentPage())
	require.Equal(t, []string{"b60", "b61", "b62", "b63", "b64"}, ids(v.Items()))
}

func TestView_StalePageAfterFilterChange(t *testing.T) {
	t.Parallel()
	v := catalog.NewView(catalog.NewPipeline("bn"))
	v.SetBooks(makeBooks(65, func(i int) float64 { return float64(i) }))
	v.NextPage()
	v.NextPage()
	require.Equal(t, 3, v.CurrentPage())

	f := v.Filters()
	f.PriceRange = [2]float64{0, 9}
	v.SetFilters(f)

	require.Equal(t, 1, v.TotalPages())
	require.Equal(t, 3, v.CurrentPage())
	require.Empty(t, v.Items())

	// navigation is disabled at the upper bound, only backwards works
	v.NextPage()
	require.Equal(t, 3, v.CurrentPage())
	v.PrevPage()
	v.PrevPage()
	require.Equal(t, 1, v.CurrentPage())
	require.Len(t, v.Items(), 10)
}

func TestView_SortKeepsPage(t *testing.T) {
	t.Parallel()
	v := catalog.NewView(catalog.NewPipeline("bn"))
	v.SetBooks(makeBooks(35, func(i int) float64 { return float64(i) }))
	v.NextPage()
	v.SetSort(catalog.SortPriceDesc)
	require.Equal(t, 2, v.CurrentPage())
	require.Equal(t, []string{"b4", "b3", "b2", "b1", "b0"}, ids(v.Items()))
}
