package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Naren-18/Saree-Commerce/models"
)

var sarees = []models.Product{
	{ID: 1, Name: "Red Silk", Description: "Bright festive saree", Category: "Silk"},
	{ID: 2, Name: "Blue Cotton", Description: "Everyday wear", Category: "Cotton"},
	{ID: 3, Name: "Bridal Designer", Description: "Embroidered with red accents", Category: "Designer"},
}

func TestWildcardAndEmptyQueryReturnEverythingInOrder(t *testing.T) {
	assert.Equal(t, sarees, Filter(sarees, "All", ""))
	assert.Equal(t, sarees, Filter(sarees, "", ""))
}

func TestQueryIsCaseInsensitiveOnName(t *testing.T) {
	visible := Filter(sarees, "All", "red")
	require.Len(t, visible, 2) // "Red Silk" by name, "Bridal Designer" by description
	assert.Equal(t, 1, visible[0].ID)
	assert.Equal(t, 3, visible[1].ID)

	visible = Filter(sarees, "All", "BLUE")
	require.Len(t, visible, 1)
	assert.Equal(t, 2, visible[0].ID)
}

func TestQueryMatchesDescription(t *testing.T) {
	visible := Filter(sarees, "All", "everyday")
	require.Len(t, visible, 1)
	assert.Equal(t, 2, visible[0].ID)
}

func TestCategoryFilter(t *testing.T) {
	visible := Filter(sarees, "Silk", "")
	require.Len(t, visible, 1)
	assert.Equal(t, 1, visible[0].ID)
}

func TestCategoryAndQueryCombine(t *testing.T) {
	assert.Empty(t, Filter(sarees, "Cotton", "red"))

	visible := Filter(sarees, "Designer", "red")
	require.Len(t, visible, 1)
	assert.Equal(t, 3, visible[0].ID)
}

func TestNoMatchReturnsEmptyNotNil(t *testing.T) {
	visible := Filter(sarees, "All", "kanjeevaram")
	assert.NotNil(t, visible)
	assert.Empty(t, visible)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	before := make([]models.Product, len(sarees))
	copy(before, sarees)
	Filter(sarees, "Silk", "red")
	assert.Equal(t, before, sarees)
}
