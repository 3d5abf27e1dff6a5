package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories(t *testing.T) {
	t.Parallel()

	cats := Categories()
	require.Len(t, cats, 5)

	titles := make([]string, 0, len(cats))
	events := 0
	for _, c := range cats {
		titles = append(titles, c.Title)
		events += len(c.Events)
	}

	assert.Equal(t, []string{"Cultural", "Literary", "Technical", "E-Sports", "Sports"}, titles)
	assert.Equal(t, 27, events)
}

func TestCategoriesReturnsCopy(t *testing.T) {
	t.Parallel()

	cats := Categories()
	cats[0].Events[0].Price = 1

	e, ok := Lookup("Dance Competition")
	require.True(t, ok)
	assert.Equal(t, 90, e.Price)
}

func TestIndexRejectsDuplicates(t *testing.T) {
	t.Parallel()

	_, err := index([]Category{
		{Title: "A", Events: []Event{{Name: "Chess", Price: 10}}},
		{Title: "B", Events: []Event{{Name: "Chess", Price: 20}}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate event name")

	_, err = index([]Category{{Title: "Empty"}})
	require.Error(t, err)

	_, err = index(categories[:])
	require.NoError(t, err)
}

func TestTotal(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		selected []string
		expected int
	}{
		{name: "Empty selection", selected: nil, expected: 0},
		{name: "Dance and chess", selected: []string{"Dance Competition", "Chess"}, expected: 150},
		{name: "Single e-sports", selected: []string{"Freefire and BGMI"}, expected: 100},
		{name: "Duplicates counted once", selected: []string{"Chess", "Chess"}, expected: 60},
		{name: "Unknown ignored", selected: []string{"Chess", "Juggling"}, expected: 60},
		{name: "Across categories", selected: []string{"Rangoli", "Extempore", "Tech Quiz", "Kabaddi"}, expected: 300},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, Total(tc.selected))
		})
	}
}

func TestTotalMatchesSumOverEverySubsetOfACategory(t *testing.T) {
	t.Parallel()

	events := Categories()[0].Events

	for mask := 0; mask < 1<<len(events); mask++ {
		var selected []string
		want := 0
		for i, e := range events {
			if mask&(1<<i) != 0 {
				selected = append(selected, e.Name)
				want += e.Price
			}
		}

		assert.Equal(t, want, Total(selected), "mask %b", mask)
	}
}

func TestUnknown(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Unknown([]string{"Chess", "Singing"}))
	assert.Equal(t, []string{"Juggling"}, Unknown([]string{"Chess", "Juggling"}))
}

func TestCategoryIDString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "E-Sports", ESports.String())
	assert.Equal(t, "CategoryID(9)", CategoryID(9).String())
}
