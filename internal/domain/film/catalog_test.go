package film

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/filmcast/internal/domain/sunlight"
)

func TestDefaultCatalogInvariants(t *testing.T) {
	catalog := DefaultCatalog()
	require.Equal(t, 12, catalog.Len())

	seen := map[string]bool{}
	for _, s := range catalog.All() {
		require.False(t, seen[s.ID], "duplicate id %s", s.ID)
		seen[s.ID] = true
		require.Positive(t, s.ISO, s.ID)
		require.NotEmpty(t, s.Formats, s.ID)
		require.NotEmpty(t, s.IdealConditions, s.ID)
		require.NotEmpty(t, s.PurchaseURL, s.ID)
	}
}

func TestCatalogGet(t *testing.T) {
	catalog := DefaultCatalog()

	ektar, ok := catalog.Get("ektar100")
	require.True(t, ok)
	require.Equal(t, "Ektar 100", ektar.Name)
	require.Equal(t, 100, ektar.ISO)
	require.Equal(t, []sunlight.Category{sunlight.Bright}, ektar.IdealConditions)

	_, ok = catalog.Get("nope")
	require.False(t, ok)
}

func TestNewCatalogRejectsInvalidEntries(t *testing.T) {
	valid := Stock{
		ID:              "x",
		ISO:             100,
		Formats:         []Format{Format35mm},
		Type:            TypeColor,
		IdealConditions: []sunlight.Category{sunlight.Bright},
	}

	cases := map[string]func(s *Stock){
		"empty id":      func(s *Stock) { s.ID = "" },
		"zero iso":      func(s *Stock) { s.ISO = 0 },
		"no formats":    func(s *Stock) { s.Formats = nil },
		"bad format":    func(s *Stock) { s.Formats = []Format{"110"} },
		"no conditions": func(s *Stock) { s.IdealConditions = nil },
		"bad condition": func(s *Stock) { s.IdealConditions = []sunlight.Category{"dusk"} },
		"bad type":      func(s *Stock) { s.Type = "sepia" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			s := valid
			mutate(&s)
			_, err := NewCatalog([]Stock{s})
			require.Error(t, err)
		})
	}

	_, err := NewCatalog([]Stock{valid, valid})
	require.ErrorContains(t, err, "duplicate id")
}

func TestCatalogAllReturnsCopy(t *testing.T) {
	catalog := DefaultCatalog()
	all := catalog.All()
	all[0].IdealConditions[0] = sunlight.Night

	again := catalog.All()
	require.Equal(t, []sunlight.Category{sunlight.Medium, sunlight.Low}, again[0].IdealConditions)
}
