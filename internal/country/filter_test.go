package country

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleCollection() []Country {
	return []Country{
		{Code: "TCD", Name: Name{Common: "Chad"}, Region: Some(RegionAfrica)},
		{Code: "CHL", Name: Name{Common: "Chile"}, Region: Some(RegionAmericas)},
		{Code: "FRA", Name: Name{Common: "France"}, Region: Some(RegionEurope)},
		{Code: "ATA", Name: Name{Common: "Antarctica"}},
	}
}

func codes(countries []Country) []string {
	out := make([]string, len(countries))
	for i, c := range countries {
		out[i] = c.Code
	}
	return out
}

func TestFilterZeroValueKeepsEverything(t *testing.T) {
	all := sampleCollection()
	assert.True(t, Filter{}.IsZero())
	assert.Equal(t, codes(all), codes(Filter{}.Apply(all)))
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	visible := Filter{Search: "fra"}.Apply(sampleCollection())
	assert.Equal(t, []string{"FRA"}, codes(visible))

	visible = Filter{Search: "FRA"}.Apply(sampleCollection())
	assert.Equal(t, []string{"FRA"}, codes(visible))
}

func TestFilterCombinesPredicates(t *testing.T) {
	collection := sampleCollection()[:2]

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "search only", filter: Filter{Search: "ch"}, want: []string{"TCD", "CHL"}},
		{name: "search and region", filter: Filter{Search: "ch", Region: RegionAfrica}, want: []string{"TCD"}},
		{name: "region without match", filter: Filter{Region: RegionEurope}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, codes(tt.filter.Apply(collection)))
		})
	}
}

func TestFilterRegionIgnoresSearchWhenEmpty(t *testing.T) {
	for _, region := range FilterRegions {
		visible := Filter{Region: region}.Apply(sampleCollection())
		for _, c := range visible {
			got, ok := c.Region.Get()
			assert.True(t, ok)
			assert.Equal(t, region, got)
		}
	}
}

func TestFilterRegionExcludesAbsentRegion(t *testing.T) {
	visible := Filter{Search: "ant", Region: RegionOceania}.Apply(sampleCollection())
	assert.Empty(t, visible)

	visible = Filter{Search: "ant"}.Apply(sampleCollection())
	assert.Equal(t, []string{"ATA"}, codes(visible))
}
