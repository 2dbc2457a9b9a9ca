//go:build strict_taxonomy

package taxonomy

import "testing"

func TestStrictTaxonomyAllowTable(t *testing.T) {
	cases := []struct {
		ns   *Namespace
		c    Category
		want bool
	}{
		{Core, CatSystem, true},
		{Core, CatConfiguration, false},
		{Config, CatConfiguration, true},
		{Config, CatSystem, false},
		{Correlation, CatAnalysis, true},
		{Correlation, CatResponse, false},
		{Response, CatResponse, true},
		{Response, CatAnalysis, false},
		{Platform, CatSystem, true},
		{Platform, CatIO, true},
		{Platform, CatAudit, false},
	}
	for _, c := range cases {
		if got := PermitsCategory(c.ns, c.c); got != c.want {
			t.Errorf("PermitsCategory(%s, %s) = %v, want %v", c.ns.Label(), c.c.DisplayName(), got, c.want)
		}
	}
}
