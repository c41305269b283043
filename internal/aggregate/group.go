// Package aggregate groups places by province and fixes the render order.
package aggregate

import (
	"sort"

	"github.com/Zachdehooge/sicily-map/internal/geodata"
	"github.com/Zachdehooge/sicily-map/internal/province"
)

// Group is one province and its places, in render order.
type Group struct {
	Code   int
	Name   string
	Color  string
	Places []geodata.Place
}

// ByProvince groups places by province code. Groups are ordered by
// normalized province name, places within a group by normalized canonical
// name; ties fall back to province code and source row so the order is
// fully deterministic.
func ByProvince(places []geodata.Place, ix *province.Index) []Group {
	byCode := make(map[int][]geodata.Place)
	var codes []int
	for _, p := range places {
		if _, ok := byCode[p.Province]; !ok {
			codes = append(codes, p.Province)
		}
		byCode[p.Province] = append(byCode[p.Province], p)
	}

	groups := make([]Group, 0, len(codes))
	for _, code := range codes {
		members := byCode[code]
		sortPlaces(members)
		groups = append(groups, Group{
			Code:   code,
			Name:   ix.Name(code),
			Color:  province.Color(code),
			Places: members,
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		ki, kj := Normalize(groups[i].Name), Normalize(groups[j].Name)
		if ki != kj {
			return ki < kj
		}
		return groups[i].Code < groups[j].Code
	})
	return groups
}

func sortPlaces(ps []geodata.Place) {
	keys := make(map[int]string, len(ps))
	for _, p := range ps {
		keys[p.Row] = Normalize(p.SCN)
	}
	sort.SliceStable(ps, func(i, j int) bool {
		ki, kj := keys[ps[i].Row], keys[ps[j].Row]
		if ki != kj {
			return ki < kj
		}
		return ps[i].Row < ps[j].Row
	})
}

// Count returns the total number of places across groups.
func Count(groups []Group) int {
	n := 0
	for _, g := range groups {
		n += len(g.Places)
	}
	return n
}
