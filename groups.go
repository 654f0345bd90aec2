package berrytally

import (
	"slices"
	"strings"
)

// PackageGroup is one line of packaged inventory: all fungible bags sharing a
// product, size and mix signature.
type PackageGroup struct {
	Key            GroupKey
	Date           Date // most recent creation or action touching the group
	Product        Product
	SizeGrams      Grams
	Mix            Mix
	AvailableCount int
	CostPerBag     PYG // snapshot from the first package record seen
}

// PackageGroups folds the package and package action logs into the packaged
// inventory. Package records add their count to the group, actions subtract
// theirs clamped at zero.
//
// Groups are never removed: a group drained to zero still says "this package
// type was once made" and stays listable, which is also what keeps its
// availability gate addressable.
func (l *Ledger) PackageGroups() map[GroupKey]PackageGroup {
	groups := map[GroupKey]PackageGroup{}
	for _, p := range l.Packages() {
		key := p.Key()
		g, ok := groups[key]
		if !ok {
			g = PackageGroup{
				Key:        key,
				Date:       p.Date,
				Product:    p.Product,
				SizeGrams:  p.SizeGrams,
				Mix:        p.Mix,
				CostPerBag: p.CostPerBag,
			}
		}
		g.AvailableCount += p.Count
		if p.Date.After(g.Date) {
			g.Date = p.Date
		}
		groups[key] = g
	}
	for _, a := range l.PackageActions() {
		g, ok := groups[a.Key()]
		if !ok {
			// An action on an unknown group is an inconsistent log;
			// ignore it rather than fabricate an inventory line.
			continue
		}
		g.AvailableCount = max(0, g.AvailableCount-a.Count)
		if a.Date.After(g.Date) {
			g.Date = a.Date
		}
		groups[a.Key()] = g
	}
	return groups
}

// SortedPackageGroups returns the groups ordered by representative date then
// key, the deterministic order used by reports and selectors.
func SortedPackageGroups(groups map[GroupKey]PackageGroup) []PackageGroup {
	out := make([]PackageGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, g)
	}
	slices.SortFunc(out, func(a, b PackageGroup) int {
		if a.Date != b.Date {
			if a.Date.Before(b.Date) {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Key.String(), b.Key.String())
	})
	return out
}
