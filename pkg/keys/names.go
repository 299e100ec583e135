// ABOUTME: Canonical key-name catalog assembled from the classifier tables.
// ABOUTME: Backs name lookup tooling; the decoder itself never consults it.

package keys

import "sort"

// Names returns the sorted set of key names the classifier can produce.
func Names() []string {
	set := map[string]struct{}{}
	for _, n := range paramLetterNames {
		set[n] = struct{}{}
	}
	for _, n := range legacyLetterNames {
		set[n] = struct{}{}
	}
	for _, n := range tildeNames {
		set[n] = struct{}{}
	}
	for _, n := range csiUNames {
		set[n] = struct{}{}
	}

	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
