package domain

// Village is the geographic partition key used for scoping and
// aggregation. The set is a controlled vocabulary, not user-extensible.
type Village string

const (
	VillageChandrapur Village = "Chandrapur"
	VillageMohisguha  Village = "Mohisguha"
	VillageChatra     Village = "Chatra"
)

// villages lists every known village in display/aggregation order.
var villages = []Village{VillageChandrapur, VillageMohisguha, VillageChatra}

// Villages returns the known villages in their canonical order.
func Villages() []Village {
	out := make([]Village, len(villages))
	copy(out, villages)
	return out
}

// Valid reports whether v is a known village.
func (v Village) Valid() bool {
	for _, known := range villages {
		if v == known {
			return true
		}
	}
	return false
}
