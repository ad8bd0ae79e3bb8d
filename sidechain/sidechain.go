// Package sidechain holds the compiled-in sidechain enumeration. The list of
// recognized sidechains and their tau / minimum-work-score parameters is a
// consensus parameter: it is a build-time constant, never a runtime registry.
package sidechain

// ID identifies one of the compiled-in sidechains.
type ID uint8

const (
	Test     ID = 0
	Hivemind ID = 1
	Wimble   ID = 2
)

// MaxBundlesPerSidechain bounds the number of WT^ bundles a sidechain may
// have under consideration at once.
const MaxBundlesPerSidechain = 3

// MaxLinkingData bounds the BMM ratchet's FIFO length.
const MaxLinkingData = 2600

// Params describes one compiled-in sidechain's consensus parameters.
type Params struct {
	ID           ID
	Name         string
	Tau          uint16
	MinWorkScore uint16
}

// Valid is the compiled-in sidechain enumeration, indexed in declaration
// order. Changing this list or any entry's parameters is a consensus change.
var Valid = []Params{
	{ID: Test, Name: "test", Tau: 200, MinWorkScore: 100},
	{ID: Hivemind, Name: "hivemind", Tau: 200, MinWorkScore: 100},
	{ID: Wimble, Name: "wimble", Tau: 200, MinWorkScore: 100},
}

var byID = func() map[ID]Params {
	m := make(map[ID]Params, len(Valid))
	for _, p := range Valid {
		m[p.ID] = p
	}
	return m
}()

// Lookup returns the parameters for id and whether id is recognized.
func Lookup(id ID) (Params, bool) {
	p, ok := byID[id]
	return p, ok
}

// IsValid reports whether id is a recognized sidechain.
func IsValid(id ID) bool {
	_, ok := byID[id]
	return ok
}

// Tau returns id's verification-period length in blocks, or 0 if id is
// unrecognized.
func Tau(id ID) uint16 {
	return byID[id].Tau
}

// MinWorkScore returns id's minimum work score threshold for bundle
// acceptance, or 0 if id is unrecognized.
func MinWorkScore(id ID) uint16 {
	return byID[id].MinWorkScore
}

// Name returns id's human-readable name, or "" if id is unrecognized.
func Name(id ID) string {
	return byID[id].Name
}

// LastTauHeight returns the height at which id's current tau period began,
// given an arbitrary mainchain height. A pure helper; consensus logic
// does not call it.
func LastTauHeight(id ID, height int32) int32 {
	tau := int32(Tau(id))
	if tau <= 0 || height < 0 {
		return height
	}
	return height - (height % tau)
}

// IsTauBoundary reports whether height is a tau-reset boundary for id:
// height > 0 and height mod tau(id) == 0.
func IsTauBoundary(id ID, height int32) bool {
	tau := int32(Tau(id))
	return tau > 0 && height > 0 && height%tau == 0
}
