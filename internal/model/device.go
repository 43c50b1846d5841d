// Package model defines the core data structures for the devid application.
package model

import (
	"fmt"
	"strings"
)

// Family is a coarse device category used to narrow the candidate set.
// Families are never billed directly; they only filter products.
type Family string

// Known device families.
const (
	FamilyDeskphone        Family = "Deskphone"
	FamilyDesktopSoftphone Family = "Desktop Softphone"
	FamilySmartphoneApp    Family = "Smartphone App"
	FamilyATA              Family = "ATA SIP Account"
	FamilyDoorBell         Family = "Door Bell"
	FamilyPager            Family = "Pager"
	FamilySIPURI           Family = "SIP URI"
	FamilySIPTrunk         Family = "SIP Trunk"
)

// Families lists every known family.
func Families() []Family {
	return []Family{
		FamilyDeskphone,
		FamilyDesktopSoftphone,
		FamilySmartphoneApp,
		FamilyATA,
		FamilyDoorBell,
		FamilyPager,
		FamilySIPURI,
		FamilySIPTrunk,
	}
}

// ParseFamily resolves a case-insensitive family name.
func ParseFamily(raw string) (Family, error) {
	for _, f := range Families() {
		if strings.EqualFold(raw, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown family %q", raw)
}

// Platform selects which billing code table applies.
type Platform string

// Supported billing platforms.
const (
	PlatformKazoo     Platform = "kazoo"
	PlatformSkySwitch Platform = "skyswitch"
)

// ParsePlatform normalizes a raw platform string. Anything that is not
// recognized falls back to kazoo for billing purposes; callers echo the
// raw value separately.
func ParsePlatform(raw string) Platform {
	if Platform(strings.ToLower(strings.TrimSpace(raw))) == PlatformSkySwitch {
		return PlatformSkySwitch
	}
	return PlatformKazoo
}

// Request carries the raw inputs of one classification. All fields are
// free-text as received from the caller; normalization happens inside the
// engine.
type Request struct {
	Platform   string `json:"platform" form:"platform"`
	DeviceType string `json:"device_type" form:"device_type"`
	UserAgent  string `json:"ua" form:"ua"`
	MAC        string `json:"mac" form:"mac"`
	Line       string `json:"line" form:"line"`
	DeviceName string `json:"device_name" form:"device_name"`
}

// Candidate pairs a surviving product with its billing code for the
// requested platform. Code is empty when no code exists for the pair.
type Candidate struct {
	Product string `json:"product"`
	Code    string `json:"code"`
}

// Result is the outcome of one classification.
//
// Family is re-resolved from the identifier string independently of the
// short-circuit paths, so it may name a family the candidate list ignores.
// That disagreement is intentional and kept for diagnostics.
type Result struct {
	Platform   string      `json:"platform"`
	Family     *Family     `json:"family"`
	Candidates []Candidate `json:"candidates"`
	Basis      string      `json:"basis"`
}

// Extension is one identifier-tree extension entry: a token path and the
// family its leaf resolves to. Extensions are merged into the tree once at
// startup; a path collision overwrites the existing value.
type Extension struct {
	Path   []string `json:"path"`
	Family Family   `json:"family"`
}
