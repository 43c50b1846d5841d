package match

import (
	"regexp"
	"strings"

	"github.com/teklink/devid/internal/model"
)

// fallbackRule is one ordered heuristic: resolve inspects the whole
// normalized identifier and may decline, letting later rules run. Evaluation
// is strictly first-match-wins, so the order of fallbackRules is part of the
// matching contract.
type fallbackRule struct {
	resolve func(u string) (model.Family, bool)
	name    string
}

var (
	reYealinkLink = regexp.MustCompile(`\byealink\s+link\b`)
	reFanvilH2U   = regexp.MustCompile(`\bh2u\b`)
	reFanvilX     = regexp.MustCompile(`\bx\d+[a-z]?\b`)
	reFanvilI     = regexp.MustCompile(`\bi(10|12|20s|20t|23|23s|30|31s)\b`)
	reGrandstream = regexp.MustCompile(`\b(?:gx[pvwr]|grp|gds|gsc|ht8)`)
	reGXW         = regexp.MustCompile(`\bgxw\d{4}`)
	reHT8         = regexp.MustCompile(`\bht8(01|02|13|14|18)\b`)
	reGXPDesk     = regexp.MustCompile(`\bgxp|grp|gxv3370|wp82[05]\b`)
	reObiATA      = regexp.MustCompile(`\bobi(200|202|300|302)\b`)
	reObiDesk     = regexp.MustCompile(`\bobi(1062|2182)\b`)
	re2N          = regexp.MustCompile(`\b2n\b`)
)

func contains(substrings ...string) func(string) bool {
	return func(u string) bool {
		for _, s := range substrings {
			if strings.Contains(u, s) {
				return true
			}
		}
		return false
	}
}

func when(pred func(string) bool, f model.Family) func(string) (model.Family, bool) {
	return func(u string) (model.Family, bool) {
		if pred(u) {
			return f, true
		}
		return "", false
	}
}

// fallbackRules mirrors the production heuristics in their original order.
// Several rules guard on a vendor marker but still decline when no model
// sub-pattern matches, falling through to later rules.
var fallbackRules = []fallbackRule{
	{name: "freepbx trunk", resolve: when(contains("fpbx", "freepbx"), model.FamilySIPTrunk)},
	{name: "control4 door station", resolve: func(u string) (model.Family, bool) {
		if strings.Contains(u, "control4") && strings.Contains(u, "door station") {
			return model.FamilyDoorBell, true
		}
		return "", false
	}},
	{name: "e12w", resolve: func(u string) (model.Family, bool) {
		if strings.HasPrefix(u, "e12w") {
			return model.FamilyDoorBell, true
		}
		return "", false
	}},
	{name: "client.webrtc", resolve: when(contains("client.webrtc"), model.FamilyDesktopSoftphone)},
	{name: "dimensions uwp", resolve: when(contains("dimensions.ucd.uwp"), model.FamilyDesktopSoftphone)},
	{name: "cloudsoftphone", resolve: when(contains("cloudsoftphone"), model.FamilySmartphoneApp)},
	{name: "acrobits", resolve: when(contains("acrobits"), model.FamilySmartphoneApp)},
	{name: "akcloudunion", resolve: when(contains("akcloudunion"), model.FamilyDeskphone)},
	{name: "bria", resolve: func(u string) (model.Family, bool) {
		if !strings.Contains(u, "bria") {
			return "", false
		}
		if strings.Contains(u, "release") {
			return model.FamilyDesktopSoftphone, true
		}
		return model.FamilySmartphoneApp, true
	}},
	{name: "callthru", resolve: when(contains("callthru.us"), model.FamilySmartphoneApp)},
	{name: "sip softphone", resolve: when(contains("sip softphone"), model.FamilyDesktopSoftphone)},
	{name: "tsip", resolve: when(contains("tsip"), model.FamilyPager)},
	{name: "uc sipis", resolve: when(contains("uc sipis"), model.FamilySmartphoneApp)},
	{name: "yealink link", resolve: func(u string) (model.Family, bool) {
		if reYealinkLink.MatchString(u) {
			return model.FamilyDesktopSoftphone, true
		}
		return "", false
	}},
	{name: "yealink", resolve: when(contains("yealink"), model.FamilyDeskphone)},
	{name: "fanvil", resolve: func(u string) (model.Family, bool) {
		if !strings.Contains(u, "fanvil") {
			return "", false
		}
		switch {
		case reFanvilH2U.MatchString(u):
			return model.FamilyDeskphone, true
		case reFanvilX.MatchString(u): // X-series
			return model.FamilyDeskphone, true
		case strings.Contains(u, "pa2"):
			return model.FamilyPager, true
		case reFanvilI.MatchString(u):
			return model.FamilyDoorBell, true
		}
		return model.FamilyDeskphone, true
	}},
	{name: "grandstream", resolve: func(u string) (model.Family, bool) {
		if !strings.Contains(u, "grandstream") && !reGrandstream.MatchString(u) {
			return "", false
		}
		switch {
		case strings.Contains(u, "gds"):
			return model.FamilyDoorBell, true
		case strings.Contains(u, "gsc"):
			return model.FamilyPager, true
		case reGXW.MatchString(u):
			return model.FamilyATA, true
		case reHT8.MatchString(u):
			return model.FamilyATA, true
		case reGXPDesk.MatchString(u):
			return model.FamilyDeskphone, true
		}
		return "", false
	}},
	{name: "polycom", resolve: when(contains("polyedge", "polycom", "vvx"), model.FamilyDeskphone)},
	{name: "cisco", resolve: func(u string) (model.Family, bool) {
		if !strings.Contains(u, "cisco") && !strings.Contains(u, "spa") {
			return "", false
		}
		if strings.Contains(u, "spa112") {
			return model.FamilyATA, true
		}
		return model.FamilyDeskphone, true
	}},
	{name: "obihai", resolve: func(u string) (model.Family, bool) {
		if !strings.Contains(u, "obi") && !strings.Contains(u, "obihai") {
			return "", false
		}
		if reObiATA.MatchString(u) {
			return model.FamilyATA, true
		}
		if reObiDesk.MatchString(u) {
			return model.FamilyDeskphone, true
		}
		return "", false
	}},
	{name: "akuvox", resolve: when(contains("akuvox"), model.FamilyDoorBell)},
	{name: "2n", resolve: func(u string) (model.Family, bool) {
		if re2N.MatchString(u) {
			return model.FamilyDoorBell, true
		}
		return "", false
	}},
	{name: "cyberdata", resolve: when(contains("cyberdata"), model.FamilyDoorBell)},
	{name: "axis", resolve: when(contains("axis"), model.FamilyPager)},
	{name: "valcom/algo", resolve: when(contains("valcom", "algo"), model.FamilyPager)},
	{name: "reachuc", resolve: when(contains("reachuc"), model.FamilySmartphoneApp)},
	{name: "connectuc", resolve: func(u string) (model.Family, bool) {
		if !strings.Contains(u, "connectuc") {
			return "", false
		}
		if strings.Contains(u, "mobile") {
			return model.FamilySmartphoneApp, true
		}
		if strings.Contains(u, "web") {
			return model.FamilyDesktopSoftphone, true
		}
		return "", false
	}},
	{name: "desktop softphones", resolve: when(contains("zoiper", "microsip"), model.FamilyDesktopSoftphone)},
	{name: "sipaua", resolve: when(contains("sipaua"), model.FamilySmartphoneApp)},
	{name: "sip uri", resolve: func(u string) (model.Family, bool) {
		if strings.HasPrefix(u, "sip:") || strings.Contains(u, "sip uri") {
			return model.FamilySIPURI, true
		}
		return "", false
	}},
}

// FallbackFamily evaluates the ordered heuristic rules against the whole
// identifier string. It runs only when the tree yields nothing; no match is a
// legitimate outcome.
func FallbackFamily(identifier string) (model.Family, bool) {
	u := strings.ToLower(strings.TrimSpace(identifier))
	if u == "" {
		return "", false
	}
	for _, rule := range fallbackRules {
		if family, ok := rule.resolve(u); ok {
			return family, true
		}
	}
	return "", false
}

// Resolver resolves a device family from an identifier string: tree lookup
// first, heuristic fallback second.
type Resolver struct {
	tree *Tree
}

// NewResolver wraps a built tree.
func NewResolver(tree *Tree) *Resolver {
	return &Resolver{tree: tree}
}

// Family returns the resolved family, or false when neither matcher fires.
func (r *Resolver) Family(identifier string) (model.Family, bool) {
	if family, ok := r.tree.Lookup(identifier); ok {
		return family, true
	}
	return FallbackFamily(identifier)
}
