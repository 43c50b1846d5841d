package match

import (
	"regexp"
	"strings"

	"github.com/teklink/devid/internal/catalog"
)

// nameRule maps a device-name keyword to a product. Rules are scanned in
// order, first match wins. A few long-standing entries name a family rather
// than a sellable product; the engine's candidate-set membership check
// filters those out, so they never collapse a set on their own.
type nameRule struct {
	re      *regexp.Regexp
	keyword string
	product string
}

func wholeWord(keyword, product string) nameRule {
	return nameRule{
		keyword: keyword,
		product: product,
		re:      regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\b`),
	}
}

func substring(keyword, product string) nameRule {
	return nameRule{keyword: keyword, product: product}
}

// nameWholeWords is the first tier: whole-word matches only.
var nameWholeWords = []nameRule{
	wholeWord("2n", catalog.DoorBell),
	wholeWord("bria", "Desktop Softphone"),
	wholeWord("db", catalog.DoorBell),
	wholeWord("pa2", catalog.Pager),
	wholeWord("koonloon", catalog.ATAPublic),
	wholeWord("horn", catalog.Pager),
	wholeWord("app", "Smartphone App"),
	wholeWord("fpbx", catalog.SIPTrunk),
	wholeWord("freepbx", catalog.SIPTrunk),
}

// nameSubstrings is the second tier: plain substring containment.
var nameSubstrings = []nameRule{
	// Door bells
	substring("door", catalog.DoorBell),
	substring("doorbell", catalog.DoorBell),
	substring("inside", catalog.DoorBell),
	substring("outside", catalog.DoorBell),
	substring("intercom", catalog.DoorBell),
	substring("entrance", catalog.DoorBell),
	substring("doorphone", catalog.DoorBell),
	substring("downstairs", catalog.DoorBell),
	substring("upstairs", catalog.DoorBell),
	substring("akuvox", catalog.DoorBell),
	substring("gds3710", catalog.DoorBell),
	substring("control4", catalog.DoorBell),
	substring("r20a", catalog.DoorBell),
	substring("r20k", catalog.DoorBell),
	substring("r20v", catalog.DoorBell),
	substring("r26c", catalog.DoorBell),
	substring("e12w", catalog.DoorBell),
	substring("i10", catalog.DoorBell),
	substring("i10sd", catalog.DoorBell),
	substring("i10v", catalog.DoorBell),
	substring("i12", catalog.DoorBell),
	substring("i20s", catalog.DoorBell),
	substring("i20t", catalog.DoorBell),
	substring("i23", catalog.DoorBell),
	substring("i23s", catalog.DoorBell),
	substring("i30", catalog.DoorBell),
	substring("i31s", catalog.DoorBell),

	// Pagers
	substring("page", catalog.Pager),
	substring("speaker", catalog.Pager),
	substring("amplifier", catalog.Pager),
	substring("algo", catalog.Pager),
	substring("gsc3505", catalog.Pager),
	substring("gsc3510", catalog.Pager),
	substring("pa2", catalog.Pager),
	substring("pa2s", catalog.Pager),
	substring("8301", catalog.Pager),

	// Desktop softphones
	substring("zoiper", "Desktop Softphone"),
	substring("microsip", "Desktop Softphone"),
	substring("connect web", "Desktop Softphone"),
	substring("connect desktop", "Desktop Softphone"),
	substring("comm.io", "Desktop Softphone"),
	substring("softphone", "Desktop Softphone"),
	substring("client.webrtc", "Desktop Softphone"),
	substring("dimensions.ucd.uwp", "Desktop Softphone"),

	// Smartphone apps
	substring("reachuc", "Smartphone App"),
	substring("acrobits", "Smartphone App"),
	substring("groundwire", "Smartphone App"),
	substring("connect mobile", "Smartphone App"),
	substring("mobile", "Smartphone App"),
	substring("smartphone", "Smartphone App"),
	substring("cloudsoftphone", "Smartphone App"),

	// ATA keywords
	substring("ht801", catalog.ATAAnalog),
	substring("ht802", catalog.ATAAnalog),
	substring("ht813", catalog.ATAAnalog),
	substring("ht814", catalog.ATAPublic),
	substring("ht818", catalog.ATAPublic),
	substring("gxw4216", catalog.ATAPublic),
	substring("gxw4224", catalog.ATAPublic),
	substring("gxw4248", catalog.ATAPublic),
	substring("gxw4248v2", catalog.ATAPublic),
	substring("spa112", catalog.ATAAnalog),
	substring("pap2t", catalog.ATAAnalog),
	substring("patton", catalog.ATAAnalog),
	substring("adapter", catalog.ATAAnalog),
	substring("cordless", catalog.ATAAnalog),
	substring("public", catalog.ATAPublic),
	substring("resident", catalog.ATAPublic),
	substring("elevator", catalog.ATADoorbell),

	// Trunks
	substring("fpbx", catalog.SIPTrunk),
	substring("freepbx", catalog.SIPTrunk),
}

// NameHint resolves a product from a free-text device name. The padded
// " pa " token is checked before either keyword tier; then whole-word rules,
// then substring rules, each first-match-wins. The hint can only narrow an
// existing candidate set, never widen it.
func NameHint(deviceName string) (string, bool) {
	nm := strings.ToLower(strings.TrimSpace(deviceName))
	if nm == "" {
		return "", false
	}
	if strings.Contains(" "+nm+" ", " pa ") {
		return catalog.Pager, true
	}
	for _, rule := range nameWholeWords {
		if rule.re.MatchString(nm) {
			return rule.product, true
		}
	}
	for _, rule := range nameSubstrings {
		if strings.Contains(nm, rule.keyword) {
			return rule.product, true
		}
	}
	return "", false
}
