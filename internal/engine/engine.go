// Package engine implements the narrowing pipeline that classifies a device
// into billable product candidates.
//
// The pipeline starts from the full product catalog and removes what the
// device cannot be: short-circuits first, then family narrowing from the
// identifier string, then the deskphone refinement, then the name hint. Every
// step appends to a pipe-delimited decision trace so operators can audit why
// each elimination happened.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/teklink/devid/internal/catalog"
	"github.com/teklink/devid/internal/match"
	"github.com/teklink/devid/internal/model"
)

// Engine classifies devices. All of its state is read-only after
// construction, so a single Engine serves any number of concurrent requests.
type Engine struct {
	resolver *match.Resolver
	billing  *catalog.Billing
}

// New creates an engine from a built resolver and billing table.
func New(resolver *match.Resolver, billing *catalog.Billing) *Engine {
	return &Engine{resolver: resolver, billing: billing}
}

// Classify runs the narrowing pipeline for one request. It is total: every
// malformed input normalizes to a safe default, and unmatched input yields a
// larger candidate set rather than an error.
func (e *Engine) Classify(req model.Request) model.Result {
	platEcho := strings.ToLower(strings.TrimSpace(req.Platform))
	if platEcho == "" {
		platEcho = string(model.PlatformKazoo)
	}
	platform := model.ParsePlatform(req.Platform)
	deviceType := strings.ToLower(strings.TrimSpace(req.DeviceType))
	identifier := strings.TrimSpace(req.UserAgent)
	line := parseLine(req.Line)
	macOK := validMAC(req.MAC)

	// The reported family is resolved from the identifier alone and is not
	// gated by the short-circuits below, so it can disagree with a
	// short-circuited candidate list. Operators rely on that for diagnosis.
	var family *model.Family
	if fam, ok := e.resolver.Family(identifier); ok {
		family = &fam
	}

	// Empty identifier on SkySwitch is categorically unbilled.
	if platform == model.PlatformSkySwitch && identifier == "" {
		return e.result(platEcho, platform, family, nil, "platform:SkySwitch | ua:empty")
	}

	// An explicit cellphone/landline or sip_uri device type overrides the
	// identifier entirely.
	if deviceType == "cellphone" || deviceType == "landline" {
		return e.result(platEcho, platform, family, []string{catalog.CellphoneRouting}, "type:"+deviceType)
	}
	if deviceType == "sip_uri" {
		return e.result(platEcho, platform, family, []string{catalog.SIPURI}, "type:sip_uri")
	}

	set := newCandidateSet(catalog.Products())
	if deviceType == "" {
		deviceType = "unknown"
	}
	trace := []string{
		"type:" + deviceType,
		fmt.Sprintf("mac:%t", macOK),
		fmt.Sprintf("line:%d", line),
	}

	if family != nil {
		if product, single := catalog.SingletonProduct(*family); single {
			set.only(product)
			trace = append(trace, "ua:"+string(*family))
		} else {
			set.retain(catalog.VariantsFor(*family))
			trace = append(trace, "ua:"+familyLabel(*family))
		}
	} else {
		trace = append(trace, "ua:None")
	}

	// Deskphone refinement: only when every remaining candidate is a
	// deskphone variant. The policy removes impossibilities; it never picks
	// a single variant unless the line count forces it.
	if set.allDeskphone() {
		switch {
		case line > 1:
			set.only(catalog.DeskphoneAdditional)
			trace = append(trace, "desk:line>1 -> only Additional")
		case macOK:
			set.remove(catalog.ManualDeskphone, catalog.DeskphoneAdditional, catalog.SIPCredentials)
			trace = append(trace, "desk:mac=True line=1 -> drop Manual/Additional/SIP-Creds")
		default:
			set.remove(catalog.ProvisionedDeskphone, catalog.DeskphoneAdditional)
			trace = append(trace, "desk:mac=False line=1 -> drop Provisioned/Additional")
		}
	}

	// A name hint may only select a product the set already contains.
	if set.len() > 1 {
		if hint, ok := match.NameHint(req.DeviceName); ok && set.contains(hint) {
			set.only(hint)
			trace = append(trace, "name:"+req.DeviceName+" -> "+hint)
		}
	}

	return e.result(platEcho, platform, family, set.list(), strings.Join(trace, " | "))
}

func (e *Engine) result(platEcho string, platform model.Platform, family *model.Family, products []string, basis string) model.Result {
	candidates := make([]model.Candidate, 0, len(products))
	for _, product := range products {
		candidates = append(candidates, model.Candidate{
			Product: product,
			Code:    e.billing.CodeFor(platform, product),
		})
	}
	return model.Result{
		Platform:   platEcho,
		Family:     family,
		Candidates: candidates,
		Basis:      basis,
	}
}

// familyLabel is the trace label for a multi-product family. The ATA family
// is abbreviated in traces for log compatibility.
func familyLabel(family model.Family) string {
	if family == model.FamilyATA {
		return "ATA"
	}
	return string(family)
}

// parseLine extracts the leading integer of the raw line value, defaulting
// to 1 for anything non-numeric.
func parseLine(raw string) int {
	s := strings.TrimSpace(raw)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 1
	}
	n, err := strconv.Atoi(s[:j])
	if err != nil {
		return 1
	}
	return n
}

// validMAC reports whether the hardware address contains exactly 12 hex
// characters once every separator is stripped. No checksum beyond that.
func validMAC(raw string) bool {
	count := 0
	for _, r := range strings.ToLower(raw) {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') {
			count++
		}
	}
	return count == 12
}
