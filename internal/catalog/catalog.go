// Package catalog holds the static product universe and billing code tables.
// Everything here is fixed at process start; requests only read it.
package catalog

import "github.com/teklink/devid/internal/model"

// Product names. These are the billable SKUs the classifier can emit.
const (
	ManualDeskphone      = "Manual Deskphone"
	DeskphoneAdditional  = "Deskphone Additional SIP Account"
	ProvisionedDeskphone = "Provisioned Deskphone"
	CloneDeskphone       = "Clone Deskphone"
	SIPCredentials       = "SIP Credentials for External Device"

	ATAAnalog   = "ATA SIP Account (Analog Telephone)"
	ATADoorbell = "ATA SIP Account (Doorbell / Pager / Elevator Line)"
	ATAPublic   = "ATA SIP Account (Public Phone / Resident Phone)"

	SmartphoneUser       = "Smartphone App User"
	SmartphoneAdditional = "Smartphone App (User's Additional Device)"

	SoftphoneUser       = "Desktop Softphone User"
	SoftphoneAdditional = "Desktop Softphone (User's Additional Device)"

	DoorBell = "Door Bell"
	Pager    = "Pager"
	SIPURI   = "SIP URI"

	CellphoneRouting = "Cellphone Routing Device"
	SIPTrunk         = "SIP Trunk"
)

var deskVariants = []string{
	ManualDeskphone,
	DeskphoneAdditional,
	ProvisionedDeskphone,
	CloneDeskphone,
	SIPCredentials,
}

var ataVariants = []string{
	ATAAnalog,
	ATADoorbell,
	ATAPublic,
}

var smartphoneVariants = []string{
	SmartphoneUser,
	SmartphoneAdditional,
}

var softphoneVariants = []string{
	SoftphoneUser,
	SoftphoneAdditional,
}

var allProducts = buildAllProducts()

func buildAllProducts() []string {
	out := make([]string, 0, 17)
	out = append(out, deskVariants...)
	out = append(out, ataVariants...)
	out = append(out, smartphoneVariants...)
	out = append(out, softphoneVariants...)
	out = append(out, DoorBell, Pager, SIPURI)
	out = append(out, CellphoneRouting, SIPTrunk)
	return out
}

// Products returns the full product universe in catalog order. The slice is
// a copy; callers may narrow it freely.
func Products() []string {
	out := make([]string, len(allProducts))
	copy(out, allProducts)
	return out
}

// VariantsFor returns the product variants of a multi-product family, or nil
// when the family has no variant list (singleton families collapse to a
// single product instead).
func VariantsFor(family model.Family) []string {
	switch family {
	case model.FamilyDeskphone:
		return deskVariants
	case model.FamilyATA:
		return ataVariants
	case model.FamilySmartphoneApp:
		return smartphoneVariants
	case model.FamilyDesktopSoftphone:
		return softphoneVariants
	default:
		return nil
	}
}

// SingletonProduct maps a singleton family to its lone product. The second
// return is false for multi-product families.
func SingletonProduct(family model.Family) (string, bool) {
	switch family {
	case model.FamilyDoorBell:
		return DoorBell, true
	case model.FamilyPager:
		return Pager, true
	case model.FamilySIPURI:
		return SIPURI, true
	case model.FamilySIPTrunk:
		return SIPTrunk, true
	default:
		return "", false
	}
}

// IsDeskphoneVariant reports whether product belongs to the Deskphone family.
func IsDeskphoneVariant(product string) bool {
	for _, v := range deskVariants {
		if v == product {
			return true
		}
	}
	return false
}
