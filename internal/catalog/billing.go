package catalog

import "github.com/teklink/devid/internal/model"

// Billing holds the (platform, product) -> code tables. It is built once at
// startup; overrides may be applied during construction, never afterwards.
type Billing struct {
	codes map[model.Platform]map[string]string
}

// Override replaces (or adds) a single billing code for a platform/product
// pair. Overrides come from the extension store and are applied before the
// table is handed to the serving path.
type Override struct {
	Platform model.Platform
	Product  string
	Code     string
}

// NewBilling returns the default billing tables.
//
// SkySwitch deliberately has no code for the Cellphone Routing Device; that
// gap is part of the billing contract and must not be filled in.
func NewBilling() *Billing {
	return &Billing{codes: map[model.Platform]map[string]string{
		model.PlatformKazoo: {
			ProvisionedDeskphone: "KZ1004",
			ManualDeskphone:      "KZ1005",
			CloneDeskphone:       "KZ1006",
			DeskphoneAdditional:  "KZ1007",
			SIPCredentials:       "KZ1008",
			SoftphoneUser:        "KZ1009",
			SoftphoneAdditional:  "KZ1010",
			SmartphoneUser:       "KZ1011",
			SmartphoneAdditional: "KZ1012",
			CellphoneRouting:     "KZ1013",
			DoorBell:             "KZ1014",
			Pager:                "KZ1015",
			ATAAnalog:            "KZ1016",
			ATADoorbell:          "KZ1017",
			ATAPublic:            "KZ1018",
			SIPURI:               "KZ1019",
			SIPTrunk:             "KZ1020",
		},
		model.PlatformSkySwitch: {
			ProvisionedDeskphone: "SS2004",
			ManualDeskphone:      "SS2005",
			CloneDeskphone:       "SS2006",
			DeskphoneAdditional:  "SS2007",
			SIPCredentials:       "SS2008",
			SoftphoneUser:        "SS2009",
			SoftphoneAdditional:  "SS2010",
			SmartphoneUser:       "SS2011",
			SmartphoneAdditional: "SS2012",
			DoorBell:             "SS2014",
			Pager:                "SS2015",
			ATAAnalog:            "SS2016",
			ATADoorbell:          "SS2017",
			ATAPublic:            "SS2018",
			SIPURI:               "SS2019",
			SIPTrunk:             "SS2020",
		},
	}}
}

// NewBillingWithOverrides builds the default tables and layers the given
// overrides on top.
func NewBillingWithOverrides(overrides []Override) *Billing {
	b := NewBilling()
	for _, o := range overrides {
		table, ok := b.codes[o.Platform]
		if !ok {
			continue
		}
		table[o.Product] = o.Code
	}
	return b
}

// CodeFor returns the billing code for a platform/product pair, or the empty
// string when no code exists. An unknown pair is a valid, unbilled outcome,
// not an error.
func (b *Billing) CodeFor(platform model.Platform, product string) string {
	table, ok := b.codes[platform]
	if !ok {
		table = b.codes[model.PlatformKazoo]
	}
	return table[product]
}
