package match

import "github.com/teklink/devid/internal/model"

// deviceTable is the base identifier table, keyed by lowercase tokens.
// Deployment-specific entries are layered on via the extension store.
var deviceTable = map[string]TableNode{
	"2n":           leaf(model.FamilyDoorBell),
	"3cxphone":     leaf(model.FamilyDesktopSoftphone),
	"acrobits":     leaf(model.FamilySmartphoneApp),
	"akcloudunion": leaf(model.FamilyDeskphone),
	"akuvox":       leaf(model.FamilyDoorBell),
	"algo": branch(map[string]TableNode{
		"8028":   leaf(model.FamilyDoorBell),
		"8028g2": leaf(model.FamilyDoorBell),
		"8063":   leaf(model.FamilyDoorBell),
		"8180":   leaf(model.FamilyPager),
		"8180g2": leaf(model.FamilyPager),
		"8186":   leaf(model.FamilyPager),
		"8188":   leaf(model.FamilyPager),
		"8201":   leaf(model.FamilyDoorBell),
		"8301":   leaf(model.FamilyPager),
	}),
	"axis": leaf(model.FamilyPager),
	"bria": branch(map[string]TableNode{
		"android": leaf(model.FamilySmartphoneApp),
		"release": leaf(model.FamilyDesktopSoftphone),
	}),
	"cisco": branch(map[string]TableNode{
		"cp": branch(map[string]TableNode{
			"8841": leaf(model.FamilyDeskphone),
			"8861": leaf(model.FamilyDeskphone),
		}),
		"spa112":   leaf(model.FamilyATA),
		"spa122":   leaf(model.FamilyATA),
		"spa303":   leaf(model.FamilyDeskphone),
		"spa504g":  leaf(model.FamilyDeskphone),
		"spa508g":  leaf(model.FamilyDeskphone),
		"spa525":   leaf(model.FamilyDeskphone),
		"spa525g2": leaf(model.FamilyDeskphone),
		"spa8800":  leaf(model.FamilyATA),
	}),
	"client.webrtc":  leaf(model.FamilyDesktopSoftphone),
	"cloudsoftphone": leaf(model.FamilySmartphoneApp),
	"connectuc": branch(map[string]TableNode{
		"mobile": leaf(model.FamilySmartphoneApp),
		"web":    leaf(model.FamilyDesktopSoftphone),
	}),
	"control4":   leaf(model.FamilyDoorBell),
	"cyberdata":  leaf(model.FamilyDoorBell),
	"dimensions": leaf(model.FamilyDesktopSoftphone),
	"e12w":       leaf(model.FamilyDoorBell),
	"fanvil": branch(map[string]TableNode{
		"h2u":   leaf(model.FamilyDeskphone),
		"i10":   leaf(model.FamilyDoorBell),
		"i10s":  leaf(model.FamilyDoorBell),
		"i10sd": leaf(model.FamilyDoorBell),
		"i10v":  leaf(model.FamilyDoorBell),
		"i12":   leaf(model.FamilyDoorBell),
		"i20s":  leaf(model.FamilyDoorBell),
		"i20t":  leaf(model.FamilyDoorBell),
		"i23":   leaf(model.FamilyDoorBell),
		"i23s":  leaf(model.FamilyDoorBell),
		"i30":   leaf(model.FamilyDoorBell),
		"i31s":  leaf(model.FamilyDoorBell),
		"i67":   leaf(model.FamilyDoorBell),
		"pa2":   leaf(model.FamilyPager),
		"pa2s":  leaf(model.FamilyPager),
		"x2":    leaf(model.FamilyDeskphone),
		"x4u":   leaf(model.FamilyDeskphone),
		"x6u":   leaf(model.FamilyDeskphone),
	}),
	"gac2500": leaf(model.FamilyDeskphone),
	"grandstream": branch(map[string]TableNode{
		"gac2500":   leaf(model.FamilyDeskphone),
		"gds3710":   leaf(model.FamilyDoorBell),
		"ghp6110":   leaf(model.FamilyDeskphone),
		"grp2602p":  leaf(model.FamilyDeskphone),
		"grp2615":   leaf(model.FamilyDeskphone),
		"gsc3505":   leaf(model.FamilyPager),
		"gsc3506":   leaf(model.FamilyPager),
		"gsc3510":   leaf(model.FamilyPager),
		"gxp1610":   leaf(model.FamilyDeskphone),
		"gxp1625":   leaf(model.FamilyDeskphone),
		"gxp2130":   leaf(model.FamilyDeskphone),
		"gxp2135":   leaf(model.FamilyDeskphone),
		"gxp2140":   leaf(model.FamilyDeskphone),
		"gxp2160":   leaf(model.FamilyDeskphone),
		"gxp2170":   leaf(model.FamilyDeskphone),
		"gxv3370":   leaf(model.FamilyDeskphone),
		"gxw4216":   leaf(model.FamilyATA),
		"gxw4224":   leaf(model.FamilyATA),
		"gxw4224v2": leaf(model.FamilyATA),
		"gxw4248":   leaf(model.FamilyATA),
		"gxw4248v2": leaf(model.FamilyATA),
		"ht701":     leaf(model.FamilyATA),
		"ht801":     leaf(model.FamilyATA),
		"ht801v2":   leaf(model.FamilyATA),
		"ht802":     leaf(model.FamilyATA),
		"ht802v2":   leaf(model.FamilyATA),
		"ht813":     leaf(model.FamilyATA),
		"ht814":     leaf(model.FamilyATA),
		"ht814v2":   leaf(model.FamilyATA),
		"ht818":     leaf(model.FamilyATA),
		"ht818v2":   leaf(model.FamilyATA),
		"wp820":     leaf(model.FamilyDeskphone),
		"wp825":     leaf(model.FamilyDeskphone),
	}),
	"koonloon": leaf(model.FamilyATA),
	"linksys": branch(map[string]TableNode{
		"pap2t":  leaf(model.FamilyATA),
		"spa942": leaf(model.FamilyDeskphone),
	}),
	"lol512":   leaf(model.FamilyDeskphone),
	"microsip": leaf(model.FamilyDesktopSoftphone),
	"netsapiens": branch(map[string]TableNode{
		"ncs": leaf(model.FamilyDesktopSoftphone),
	}),
	"obihai": branch(map[string]TableNode{
		"obi200":  leaf(model.FamilyATA),
		"obi202":  leaf(model.FamilyATA),
		"obi300":  leaf(model.FamilyATA),
		"obi302":  leaf(model.FamilyATA),
		"obi1062": leaf(model.FamilyDeskphone),
		"obi2182": leaf(model.FamilyDeskphone),
	}),
	"panasonic":             leaf(model.FamilyDeskphone),
	"patton":                leaf(model.FamilyATA),
	"polycom":               leaf(model.FamilyDeskphone),
	"polycomsoundpointip":   leaf(model.FamilyDeskphone),
	"polycomsoundstationip": leaf(model.FamilyDeskphone),
	"polycomvvx":            leaf(model.FamilyDeskphone),
	"polyedge":              leaf(model.FamilyDeskphone),
	"push": branch(map[string]TableNode{
		"server": leaf(model.FamilySmartphoneApp),
	}),
	"r20a":    leaf(model.FamilyDoorBell),
	"r20k":    leaf(model.FamilyDoorBell),
	"r20v":    leaf(model.FamilyDoorBell),
	"r26c":    leaf(model.FamilyDoorBell),
	"reachuc": leaf(model.FamilySmartphoneApp),
	"sh30":    leaf(model.FamilyPager),
	"sip": branch(map[string]TableNode{
		"softphone": leaf(model.FamilyDesktopSoftphone),
	}),
	"sipaua":    leaf(model.FamilySmartphoneApp),
	"skyswitch": leaf(model.FamilySmartphoneApp),
	"snompa1":   leaf(model.FamilyPager),
	"tsip":      leaf(model.FamilyPager),
	"uc": branch(map[string]TableNode{
		"sipis": leaf(model.FamilySmartphoneApp),
	}),
	"ucsip": branch(map[string]TableNode{
		"r8.44.2236": branch(map[string]TableNode{
			"iver60.65dbg": leaf(model.FamilyPager),
		}),
	}),
	"v9.2.0": leaf(model.FamilyDoorBell),
	"valcom": leaf(model.FamilyPager),
	"voip": branch(map[string]TableNode{
		"door": branch(map[string]TableNode{
			"phone": leaf(model.FamilyDoorBell),
		}),
		"ip": branch(map[string]TableNode{
			"paging": leaf(model.FamilyPager),
		}),
	}),
	"yealink": leaf(model.FamilyDeskphone),
	"z":       leaf(model.FamilyDesktopSoftphone),
	"zoiper":  leaf(model.FamilyDesktopSoftphone),

	// FreePBX trunk identifiers resolve straight to the trunk family.
	"fpbx":    leaf(model.FamilySIPTrunk),
	"freepbx": leaf(model.FamilySIPTrunk),
}
