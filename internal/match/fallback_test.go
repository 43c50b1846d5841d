package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teklink/devid/internal/model"
)

func TestFallbackFamily(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		want       model.Family
		ok         bool
	}{
		{"fpbx trunk", "FPBX-16.0.40.7(18.13.0)", model.FamilySIPTrunk, true},
		{"freepbx trunk", "Custom FreePBX build", model.FamilySIPTrunk, true},
		{"control4 door station", "Control4 Door Station v2", model.FamilyDoorBell, true},
		{"control4 without door station declines", "Control4 Touchscreen", "", false},
		{"e12w prefix", "e12w firmware 2.0", model.FamilyDoorBell, true},
		{"e12w not at start declines", "fanvil e12w", model.FamilyDeskphone, true},
		{"client.webrtc", "Client.WebRTC 1.2", model.FamilyDesktopSoftphone, true},
		{"cloudsoftphone", "CloudSoftphone/1.9", model.FamilySmartphoneApp, true},
		{"acrobits", "Acrobits Groundwire", model.FamilySmartphoneApp, true},
		{"bria release is desktop", "Bria Release 6.5.1", model.FamilyDesktopSoftphone, true},
		{"bria without release is smartphone", "Bria Android 6.5", model.FamilySmartphoneApp, true},
		{"callthru", "callthru.us mobile", model.FamilySmartphoneApp, true},
		{"tsip pager", "TSIP v4.1", model.FamilyPager, true},
		{"uc sipis", "UC SIPIS gateway", model.FamilySmartphoneApp, true},
		{"yealink link is desktop softphone", "Yealink Link 1.0", model.FamilyDesktopSoftphone, true},
		{"plain yealink is deskphone", "Yealink W60B", model.FamilyDeskphone, true},
		{"fanvil h2u", "Fanvil H2U 2.4", model.FamilyDeskphone, true},
		{"fanvil x series", "Fanvil X4U 2.12.1", model.FamilyDeskphone, true},
		{"fanvil pa2", "Fanvil PA2 paging", model.FamilyPager, true},
		{"fanvil i-series door", "Fanvil i23s", model.FamilyDoorBell, true},
		{"fanvil default is deskphone", "Fanvil V67", model.FamilyDeskphone, true},
		{"grandstream gds is door bell", "Grandstream GDS3710", model.FamilyDoorBell, true},
		{"grandstream gsc is pager", "Grandstream GSC3505", model.FamilyPager, true},
		{"grandstream gxw is ata", "GXW4216 V2", model.FamilyATA, true},
		{"grandstream ht8 is ata", "HT814 1.0.27", model.FamilyATA, true},
		{"grandstream gxp is deskphone", "GXP2170 1.0.11", model.FamilyDeskphone, true},
		{"bare grandstream falls through to nothing", "Grandstream Device", "", false},
		{"polycom", "PolycomVVX-VVX_411", model.FamilyDeskphone, true},
		{"cisco spa112 is ata", "Cisco SPA112", model.FamilyATA, true},
		{"cisco default is deskphone", "Cisco Unified IP Phone", model.FamilyDeskphone, true},
		{"obihai ata model", "OBi202 firmware", model.FamilyATA, true},
		{"obihai deskphone model", "OBi1062 phone", model.FamilyDeskphone, true},
		{"bare obi falls through", "OBiTALK device", "", false},
		{"akuvox", "Akuvox X912", model.FamilyDoorBell, true},
		{"2n whole word", "2N IP Verso", model.FamilyDoorBell, true},
		{"2n inside another token declines", "a2nb device", "", false},
		{"cyberdata", "CyberData Intercom", model.FamilyDoorBell, true},
		{"axis is pager", "AXIS C1310-E", model.FamilyPager, true},
		{"valcom", "Valcom VIP-430A", model.FamilyPager, true},
		{"algo", "Algo 8301", model.FamilyPager, true},
		{"reachuc", "ReachUC 2.0", model.FamilySmartphoneApp, true},
		{"connectuc mobile", "ConnectUC Mobile 1.1", model.FamilySmartphoneApp, true},
		{"connectuc web", "ConnectUC Web 1.1", model.FamilyDesktopSoftphone, true},
		{"bare connectuc falls through", "ConnectUC", "", false},
		{"zoiper", "Zoiper rv2.10.18", model.FamilyDesktopSoftphone, true},
		{"microsip", "MicroSIP/3.21", model.FamilyDesktopSoftphone, true},
		{"sipaua", "SIPAUA/0.1.001", model.FamilySmartphoneApp, true},
		{"sip: prefix", "sip:1001@pbx.example.com", model.FamilySIPURI, true},
		{"sip uri phrase", "generic SIP URI endpoint", model.FamilySIPURI, true},
		{"empty", "", "", false},
		{"no rule matches", "Mystery Hardware 9000", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FallbackFamily(tt.identifier)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

// Rule order is part of the contract: the trunk rule outranks everything, and
// vendor rules with sub-patterns run before the generic catch-alls.
func TestFallbackFamilyOrder(t *testing.T) {
	// "fpbx" wins even when a later rule would also match.
	fam, ok := FallbackFamily("fpbx yealink")
	require.True(t, ok)
	assert.Equal(t, model.FamilySIPTrunk, fam)

	// "yealink link" is checked before the plain yealink rule.
	fam, ok = FallbackFamily("yealink link for windows")
	require.True(t, ok)
	assert.Equal(t, model.FamilyDesktopSoftphone, fam)

	// Declined grandstream guard still lets later rules fire.
	fam, ok = FallbackFamily("grandstream akuvox hybrid")
	require.True(t, ok)
	assert.Equal(t, model.FamilyDoorBell, fam)
}

func TestResolverFamily(t *testing.T) {
	tree, err := NewTree(nil)
	require.NoError(t, err)
	r := NewResolver(tree)

	t.Run("tree match wins", func(t *testing.T) {
		// The fallback would call "Yealink Link" a desktop softphone, but the
		// yealink tree leaf fires first and the tree answer wins.
		fam, ok := r.Family("Yealink Link 1.0")
		require.True(t, ok)
		assert.Equal(t, model.FamilyDeskphone, fam)
	})

	t.Run("fallback covers tree misses", func(t *testing.T) {
		fam, ok := r.Family("Custom PolycomVVX build")
		require.True(t, ok)
		assert.Equal(t, model.FamilyDeskphone, fam)
	})

	t.Run("neither matcher fires", func(t *testing.T) {
		_, ok := r.Family("completely unknown endpoint")
		assert.False(t, ok)
	})
}
