package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/teklink/devid/internal/catalog"
)

func TestNameHint(t *testing.T) {
	tests := []struct {
		name       string
		deviceName string
		want       string
		ok         bool
	}{
		{"empty name", "", "", false},
		{"whitespace only", "   ", "", false},
		{"no keyword", "Reception Phone", "", false},

		// The padded " pa " token outranks both keyword tiers.
		{"bare pa token", "PA", catalog.Pager, true},
		{"pa token mid-name", "warehouse pa system", catalog.Pager, true},
		{"pa inside a word is not a token", "spade handle", "", false},

		// Whole-word tier.
		{"db whole word", "Front DB", catalog.DoorBell, true},
		{"db inside a word misses", "dbx unit", "", false},
		{"2n whole word", "2N entry panel", catalog.DoorBell, true},
		{"horn", "Loading dock horn", catalog.Pager, true},
		{"koonloon", "koonloon lobby", catalog.ATAPublic, true},
		{"fpbx", "fpbx trunk A", catalog.SIPTrunk, true},

		// Whole-word tier runs before the substring tier.
		{"app beats mobile substring", "Mobile App", "Smartphone App", true},

		// Substring tier, first match wins in list order.
		{"door before speaker", "door speaker", catalog.DoorBell, true},
		{"speaker alone", "Breakroom Speaker", catalog.Pager, true},
		{"elevator", "Elevator phone", catalog.ATADoorbell, true},
		{"public", "Public hallway line", catalog.ATAPublic, true},
		{"adapter", "Fax adapter", catalog.ATAAnalog, true},
		{"zoiper", "Zoiper on reception PC", "Desktop Softphone", true},
		{"groundwire", "Groundwire on cell", "Smartphone App", true},
		{"case insensitive", "DOORBELL North", catalog.DoorBell, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NameHint(tt.deviceName)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
