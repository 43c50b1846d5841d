package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		raw  string
		want Platform
	}{
		{"kazoo", PlatformKazoo},
		{"skyswitch", PlatformSkySwitch},
		{"SkySwitch", PlatformSkySwitch},
		{"  skyswitch  ", PlatformSkySwitch},
		{"", PlatformKazoo},
		{"anything else", PlatformKazoo},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePlatform(tt.raw))
		})
	}
}

func TestParseFamily(t *testing.T) {
	fam, err := ParseFamily("door bell")
	require.NoError(t, err)
	assert.Equal(t, FamilyDoorBell, fam)

	fam, err = ParseFamily("ATA SIP ACCOUNT")
	require.NoError(t, err)
	assert.Equal(t, FamilyATA, fam)

	_, err = ParseFamily("toaster")
	assert.Error(t, err)
}

func TestFamiliesComplete(t *testing.T) {
	assert.Len(t, Families(), 8)
}
