package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teklink/devid/internal/model"
)

func defaultTree(t *testing.T) *Tree {
	t.Helper()
	tree, err := NewTree(nil)
	require.NoError(t, err)
	return tree
}

func TestTreeLookup(t *testing.T) {
	tree := defaultTree(t)

	tests := []struct {
		name       string
		identifier string
		want       model.Family
		ok         bool
	}{
		{
			name:       "top level leaf resolves on first token",
			identifier: "Yealink SIP-T46S 66.84.0.15",
			want:       model.FamilyDeskphone,
			ok:         true,
		},
		{
			name:       "leaf wins without consuming remaining tokens",
			identifier: "akuvox r29 something else entirely",
			want:       model.FamilyDoorBell,
			ok:         true,
		},
		{
			name:       "two level walk",
			identifier: "Grandstream HT802 1.0.17.5",
			want:       model.FamilyATA,
			ok:         true,
		},
		{
			name:       "three level walk",
			identifier: "Cisco/CP-8841",
			want:       model.FamilyDeskphone,
			ok:         true,
		},
		{
			name:       "dotted tokens survive normalization",
			identifier: "ucsip r8.44.2236 iver60.65dbg",
			want:       model.FamilyPager,
			ok:         true,
		},
		{
			name:       "branch without enough tokens yields nothing",
			identifier: "grandstream",
			ok:         false,
		},
		{
			name:       "missing child aborts the walk",
			identifier: "grandstream unknownmodel",
			ok:         false,
		},
		{
			name:       "unknown first token",
			identifier: "mystery device 3000",
			ok:         false,
		},
		{
			name:       "empty identifier",
			identifier: "",
			ok:         false,
		},
		{
			name:       "separators only",
			identifier: "  __ --- ",
			ok:         false,
		},
		{
			name:       "case insensitive",
			identifier: "FANVIL X4U",
			want:       model.FamilyDeskphone,
			ok:         true,
		},
		{
			name:       "trunk identifier",
			identifier: "FPBX-16.0.40.7(18.13.0)",
			want:       model.FamilySIPTrunk,
			ok:         true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tree.Lookup(tt.identifier)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"splits on separators", "Bria Android 6.5", []string{"bria", "android", "6.5"}},
		{"keeps dots and colons", "sip:100@example", []string{"sip:100", "example"}},
		{"collapses runs", "a--b__c", []string{"a", "b", "c"}},
		{"empty", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenize(tt.in))
		})
	}
}

func TestTreeExtensions(t *testing.T) {
	t.Run("new top level entry", func(t *testing.T) {
		tree, err := NewTree([]model.Extension{
			{Path: []string{"snomd785"}, Family: model.FamilyDeskphone},
		})
		require.NoError(t, err)

		fam, ok := tree.Lookup("snomd785 10.1.46.16")
		assert.True(t, ok)
		assert.Equal(t, model.FamilyDeskphone, fam)
	})

	t.Run("deep path creates intermediate branches", func(t *testing.T) {
		tree, err := NewTree([]model.Extension{
			{Path: []string{"htek", "uc923", "v2"}, Family: model.FamilyDeskphone},
		})
		require.NoError(t, err)

		fam, ok := tree.Lookup("htek uc923 v2")
		assert.True(t, ok)
		assert.Equal(t, model.FamilyDeskphone, fam)

		// The intermediate branch is not itself a leaf.
		_, ok = tree.Lookup("htek uc923")
		assert.False(t, ok)
	})

	t.Run("extension overwrites existing leaf", func(t *testing.T) {
		tree, err := NewTree([]model.Extension{
			{Path: []string{"axis"}, Family: model.FamilyDoorBell},
		})
		require.NoError(t, err)

		fam, ok := tree.Lookup("axis c1310")
		assert.True(t, ok)
		assert.Equal(t, model.FamilyDoorBell, fam)
	})

	t.Run("path through existing leaf replaces it with a branch", func(t *testing.T) {
		tree, err := NewTree([]model.Extension{
			{Path: []string{"axis", "c1310"}, Family: model.FamilyPager},
		})
		require.NoError(t, err)

		// The old leaf value is gone; only the new deeper entry resolves.
		_, ok := tree.Lookup("axis")
		assert.False(t, ok)

		fam, ok := tree.Lookup("axis c1310")
		assert.True(t, ok)
		assert.Equal(t, model.FamilyPager, fam)
	})

	t.Run("extension tokens are lowercased", func(t *testing.T) {
		tree, err := NewTree([]model.Extension{
			{Path: []string{"Akuvox", "X912"}, Family: model.FamilyDoorBell},
		})
		require.NoError(t, err)

		fam, ok := tree.Lookup("akuvox x912")
		assert.True(t, ok)
		assert.Equal(t, model.FamilyDoorBell, fam)
	})

	t.Run("empty path is rejected", func(t *testing.T) {
		_, err := NewTree([]model.Extension{{Family: model.FamilyPager}})
		assert.Error(t, err)
	})

	t.Run("missing family is rejected", func(t *testing.T) {
		_, err := NewTree([]model.Extension{{Path: []string{"snom"}}})
		assert.Error(t, err)
	})
}

func TestNewTreeFromTableValidation(t *testing.T) {
	t.Run("node with neither value is rejected", func(t *testing.T) {
		_, err := NewTreeFromTable(map[string]TableNode{"bad": {}}, nil)
		assert.Error(t, err)
	})

	t.Run("node with both values is rejected", func(t *testing.T) {
		_, err := NewTreeFromTable(map[string]TableNode{
			"bad": {Family: model.FamilyPager, Children: map[string]TableNode{"x": leaf(model.FamilyPager)}},
		}, nil)
		assert.Error(t, err)
	})
}
