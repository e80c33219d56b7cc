package lineup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripSetMeta(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Fisher (Main Stage, 9PM)", "Fisher"},
		{"Charlotte de Witte", "Charlotte de Witte"},
		{"THE CHAINSMOKERS WITH MC RAGE", "THE CHAINSMOKERS"},
		{"Sub Focus (DJ Set) with MC ID", "Sub Focus"},
		{"Sub Focus with mc", "Sub Focus with mc"},
		{"Andy C (Live) (Sunday)", "Andy C"},
		{"Kaskade (Redux", "Kaskade (Redux"},
		{"(Sunrise Set)", ""},
		{"  Mau   P  ", "Mau P"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripSetMeta(tt.input))
		})
	}
}

func TestStripParentheticals(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"A (b) C", "A  C"},
		{"A (b (c) d)", "A  d)"},
		{"A (b", "A (b"},
		{"A ) b", "A ) b"},
		{"(x)(y)", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripParentheticals(tt.input))
		})
	}
}

func TestStripMCSuffix(t *testing.T) {
	assert.Equal(t, "Sub Focus", StripMCSuffix("Sub Focus With Mc Tempza"))
	assert.Equal(t, "Sub Focus", StripMCSuffix("Sub Focus   WITH   MC   ID"))
	assert.Equal(t, "Withmc", StripMCSuffix("Withmc"))
}

func TestStripLeadingArticle(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		changed  bool
	}{
		{"The Chainsmokers", "Chainsmokers", true},
		{"THE  CHAINSMOKERS", "CHAINSMOKERS", true},
		{"the martinez brothers", "martinez brothers", true},
		{"Theo Kottis", "Theo Kottis", false},
		{"The", "The", false},
		{"Chainsmokers", "Chainsmokers", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, changed := StripLeadingArticle(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.changed, changed)
		})
	}
}

func TestSplitCollaboration(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"Mau P B2B Chris Lake", []string{"Mau P", "Chris Lake"}},
		{"Mau P b2b Chris Lake", []string{"Mau P", "Chris Lake"}},
		{"Chris Lake x Chris Lorenzo", []string{"Chris Lake", "Chris Lorenzo"}},
		{"Skrillex vs. Alesso", []string{"Skrillex", "Alesso"}},
		{"Skrillex VS Alesso", []string{"Skrillex", "Alesso"}},
		{"Sub Focus and Wilkinson", []string{"Sub Focus", "Wilkinson"}},
		{"Sub Focus & Wilkinson", []string{"Sub Focus & Wilkinson"}},
		{"Fisher, Mau P", []string{"Fisher", "Mau P"}},
		{"Fisher/Mau P", []string{"Fisher", "Mau P"}},
		{"A b2b B b2b C", []string{"A", "B", "C"}},
		{"Alexander", []string{"Alexander"}},
		{"Xavier", []string{"Xavier"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitCollaboration(tt.input))
		})
	}
}
