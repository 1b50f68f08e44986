package isoduration

import (
	"testing"

	"github.com/stretchr/testify/assert" // Test assertions e.g. equality
)

func TestExtract(t *testing.T) {
	period := []byte{'Y', 'M', 'D'}
	clock := []byte{'H', 'M', 'S'}
	testCases := []struct {
		desc        string
		segment     string
		designators []byte
		want        map[byte]int
	}{
		{
			desc:        "all period designators",
			segment:     "1Y2M3D",
			designators: period,
			want:        map[byte]int{'Y': 1, 'M': 2, 'D': 3},
		},
		{
			desc:        "all clock designators",
			segment:     "6H15M30S",
			designators: clock,
			want:        map[byte]int{'H': 6, 'M': 15, 'S': 30},
		},
		{
			desc:        "empty segment",
			segment:     "",
			designators: period,
			want:        map[byte]int{},
		},
		{
			desc:        "subset of designators present",
			segment:     "3D",
			designators: period,
			want:        map[byte]int{'D': 3},
		},
		{
			desc:        "designator with no digits is skipped",
			segment:     "Y2M",
			designators: period,
			want:        map[byte]int{'M': 2},
		},
		{
			desc:        "empty trailing designator is skipped",
			segment:     "1HM",
			designators: clock,
			want:        map[byte]int{'H': 1},
		},
		{
			desc:        "unrequested designators are ignored",
			segment:     "1Y2M3D",
			designators: []byte{'W'},
			want:        map[byte]int{},
		},
		{
			desc:        "week from whole string",
			segment:     "P2W",
			designators: []byte{'W'},
			want:        map[byte]int{'W': 2},
		},
		{
			desc:        "multi-digit run parses in full",
			segment:     "100Y",
			designators: period,
			want:        map[byte]int{'Y': 100},
		},
		{
			desc:        "leading zeros",
			segment:     "007D",
			designators: period,
			want:        map[byte]int{'D': 7},
		},
		{
			desc:        "first occurrence wins",
			segment:     "1M2M",
			designators: clock,
			want:        map[byte]int{'M': 1},
		},
		{
			desc:        "digit run reset by unrequested letter",
			segment:     "12X3D",
			designators: period,
			want:        map[byte]int{'D': 3},
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			assert.Equal(t, tC.want, extract(tC.segment, tC.designators))
		})
	}
}

func TestExtract_overflow(t *testing.T) {
	// A run too large for an int is skipped, not truncated.
	got := extract("99999999999999999999D", []byte{'D'})
	assert.Empty(t, got)
}
