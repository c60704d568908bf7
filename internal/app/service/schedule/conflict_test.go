package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func clock(h, m int) datatypes.Time {
	return datatypes.NewTime(h, m, 0, 0)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     datatypes.Time
		want                           bool
	}{
		{"identical windows", clock(10, 0), clock(11, 0), clock(10, 0), clock(11, 0), true},
		{"partial overlap front", clock(10, 0), clock(11, 0), clock(10, 30), clock(11, 30), true},
		{"partial overlap back", clock(10, 30), clock(11, 30), clock(10, 0), clock(11, 0), true},
		{"containment", clock(9, 0), clock(12, 0), clock(10, 0), clock(11, 0), true},
		{"touching boundaries do not conflict", clock(9, 0), clock(10, 0), clock(10, 0), clock(11, 0), false},
		{"touching boundaries reversed", clock(10, 0), clock(11, 0), clock(9, 0), clock(10, 0), false},
		{"disjoint", clock(8, 0), clock(9, 0), clock(10, 0), clock(11, 0), false},
		{"one minute overlap", clock(9, 0), clock(10, 1), clock(10, 0), clock(11, 0), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
		})
	}
}
