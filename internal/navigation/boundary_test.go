package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasure(t *testing.T) {
	tests := []struct {
		name string
		c    ScrollContainer
		want Boundary
	}{
		{"nil container", nil, Boundary{AtTop: true, AtBottom: true, Fraction: 1}},
		{"fits", &fakeContainer{top: 0, height: 400, client: 500}, Boundary{AtTop: true, AtBottom: true, Fraction: 1}},
		{"top of long page", &fakeContainer{top: 0, height: 1000, client: 500}, Boundary{Scrollable: true, AtTop: true, Fraction: 0.5}},
		{"middle", &fakeContainer{top: 250, height: 1000, client: 500}, Boundary{Scrollable: true, Fraction: 0.75}},
		{"bottom", &fakeContainer{top: 500, height: 1000, client: 500}, Boundary{Scrollable: true, AtBottom: true, Fraction: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Measure(tt.c, DefaultSlack, DefaultTolerance))
		})
	}
}

func TestExhaustedPolicies(t *testing.T) {
	mid := Measure(&fakeContainer{top: 360, height: 1000, client: 500}, DefaultSlack, DefaultTolerance)
	assert.False(t, mid.Exhausted(PolicyStrict, DefaultLenientThreshold))
	assert.True(t, mid.Exhausted(PolicyLenient, DefaultLenientThreshold))

	fits := Measure(nil, DefaultSlack, DefaultTolerance)
	assert.True(t, fits.Exhausted(PolicyStrict, DefaultLenientThreshold))
}
