package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viewlang/core/element"
)

func TestNormalizeFoldsDashesAndUnderscores(t *testing.T) {
	assert.True(t, NormalizedEqual("line-height", "line_height"))
	assert.False(t, NormalizedEqual("line-height", "lineheight"))
}

func TestInterpolateGapsFillsEvenlySpacedStops(t *testing.T) {
	stops := []element.GradientStop{{Position: -1}, {Position: -1}, {Position: -1}}
	stops[0].Position = 0
	stops[2].Position = 1
	interpolateGaps(stops)
	assert.Equal(t, 0.5, stops[1].Position)
}

func TestTwoWayVisibilityOutcomeTable(t *testing.T) {
	assert.Equal(t, linkAccept, twoWayVisibilityOutcome(element.VisibilityInOut, element.VisibilityPrivate))
	assert.Equal(t, linkAcceptReadOnly, twoWayVisibilityOutcome(element.VisibilityInput, element.VisibilityInput))
	assert.Equal(t, linkAcceptReadOnly, twoWayVisibilityOutcome(element.VisibilityInput, element.VisibilityOutput))
	assert.Equal(t, linkReject, twoWayVisibilityOutcome(element.VisibilityInput, element.VisibilityPrivate))
}
