package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/ClosetCut/internal/model"
)

func fixed(width float64) model.SectionRequest {
	return model.SectionRequest{ID: "s", Width: width, MinWidth: model.MinSectionWidth, HeightMode: model.HeightFull}
}

func fill() model.SectionRequest {
	s := fixed(0)
	s.Fill = true
	return s
}

func TestResolveWidthsThreeFills(t *testing.T) {
	// 72" span, 3 fill sections, two 0.75" dividers between them:
	// (72 - 1.5) / 3 = 23.5" each.
	specs := []model.SectionRequest{fill(), fill(), fill()}

	widths, slack, err := ResolveWidths(specs, 72, 0.75, model.SlackError)
	require.NoError(t, err)
	require.Len(t, widths, 3)
	for _, w := range widths {
		assert.InDelta(t, 23.5, w, 1e-9)
	}
	assert.Zero(t, slack)
}

func TestResolveWidthsMixedFixedAndFill(t *testing.T) {
	specs := []model.SectionRequest{fixed(24), fill(), fill()}

	widths, slack, err := ResolveWidths(specs, 72, 0.75, model.SlackError)
	require.NoError(t, err)
	// 72 - 24 - 2*0.75 = 46.5 shared by two fills.
	assert.InDelta(t, 24, widths[0], 1e-9)
	assert.InDelta(t, 23.25, widths[1], 1e-9)
	assert.InDelta(t, 23.25, widths[2], 1e-9)
	assert.Zero(t, slack)
}

func TestResolveWidthsExplicitOverflow(t *testing.T) {
	specs := []model.SectionRequest{fixed(40), fixed(40)}

	_, _, err := ResolveWidths(specs, 72, 0.75, model.SlackError)
	var fe *FitError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, -1, fe.Section)
}

func TestResolveWidthsSlackPolicy(t *testing.T) {
	specs := []model.SectionRequest{fixed(20), fixed(20)}

	// 72 - 40 - 0.75 = 31.25" unclaimed and nothing to absorb it.
	_, _, err := ResolveWidths(specs, 72, 0.75, model.SlackError)
	var fe *FitError
	require.ErrorAs(t, err, &fe)

	widths, slack, err := ResolveWidths(specs, 72, 0.75, model.SlackWarn)
	require.NoError(t, err)
	assert.InDelta(t, 20, widths[0], 1e-9)
	assert.InDelta(t, 31.25, slack, 1e-9)
}

func TestResolveWidthsExactFit(t *testing.T) {
	specs := []model.SectionRequest{fixed(20), fixed(20)}

	widths, slack, err := ResolveWidths(specs, 40.75, 0.75, model.SlackError)
	require.NoError(t, err)
	assert.InDelta(t, 20, widths[0], 1e-9)
	assert.InDelta(t, 20, widths[1], 1e-9)
	assert.Zero(t, slack)
}

func TestResolveWidthsFillBelowMinimum(t *testing.T) {
	// (12 - 0.75) / 2 = 5.625", under the 6" hard floor.
	specs := []model.SectionRequest{fill(), fill()}

	_, _, err := ResolveWidths(specs, 12, 0.75, model.SlackError)
	var fe *FitError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 0, fe.Section)
}

func TestResolveWidthsFillAboveMaximum(t *testing.T) {
	wide := fill()
	wide.MaxWidth = 30

	_, _, err := ResolveWidths([]model.SectionRequest{wide}, 40, 0.75, model.SlackError)
	var fe *FitError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 0, fe.Section)
}

func TestResolveWidthsEmpty(t *testing.T) {
	widths, slack, err := ResolveWidths(nil, 72, 0.75, model.SlackError)
	require.NoError(t, err)
	assert.Nil(t, widths)
	assert.Zero(t, slack)
}
