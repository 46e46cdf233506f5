package engine

import (
	"fmt"

	"github.com/piwi3910/ClosetCut/internal/model"
)

// widthTolerance is the slack allowed when summing resolved widths against
// the available span, in inches.
const widthTolerance = 0.01

// FitError reports a fatal section-width constraint violation: explicit
// widths that exceed the available span, unclaimed space under the error
// slack policy, or a min/max violation after fill distribution.
type FitError struct {
	Section int // index into the request list, -1 when not tied to one request
	Msg     string
}

func (e *FitError) Error() string {
	if e.Section < 0 {
		return "fit: " + e.Msg
	}
	return fmt.Sprintf("fit: section %d: %s", e.Section, e.Msg)
}

// ResolveWidths distributes availableWidth across the requests. Explicit
// widths are taken as-is; what remains after explicit widths and dividers
// is shared equally among fill requests. One divider sits between every
// adjacent pair.
//
// The returned slack is non-zero only when there are no fill requests,
// space is left over, and the policy is SlackWarn; under SlackError that
// case is a *FitError. Every resolved width is checked against the
// request's min/max, with the hard 6" floor applied.
func ResolveWidths(specs []model.SectionRequest, availableWidth, dividerThickness float64, policy model.SlackPolicy) ([]float64, float64, error) {
	if len(specs) == 0 {
		return nil, 0, nil
	}

	dividerTotal := float64(len(specs)-1) * dividerThickness
	explicitSum := 0.0
	fillCount := 0
	for _, s := range specs {
		if s.Fill {
			fillCount++
		} else {
			explicitSum += s.Width
		}
	}

	remaining := availableWidth - explicitSum - dividerTotal
	if remaining < -widthTolerance {
		return nil, 0, &FitError{Section: -1, Msg: fmt.Sprintf(
			"explicit widths (%.2f\") plus dividers (%.2f\") exceed available %.2f\"",
			explicitSum, dividerTotal, availableWidth)}
	}

	slack := 0.0
	fillWidth := 0.0
	if fillCount == 0 {
		if remaining > widthTolerance {
			if policy != model.SlackWarn {
				return nil, 0, &FitError{Section: -1, Msg: fmt.Sprintf(
					"%.2f\" unallocated with no fill section", remaining)}
			}
			slack = remaining
		}
	} else {
		fillWidth = remaining / float64(fillCount)
	}

	widths := make([]float64, len(specs))
	for i, s := range specs {
		w := s.Width
		if s.Fill {
			w = fillWidth
		}
		if w < s.EffectiveMinWidth()-widthTolerance {
			return nil, 0, &FitError{Section: i, Msg: fmt.Sprintf(
				"resolved width %.2f\" below minimum %.2f\"", w, s.EffectiveMinWidth())}
		}
		if s.MaxWidth > 0 && w > s.MaxWidth+widthTolerance {
			return nil, 0, &FitError{Section: i, Msg: fmt.Sprintf(
				"resolved width %.2f\" above maximum %.2f\"", w, s.MaxWidth)}
		}
		widths[i] = w
	}
	return widths, slack, nil
}
