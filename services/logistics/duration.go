package logistics

import (
	"regexp"
	"strconv"
	"strings"

	"sokoway/models"
)

// timeEstimatePattern accepts the narrow "N-M hours" / "N days" shape that
// partners type into the route form. Anything else is reported as
// unrecognized rather than guessed at.
var timeEstimatePattern = regexp.MustCompile(`(?i)(\d+)\s*-?\s*(\d+)?\s*(hour|day)`)

// ParseTimeEstimate converts a free-text delivery-time estimate such as
// "2-3 hours" or "1-2 days" into a structured range. The second value of
// the range is optional ("4 hours" yields min=max=4). The boolean reports
// whether the text was recognized.
func ParseTimeEstimate(estimate string) (models.TimeRange, bool) {
	m := timeEstimatePattern.FindStringSubmatch(estimate)
	if m == nil {
		return models.TimeRange{}, false
	}

	min, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return models.TimeRange{}, false
	}
	max := min
	if m[2] != "" {
		if max, err = strconv.ParseFloat(m[2], 64); err != nil {
			return models.TimeRange{}, false
		}
	}

	unit := models.TimeUnitHours
	if strings.EqualFold(m[3], "day") {
		unit = models.TimeUnitDays
	}

	return models.TimeRange{Min: min, Max: max, Unit: unit}, true
}
