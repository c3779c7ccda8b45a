package connector

import (
	"fmt"
	"strings"
)

// StatusMessage builds the second/third status shapes spec.md §6.4
// mandates verbatim. When all three counts are zero it returns the
// no-rejection shape; otherwise it returns the rejection shape with
// "<n> busy"/"<n> incompatible"/"<n> stopped" joined by " and ", in that
// fixed order, omitting zero counts, and pluralizing the trailing
// "daemon(s)" when the total exceeds one.
func StatusMessage(id string, numBusy, numIncompatible, numStopped int) string {
	total := numBusy + numIncompatible + numStopped
	if total == 0 {
		return fmt.Sprintf("Starting new daemon %s (subsequent builds will be faster)...", id)
	}

	reasons := make([]string, 0, 3)
	if numBusy > 0 {
		reasons = append(reasons, fmt.Sprintf("%d busy", numBusy))
	}
	if numIncompatible > 0 {
		reasons = append(reasons, fmt.Sprintf("%d incompatible", numIncompatible))
	}
	if numStopped > 0 {
		reasons = append(reasons, fmt.Sprintf("%d stopped", numStopped))
	}

	plural := ""
	if total > 1 {
		plural = "s"
	}

	return fmt.Sprintf("Starting new daemon %s, %s daemon%s could not be reused, use --status for details",
		id, strings.Join(reasons, " and "), plural)
}
