package attendance

import (
	"encoding/json"
	"strings"
	"time"

	attendanceerrors "github.com/haiphamkd/quanlynhansu/internal/attendance/errors"
)

// Badge is the decoded content of a scanned or hand-typed staff badge.
// Extra carries any trailing lines (birth date, department, phone) that the
// newline layout may include; they are display-only.
type Badge struct {
	EmployeeID string
	FullName   string
	Extra      []string
}

// Three badge layouts are in circulation. They are tried in a fixed order and
// the first one whose shape matches decides the outcome: a string that looks
// like JSON but fails to decode is an error, it never falls through to the
// older layouts.
//
//  1. JSON object: {"id":"NV001","name":"Nguyễn Văn A"}
//  2. newline-delimited: id on line 1, full name on line 2
//  3. pipe-delimited (legacy): NV001|Nguyễn Văn A
func ParseBadge(raw string) (Badge, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Badge{}, attendanceerrors.ErrInvalidBadge
	}

	var badge Badge
	switch {
	case strings.HasPrefix(trimmed, "{"):
		var payload struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		}
		if err := json.Unmarshal([]byte(trimmed), &payload); err != nil {
			return Badge{}, attendanceerrors.ErrInvalidBadge
		}
		badge = Badge{EmployeeID: payload.ID, FullName: payload.Name}

	case strings.Contains(trimmed, "\n"):
		lines := strings.Split(trimmed, "\n")
		badge = Badge{EmployeeID: strings.TrimSpace(lines[0])}
		if len(lines) > 1 {
			badge.FullName = strings.TrimSpace(lines[1])
		}
		for _, l := range lines[2:] {
			badge.Extra = append(badge.Extra, strings.TrimSpace(l))
		}

	default:
		parts := strings.SplitN(trimmed, "|", 2)
		badge = Badge{EmployeeID: strings.TrimSpace(parts[0])}
		if len(parts) > 1 {
			badge.FullName = strings.TrimSpace(parts[1])
		}
	}

	if badge.EmployeeID == "" {
		return Badge{}, attendanceerrors.ErrInvalidBadge
	}
	return badge, nil
}

// DeriveShift maps the wall clock at scan time to a half-day shift. The shift
// always reflects "now", never the report date being viewed.
func DeriveShift(t time.Time) string {
	if t.Hour() < 12 {
		return ShiftMorning
	}
	return ShiftAfternoon
}
