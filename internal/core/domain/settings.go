package domain

import (
	"time"

	"github.com/google/uuid"
)

// CreatorSettings is per-company recovery campaign configuration.
// The core consumes these settings but does not own their editing surface.
type CreatorSettings struct {
	CompanyID                uuid.UUID `json:"company_id"`
	EnablePush               bool      `json:"enable_push"`
	EnableDM                 bool      `json:"enable_dm"`
	IncentiveDays            int       `json:"incentive_days"`
	ReminderOffsetsDays      []int     `json:"reminder_offsets_days"` // Ordered ascending, e.g. [0,2,4]
	KPIAttributionWindowDays int       `json:"kpi_attribution_window_days"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// AnyChannelEnabled reports whether at least one notification channel is on.
func (s *CreatorSettings) AnyChannelEnabled() bool {
	return s.EnablePush || s.EnableDM
}

// LastOffsetDay returns the final reminder offset, or -1 when none are configured.
func (s *CreatorSettings) LastOffsetDay() int {
	if len(s.ReminderOffsetsDays) == 0 {
		return -1
	}
	return s.ReminderOffsetsDays[len(s.ReminderOffsetsDays)-1]
}
