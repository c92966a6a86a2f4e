package domain

// Stats holds aggregate post counters computed by the automation server.
// The client never recomputes them, apart from local ±1 optimistic deltas
// applied between full refreshes.
type Stats struct {
	Total     int `json:"total"`
	Approved  int `json:"approved"`
	Published int `json:"published"`
	Rejected  int `json:"rejected"`
	Pending   int `json:"pending"`
}

// ApprovalRate returns the approved/total percentage, 0 for empty stats
func (s Stats) ApprovalRate() int {
	if s.Total == 0 {
		return 0
	}
	return int(float64(s.Approved)/float64(s.Total)*100 + 0.5)
}

// PillarStat holds per-pillar performance counters
type PillarStat struct {
	TopicPillar  string  `json:"topic_pillar"`
	Total        int     `json:"total"`
	Approved     int     `json:"approved"`
	Rejected     int     `json:"rejected"`
	ApprovalRate float64 `json:"approval_rate_pct"`
}

// DayActivity is one bucket of the daily activity aggregation. Day is the
// local date key in 2006-01-02 form, same as the SQL date() bucket.
type DayActivity struct {
	Day       string `json:"day"`
	Generated int    `json:"generated"`
	Published int    `json:"published"`
	Rejected  int    `json:"rejected"`
}
