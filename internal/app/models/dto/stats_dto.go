package dto

// StatsResponse represents the admin dashboard totals
type StatsResponse struct {
	TotalUsers              int64            `json:"totalUsers"`
	TotalAssessmentResults  int64            `json:"totalAssessmentResults"`
	TotalEnrollments        int64            `json:"totalEnrollments"`
	RevenueCents            int64            `json:"revenueCents"`
	TotalWaitlistEntries    int64            `json:"totalWaitlistEntries"`
	ActiveCoupons           int64            `json:"activeCoupons"`
	CreditsOutstandingCents int64            `json:"creditsOutstandingCents"`
	DominantElementCounts   map[string]int64 `json:"dominantElementCounts"`
}
