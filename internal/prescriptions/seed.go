package prescriptions

import "time"

// Seed returns the recent-analyses fixture the dashboard starts with.
func Seed() []Analysis {
	return []Analysis{
		{
			AnalysisResult: AnalysisResult{
				PatientName: "Priya Sharma",
				Therapies: []Therapy{
					{Name: "Abhyanga massage", Duration: "7 days"},
					{Name: "Shirodhara therapy", Duration: "3 sessions"},
					{Name: "Herbal steam bath", Duration: "daily"},
					{Name: "Meditation guidance", Duration: "20 mins/day"},
				},
				DosageAndTiming: []TimingDetail{
					{Period: "Morning", Instruction: "6-8 AM"},
					{Period: "Treatments", Instruction: "Pre-meal"},
					{Period: "Rest period", Instruction: "30 mins post-therapy"},
					{Period: "Diet", Instruction: "Vata pacifying foods"},
				},
			},
			AnalyzedAt: time.Now().Add(-2 * time.Hour),
			Accuracy:   99,
		},
	}
}
