package catalog

// ProgressRecord is the one shared shape for a patient's day-by-day
// treatment response. All three dashboards render the same record
// rather than three ad hoc ones.
type ProgressRecord struct {
	Date         string `json:"date"`
	Energy       int    `json:"energy"`
	Stress       int    `json:"stress"`
	BodyComfort  int    `json:"bodyComfort"`
	Overall      int    `json:"overall"`
	Treatment    string `json:"treatment"`
	Improvements string `json:"improvements,omitempty"`
}

// PatientSummary is a row in the doctor's patient list.
type PatientSummary struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Condition   string `json:"condition"`
	NextSession string `json:"nextSession"`
	Progress    int    `json:"progress"`
}

// ScheduleEntry is one appointment in a day's schedule.
type ScheduleEntry struct {
	Time      string `json:"time"`
	Patient   string `json:"patient"`
	Treatment string `json:"treatment"`
	Room      string `json:"room"`
}

// UpcomingSession is a patient's future booked treatment.
type UpcomingSession struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	Treatment string `json:"treatment"`
	Therapist string `json:"therapist"`
	Room      string `json:"room"`
}

// RoutineItem is one entry of a patient's daily plan.
type RoutineItem struct {
	Time      string `json:"time"`
	Activity  string `json:"activity"`
	Duration  string `json:"duration"`
	Completed bool   `json:"completed"`
}

// Stat is a headline dashboard figure.
type Stat struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change,omitempty"`
}

// DoctorDashboard is the payload behind the doctor view.
type DoctorDashboard struct {
	Stats          []Stat           `json:"stats"`
	RecentPatients []PatientSummary `json:"recentPatients"`
	TodaySchedule  []ScheduleEntry  `json:"todaySchedule"`
	Progress       []ProgressRecord `json:"progress"`
}

// PatientDashboard is the payload behind the patient view.
type PatientDashboard struct {
	Stats            []Stat            `json:"stats"`
	UpcomingSessions []UpcomingSession `json:"upcomingSessions"`
	DailyRoutines    []RoutineItem     `json:"dailyRoutines"`
	Progress         []ProgressRecord  `json:"progress"`
}

// TherapistDashboard is the payload behind the therapist view.
type TherapistDashboard struct {
	Stats         []Stat           `json:"stats"`
	TodaySchedule []ScheduleEntry  `json:"todaySchedule"`
	Progress      []ProgressRecord `json:"progress"`
}

var progressSeries = []ProgressRecord{
	{Date: "2024-01-08", Energy: 6, Stress: 7, BodyComfort: 5, Overall: 6, Treatment: "Abhyanga Massage", Improvements: "Feeling more relaxed after the session"},
	{Date: "2024-01-09", Energy: 7, Stress: 6, BodyComfort: 6, Overall: 7, Treatment: "Shirodhara", Improvements: "Better sleep quality"},
	{Date: "2024-01-10", Energy: 8, Stress: 5, BodyComfort: 7, Overall: 8, Treatment: "Herbal Steam Bath"},
	{Date: "2024-01-11", Energy: 8, Stress: 4, BodyComfort: 8, Overall: 8, Treatment: "Abhyanga Massage", Improvements: "Significant reduction in back pain"},
	{Date: "2024-01-12", Energy: 9, Stress: 3, BodyComfort: 9, Overall: 9, Treatment: "Abhyanga Massage", Improvements: "Feeling very energetic and positive"},
}

var todaySchedule = []ScheduleEntry{
	{Time: "09:00 AM", Patient: "Meera Gupta", Treatment: "Abhyanga", Room: "Room 1"},
	{Time: "10:30 AM", Patient: "Suresh Reddy", Treatment: "Shirodhara", Room: "Room 2"},
	{Time: "02:00 PM", Patient: "Kavya Nair", Treatment: "Panchakarma Consultation", Room: "Consultation"},
	{Time: "03:30 PM", Patient: "Arjun Das", Treatment: "Nasya", Room: "Room 3"},
}

// DoctorView returns the doctor dashboard fixture.
func DoctorView() DoctorDashboard {
	return DoctorDashboard{
		Stats: []Stat{
			{Title: "Total Patients", Value: "247", Change: "+12%"},
			{Title: "Active Treatments", Value: "45", Change: "+8%"},
			{Title: "AI Prescriptions", Value: "156", Change: "+23%"},
			{Title: "Success Rate", Value: "94%", Change: "+2%"},
		},
		RecentPatients: []PatientSummary{
			{ID: 1, Name: "Priya Sharma", Condition: "Stress Management", NextSession: "2024-01-15", Progress: 75},
			{ID: 2, Name: "Raj Patel", Condition: "Digestive Issues", NextSession: "2024-01-16", Progress: 60},
			{ID: 3, Name: "Anita Kumar", Condition: "Joint Pain", NextSession: "2024-01-17", Progress: 85},
			{ID: 4, Name: "Vikram Singh", Condition: "Insomnia", NextSession: "2024-01-18", Progress: 40},
		},
		TodaySchedule: todaySchedule,
		Progress:      progressSeries,
	}
}

// PatientView returns the patient dashboard fixture.
func PatientView() PatientDashboard {
	return PatientDashboard{
		Stats: []Stat{
			{Title: "Sessions Completed", Value: "8/12"},
			{Title: "Overall Progress", Value: "78%"},
			{Title: "Wellness Score", Value: "8.4/10"},
			{Title: "Days Active", Value: "24"},
		},
		UpcomingSessions: []UpcomingSession{
			{Date: "2024-01-15", Time: "09:00 AM", Treatment: "Abhyanga Massage", Therapist: "Maya Sharma", Room: "Room 1"},
			{Date: "2024-01-16", Time: "10:30 AM", Treatment: "Shirodhara", Therapist: "Raj Patel", Room: "Room 2"},
			{Date: "2024-01-18", Time: "02:00 PM", Treatment: "Herbal Steam Bath", Therapist: "Priya Nair", Room: "Room 3"},
		},
		DailyRoutines: []RoutineItem{
			{Time: "06:00 AM", Activity: "Morning Meditation", Duration: "20 mins", Completed: true},
			{Time: "07:30 AM", Activity: "Herbal Tea (Tulsi)", Duration: "5 mins", Completed: true},
			{Time: "09:00 AM", Activity: "Abhyanga Session", Duration: "60 mins", Completed: false},
			{Time: "12:00 PM", Activity: "Ayurvedic Lunch", Duration: "30 mins", Completed: false},
			{Time: "08:00 PM", Activity: "Evening Walk", Duration: "15 mins", Completed: false},
		},
		Progress: progressSeries,
	}
}

// TherapistView returns the therapist dashboard fixture.
func TherapistView() TherapistDashboard {
	return TherapistDashboard{
		Stats: []Stat{
			{Title: "Sessions Today", Value: "4"},
			{Title: "Patients This Week", Value: "18", Change: "+3"},
			{Title: "Avg Session Rating", Value: "4.8"},
			{Title: "Rooms In Use", Value: "3/4"},
		},
		TodaySchedule: todaySchedule,
		Progress:      progressSeries,
	}
}
