// Package catalog holds the clinic's fixture data: services,
// practitioners, time slots, and the dashboard payloads. These are the
// prototype's mock tables, not computed artifacts.
package catalog

// Practitioner is a bookable clinician.
type Practitioner struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Specialty     string  `json:"specialty"`
	Experience    int     `json:"experience"`
	Rating        float64 `json:"rating"`
	Image         string  `json:"image"`
	NextAvailable string  `json:"nextAvailable"`
}

// Services the clinic offers for booking.
var Services = []string{
	"Initial Consultation",
	"Abhyanga Massage",
	"Shirodhara Therapy",
	"Panchakarma Detox",
	"Herbal Steam Bath",
	"Nasya Therapy",
}

// TimeSlots are the bookable parts of the day.
var TimeSlots = []string{
	"Morning (9 AM - 12 PM)",
	"Afternoon (12 PM - 5 PM)",
	"Evening (5 PM - 8 PM)",
}

// Practitioners available in the booking flow.
var Practitioners = []Practitioner{
	{
		ID:            "1",
		Name:          "Dr. Maya Sharma",
		Specialty:     "Panchakarma & Stress Management",
		Experience:    15,
		Rating:        4.9,
		NextAvailable: "10:30 AM",
	},
	{
		ID:            "2",
		Name:          "Dr. Rajesh Patel",
		Specialty:     "Digestive Disorders & Detox",
		Experience:    12,
		Rating:        4.8,
		NextAvailable: "2:00 PM",
	},
	{
		ID:            "3",
		Name:          "Dr. Priya Nair",
		Specialty:     "Women's Health & Fertility",
		Experience:    18,
		Rating:        4.9,
		NextAvailable: "11:15 AM",
	},
}

// FindPractitioner returns the practitioner with the given id, or nil.
func FindPractitioner(id string) *Practitioner {
	for i := range Practitioners {
		if Practitioners[i].ID == id {
			return &Practitioners[i]
		}
	}
	return nil
}
