package wizard

// Booking flow steps. Step 1 collects the service, preferred date and
// time of day; step 2 picks a practitioner; step 3 collects contact
// details and carries the terminal confirmation.
const (
	StepSchedule     = 1
	StepPractitioner = 2
	StepDetails      = 3
)

// Field keys collected by the booking flow.
const (
	FieldService      = "service"
	FieldDate         = "date"
	FieldTimeSlot     = "timeSlot"
	FieldPractitioner = "practitionerId"
	FieldName         = "name"
	FieldEmail        = "email"
	FieldPhone        = "phone"
)

// NewBooking creates the clinic booking wizard. onComplete receives
// the confirmed booking data.
func NewBooking(onComplete func(StepData)) *Wizard {
	return New(Config{
		Steps: []Step{
			{
				Name: "schedule",
				Gate: func(d StepData) bool {
					return d.Get(StepSchedule, FieldService) != "" &&
						d.Get(StepSchedule, FieldDate) != "" &&
						d.Get(StepSchedule, FieldTimeSlot) != ""
				},
			},
			{
				Name: "practitioner",
				Gate: func(d StepData) bool {
					return d.Get(StepPractitioner, FieldPractitioner) != ""
				},
			},
			{
				Name: "details",
				Gate: func(d StepData) bool {
					return d.Get(StepDetails, FieldName) != "" &&
						d.Get(StepDetails, FieldEmail) != "" &&
						d.Get(StepDetails, FieldPhone) != ""
				},
			},
		},
		ProviderStep: StepPractitioner,
		ProviderJump: StepDetails,
		ProviderKey:  FieldPractitioner,
		OnComplete:   onComplete,
	})
}
