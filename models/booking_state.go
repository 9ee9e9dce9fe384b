package models

// FlowStep indexes the booking wizard steps.
type FlowStep int

const (
	StepPathSelect      FlowStep = 0
	StepConfigure       FlowStep = 1
	StepScheduleContact FlowStep = 2
	StepSubmitting      FlowStep = 3
	StepConfirmed       FlowStep = 4
)

// BookingState is the full serialized wizard state, keyed by a
// session-scoped flow ID. It holds raw selections only; the quote is
// derived on read.
type BookingState struct {
	FlowID  string                  `json:"flowId"`
	Path    BookingPath             `json:"bookingPath,omitempty"`
	Step    FlowStep                `json:"step"`
	Session SessionSelection        `json:"session"`
	Post    PostProductionSelection `json:"postProduction"`
	Deliv   DeliverablesSelection   `json:"deliverables"`
	Rush    RushOption              `json:"rushOption"`
	Contact ContactInfo             `json:"contactInfo"`
	Inquiry ProjectInquiry          `json:"projectInquiry"`

	// Set while a one-hour selection awaits the rental confirmation.
	PendingRentalConfirm bool `json:"pendingRentalConfirm,omitempty"`
}

// NewBookingState returns the state a freshly opened wizard starts from.
func NewBookingState(flowID string) BookingState {
	return BookingState{
		FlowID: flowID,
		Step:   StepPathSelect,
		Session: SessionSelection{
			Hours:           2,
			IncludeEngineer: true,
		},
		Rush: RushNone,
	}
}
