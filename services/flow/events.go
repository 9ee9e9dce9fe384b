package flow

import (
	"context"

	"alliancewav/models"
)

// Event is a single wizard mutation, dispatched by action name. Only the
// fields relevant to the action are read.
type Event struct {
	Action  string                 `json:"action"`
	Choice  PathChoice             `json:"choice,omitempty"`
	Hours   int                    `json:"hours,omitempty"`
	On      bool                   `json:"on,omitempty"`
	Rush    models.RushOption      `json:"rush,omitempty"`
	Contact *models.ContactInfo    `json:"contact,omitempty"`
	Inquiry *models.ProjectInquiry `json:"inquiry,omitempty"`
}

// ApplyEvent dispatches a mutation event to the controller.
func (c *Controller) ApplyEvent(ctx context.Context, ev Event) error {
	switch ev.Action {
	case "choosePath":
		return c.ChoosePath(ctx, ev.Choice)
	case "setHours":
		return c.SetSessionHours(ctx, ev.Hours)
	case "confirmRental":
		return c.ConfirmRental(ctx)
	case "keepRecording":
		return c.KeepRecording(ctx)
	case "setEngineer":
		return c.SetIncludeEngineer(ctx, ev.On)
	case "setProducer":
		return c.SetIncludeProducer(ctx, ev.On)
	case "setProducerHours":
		return c.SetProducerHours(ctx, ev.Hours)
	case "setMixing":
		return c.SetMixing(ctx, ev.On)
	case "setMastering":
		return c.SetMastering(ctx, ev.On)
	case "setBundle":
		return c.SetMixMasterBundle(ctx, ev.On)
	case "setVocalTuning":
		return c.SetVocalTuning(ctx, ev.On)
	case "setVocalEditing":
		return c.SetVocalEditing(ctx, ev.On)
	case "setAltVersions":
		return c.SetAltVersions(ctx, ev.On)
	case "setStemsExport":
		return c.SetStemsExport(ctx, ev.On)
	case "setMultitrack":
		return c.SetMultitrackExport(ctx, ev.On)
	case "setUsbMedia":
		return c.SetUSBMedia(ctx, ev.On)
	case "setRush":
		return c.SetRush(ctx, ev.Rush)
	case "setContact":
		if ev.Contact == nil {
			return ErrUnknownAction
		}
		return c.SetContact(ctx, *ev.Contact)
	case "setInquiry":
		if ev.Inquiry == nil {
			return ErrUnknownAction
		}
		return c.SetInquiry(ctx, *ev.Inquiry)
	case "advance":
		return c.Advance(ctx)
	case "back":
		return c.Back(ctx)
	default:
		return ErrUnknownAction
	}
}
