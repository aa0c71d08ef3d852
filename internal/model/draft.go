package model

import "time"

// Draft is uncommitted form state for a create or edit operation.
// EditingID is empty for a create draft.
type Draft struct {
	EditingID string
	EventCreate
}

// NewDraft returns the default form state at now.
func NewDraft(now time.Time) *Draft {
	return &Draft{
		EventCreate: EventCreate{
			Date:  now.Format(DateLayout),
			Time:  now.Format("15:04"),
			Color: ColorBlue,
		},
	}
}

func (d *Draft) SetTitle(v string)       { d.Title = v }
func (d *Draft) SetDate(v string)        { d.Date = v }
func (d *Draft) SetTime(v string)        { d.Time = v }
func (d *Draft) SetEmail(v string)       { d.Email = v }
func (d *Draft) SetColor(v Color)        { d.Color = v }
func (d *Draft) SetDescription(v string) { d.Description = v }

// DraftPatch is a partial draft update; nil fields are left untouched.
type DraftPatch struct {
	Title       *string
	Date        *string
	Time        *string
	Email       *string
	Color       *Color
	Description *string
}

func (d *Draft) Apply(p DraftPatch) {
	if p.Title != nil {
		d.SetTitle(*p.Title)
	}
	if p.Date != nil {
		d.SetDate(*p.Date)
	}
	if p.Time != nil {
		d.SetTime(*p.Time)
	}
	if p.Email != nil {
		d.SetEmail(*p.Email)
	}
	if p.Color != nil {
		d.SetColor(*p.Color)
	}
	if p.Description != nil {
		d.SetDescription(*p.Description)
	}
}
