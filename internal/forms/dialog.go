package forms

import "context"

type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// Dialog is the create/edit form holder: open/closed, mode, and the current
// field values. Submit validates first (no network call on failure), then runs
// the save. On success the dialog closes; on failure it stays open with the
// entered values intact so the user can correct and retry.
type Dialog[F any] struct {
	Form F

	mode Mode
	open bool
}

func OpenCreate[F any](defaults F) *Dialog[F] {
	return &Dialog[F]{Form: defaults, mode: ModeCreate, open: true}
}

func OpenEdit[F any](prefilled F) *Dialog[F] {
	return &Dialog[F]{Form: prefilled, mode: ModeEdit, open: true}
}

func (d *Dialog[F]) Open() bool {
	return d.open
}

func (d *Dialog[F]) Mode() Mode {
	return d.mode
}

func (d *Dialog[F]) Close() {
	d.open = false
}

func (d *Dialog[F]) Submit(ctx context.Context, save func(ctx context.Context, form F) error) error {
	if err := Check(d.Form); err != nil {
		return err
	}
	if err := save(ctx, d.Form); err != nil {
		return err
	}
	d.open = false
	return nil
}
