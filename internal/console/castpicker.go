package console

// castpicker.go backs the cast-assignment part of the drama form: a typeahead
// actor search against the server, decoupled from the selected-cast list,
// which is purely client-side until the drama form is submitted.

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"dramahub/internal/api"
	"dramahub/internal/models"
)

// typeaheadInterval spaces out search requests while the user is typing.
const typeaheadInterval = 300 * time.Millisecond

// ErrSearchSuperseded reports that newer input arrived while a search was
// waiting or in flight; its result must not be rendered.
var ErrSearchSuperseded = errors.New("search superseded by newer input")

// ActorSearchFunc runs one page of server-side actor search.
type ActorSearchFunc func(ctx context.Context, search string, page int) (api.Page[models.Actor], error)

type CastPicker struct {
	search   ActorSearchFunc
	notify   Notifier
	limiter  *rate.Limiter
	selected []models.CastMember

	mu        sync.Mutex
	searchGen uint64
}

func NewCastPicker(search ActorSearchFunc, notify Notifier) *CastPicker {
	return &CastPicker{
		search:  search,
		notify:  notify,
		limiter: rate.NewLimiter(rate.Every(typeaheadInterval), 1),
	}
}

// Search performs the debounced typeahead lookup. Each call supersedes any
// still-pending one: a lookup overtaken while waiting on the limiter or on the
// server returns ErrSearchSuperseded instead of a stale result.
func (p *CastPicker) Search(ctx context.Context, text string, page int) (api.Page[models.Actor], error) {
	gen := p.nextSearchGen()

	if err := p.limiter.Wait(ctx); err != nil {
		return api.Page[models.Actor]{}, err
	}
	if p.searchSuperseded(gen) {
		return api.Page[models.Actor]{}, ErrSearchSuperseded
	}

	result, err := p.search(ctx, text, page)
	if err != nil {
		return api.Page[models.Actor]{}, err
	}
	if p.searchSuperseded(gen) {
		return api.Page[models.Actor]{}, ErrSearchSuperseded
	}
	return result, nil
}

func (p *CastPicker) nextSearchGen() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.searchGen++
	return p.searchGen
}

func (p *CastPicker) searchSuperseded(gen uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return gen != p.searchGen
}

// Add appends an actor with the given role. An actor already on the list is
// rejected with a notification, not a silent no-op. Role must be main or
// support.
func (p *CastPicker) Add(actor models.Actor, role string) bool {
	if role != models.CastRoleMain && role != models.CastRoleSupport {
		p.notify.Error(fmt.Sprintf("invalid cast role %q: use %s or %s", role, models.CastRoleMain, models.CastRoleSupport))
		return false
	}
	for _, m := range p.selected {
		if m.ActorID == actor.ID {
			p.notify.Error(fmt.Sprintf("%s is already in the cast", actor.Name))
			return false
		}
	}
	p.selected = append(p.selected, models.CastMember{
		ActorID: actor.ID,
		Name:    actor.Name,
		Role:    role,
	})
	return true
}

// Remove drops one cast member. Client-side only; nothing is sent to the
// server until the drama form is submitted.
func (p *CastPicker) Remove(actorID int64) bool {
	for i, m := range p.selected {
		if m.ActorID == actorID {
			p.selected = append(p.selected[:i], p.selected[i+1:]...)
			return true
		}
	}
	return false
}

// Load seeds the selected list, e.g. from a drama being edited.
func (p *CastPicker) Load(cast []models.CastMember) {
	p.selected = append([]models.CastMember(nil), cast...)
}

func (p *CastPicker) Selected() []models.CastMember {
	return append([]models.CastMember(nil), p.selected...)
}

func (p *CastPicker) Len() int {
	return len(p.selected)
}
