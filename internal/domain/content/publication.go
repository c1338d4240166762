package content

import (
	"time"

	"helpcenter/internal/shared/biztime"
	"helpcenter/internal/shared/errors"
)

// Publishable is the status/publishedAt pair the lifecycle operates on.
// Implementations must store exactly what SetPublicationState receives.
type Publishable interface {
	Status() Status
	PublishedAt() *time.Time
	LastPublishedAt() *time.Time
	SetPublicationState(status Status, publishedAt *time.Time)
}

// Publication is embedded by every content entity to satisfy Publishable.
// lastPublishedAt survives unpublishing so a later publish can be stamped
// strictly after it.
type Publication struct {
	status          Status
	publishedAt     *time.Time
	lastPublishedAt *time.Time
}

func ReconstructPublication(status Status, publishedAt *time.Time) Publication {
	return ReconstructPublicationWithHistory(status, publishedAt, nil)
}

// ReconstructPublicationWithHistory also restores the most recent publish
// time, which may be set while the entity is not published.
func ReconstructPublicationWithHistory(status Status, publishedAt, lastPublishedAt *time.Time) Publication {
	p := Publication{status: status, publishedAt: publishedAt, lastPublishedAt: copyTime(lastPublishedAt)}
	p.remember(publishedAt)
	return p
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func (p *Publication) Status() Status {
	return p.status
}

func (p *Publication) PublishedAt() *time.Time {
	return copyTime(p.publishedAt)
}

func (p *Publication) LastPublishedAt() *time.Time {
	return copyTime(p.lastPublishedAt)
}

func (p *Publication) SetPublicationState(status Status, publishedAt *time.Time) {
	p.status = status
	p.publishedAt = publishedAt
	p.remember(publishedAt)
}

func (p *Publication) remember(at *time.Time) {
	if at != nil && (p.lastPublishedAt == nil || at.After(*p.lastPublishedAt)) {
		p.lastPublishedAt = copyTime(at)
	}
}

// PublicationTransition records one lifecycle step.
type PublicationTransition struct {
	From        Status
	To          Status
	PublishedAt *time.Time
}

// Changed reports whether the status moved.
func (t PublicationTransition) Changed() bool {
	return t.From != t.To
}

// PublicationPolicy is the DRAFT/PUBLISHED/ARCHIVED machine. publishedAt is
// non-nil exactly when the status is PUBLISHED after every operation.
type PublicationPolicy struct {
	now biztime.Clock
}

func NewPublicationPolicy(now biztime.Clock) *PublicationPolicy {
	if now == nil {
		now = biztime.SystemClock
	}
	return &PublicationPolicy{now: now}
}

// stamp returns the current time at millisecond precision, moved to 1ms
// after the entity's previous publish when the clock has not passed it.
func (p *PublicationPolicy) stamp(e Publishable) *time.Time {
	t := p.now().UTC().Truncate(time.Millisecond)
	if last := e.LastPublishedAt(); last != nil && !t.After(*last) {
		t = last.UTC().Truncate(time.Millisecond).Add(time.Millisecond)
	}
	return &t
}

func (p *PublicationPolicy) set(e Publishable, to Status, at *time.Time) PublicationTransition {
	from := e.Status()
	e.SetPublicationState(to, at)
	return PublicationTransition{From: from, To: to, PublishedAt: e.PublishedAt()}
}

// Initialize sets the creation state: the requested status or DRAFT.
func (p *PublicationPolicy) Initialize(e Publishable, requested *Status) PublicationTransition {
	to := StatusDraft
	if requested != nil {
		to = *requested
	}
	var at *time.Time
	if to.IsPublished() {
		at = p.stamp(e)
	}
	from := e.Status()
	e.SetPublicationState(to, at)
	return PublicationTransition{From: from, To: to, PublishedAt: e.PublishedAt()}
}

// Publish moves any state to PUBLISHED and always restamps publishedAt.
func (p *PublicationPolicy) Publish(e Publishable) PublicationTransition {
	return p.set(e, StatusPublished, p.stamp(e))
}

// Unpublish moves to DRAFT or ARCHIVED and clears publishedAt.
func (p *PublicationPolicy) Unpublish(e Publishable, target Status) (PublicationTransition, error) {
	if target != StatusDraft && target != StatusArchived {
		return PublicationTransition{}, errors.NewInvalidTransitionError(
			"unpublish target must be DRAFT or ARCHIVED", target.String())
	}
	return p.set(e, target, nil), nil
}

// Archive is the logical delete.
func (p *PublicationPolicy) Archive(e Publishable) PublicationTransition {
	return p.set(e, StatusArchived, nil)
}

// ApplyEdit handles a status carried by a content edit. A nil request keeps
// the state. Staying PUBLISHED keeps the original publishedAt.
func (p *PublicationPolicy) ApplyEdit(e Publishable, requested *Status) PublicationTransition {
	current := e.Status()
	if requested == nil {
		return PublicationTransition{From: current, To: current, PublishedAt: e.PublishedAt()}
	}

	if !requested.IsPublished() {
		return p.set(e, *requested, nil)
	}

	at := e.PublishedAt()
	if at == nil {
		at = p.stamp(e)
	}
	return p.set(e, StatusPublished, at)
}
