package entity

import (
	"errors"

	"github.com/google/uuid"
)

// ErrActorExists is returned when a second actor is spawned into a session.
var ErrActorExists = errors.New("entity: an actor is already spawned")

// Registry holds the session's single actor and the visibility of every
// presentation entity.
type Registry struct {
	actor   *Actor
	visible map[uuid.UUID]bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{visible: make(map[uuid.UUID]bool)}
}

// Spawn adds the actor and makes it and its children visible.
// Only one actor may exist at a time.
func (r *Registry) Spawn(a *Actor) error {
	if r.actor != nil {
		return ErrActorExists
	}
	r.actor = a
	r.SetActorVisible(true)
	return nil
}

// HasActor returns true if an actor is spawned.
func (r *Registry) HasActor() bool {
	return r.actor != nil
}

// Actor returns the spawned actor. It panics when there is none: every
// caller runs while the overworld is active, where an actor always exists.
func (r *Registry) Actor() *Actor {
	if r.actor == nil {
		panic("entity: no actor spawned")
	}
	return r.actor
}

// Despawn removes the actor and forgets its visibility entries.
func (r *Registry) Despawn() {
	if r.actor == nil {
		return
	}
	delete(r.visible, r.actor.ID)
	for _, c := range r.actor.Children {
		delete(r.visible, c.ID)
	}
	r.actor = nil
}

// SetVisible sets the visibility of one presentation entity.
func (r *Registry) SetVisible(id uuid.UUID, visible bool) {
	r.visible[id] = visible
}

// Visible returns whether a presentation entity is shown.
func (r *Registry) Visible(id uuid.UUID) bool {
	return r.visible[id]
}

// SetActorVisible shows or hides the actor, then each child in order.
func (r *Registry) SetActorVisible(visible bool) {
	a := r.Actor()
	r.SetVisible(a.ID, visible)
	for _, c := range a.Children {
		r.SetVisible(c.ID, visible)
	}
}
