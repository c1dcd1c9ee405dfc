package entities

// ConversationState is the caller-held session state: which service and slot
// the user has picked so far, and where the current booking attempt stands.
// The gateways themselves are stateless; this value is threaded through the
// chat orchestration and replaced, never mutated.
type ConversationState struct {
	service *Service
	slot    *Slot
	attempt AttemptState
}

// NewConversationState starts a conversation with nothing selected
func NewConversationState() ConversationState {
	return ConversationState{attempt: AttemptPresented}
}

// WithService returns a copy with the selected service set
func (c ConversationState) WithService(s Service) ConversationState {
	c.service = &s
	return c
}

// WithSlot returns a copy with the selected slot set
func (c ConversationState) WithSlot(slot Slot) ConversationState {
	c.slot = &slot
	return c
}

// WithAttempt returns a copy advanced to next, and whether the transition
// was legal. Illegal transitions leave the state unchanged.
func (c ConversationState) WithAttempt(next AttemptState) (ConversationState, bool) {
	if !c.attempt.CanTransition(next) {
		return c, false
	}
	c.attempt = next
	return c, true
}

// SelectedService returns the picked service, or nil
func (c ConversationState) SelectedService() *Service {
	return c.service
}

// SelectedSlot returns the picked slot, or nil
func (c ConversationState) SelectedSlot() *Slot {
	return c.slot
}

// Attempt returns the current booking attempt state
func (c ConversationState) Attempt() AttemptState {
	return c.attempt
}
