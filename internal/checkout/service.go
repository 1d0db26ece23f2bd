// Package checkout drives the order submission flow for a session: it
// validates the order form, prices the cart, and hands the finished order
// to the submission gateway exactly once per attempt.
package checkout

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"

	"zouqly-storefront/internal/domain"
	"zouqly-storefront/internal/pricing"
	"zouqly-storefront/internal/session"
)

// State is the checkout position of one session.
//
//	Editing -> Submitting -> Placed    (success, terminal)
//	                      -> Editing   (gateway failure, cart preserved)
type State string

const (
	StateEditing    State = "editing"
	StateSubmitting State = "submitting"
	StatePlaced     State = "placed"
)

type gateway interface {
	Submit(ctx context.Context, order domain.OrderRecord) error
}

type Service struct {
	gateway  gateway
	calc     *pricing.Calculator
	validate *validatorv10.Validate
	logger   *log.Logger
	now      func() time.Time

	mu     sync.Mutex
	states map[string]*sessionState
}

type sessionState struct {
	state   State
	lastErr string
}

func New(gw gateway, calc *pricing.Calculator, logger *log.Logger) *Service {
	return &Service{
		gateway:  gw,
		calc:     calc,
		validate: validatorv10.New(),
		logger:   logger,
		now:      time.Now,
		states:   make(map[string]*sessionState),
	}
}

// ValidationError reports the form fields that failed validation. The
// submit control stays enabled client-side only once these are resolved.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "invalid order form"
}

// Status is the checkout summary for a session: its state, the last
// submission error if any, and a quote for the requested tier.
type Status struct {
	State State         `json:"state"`
	Error string        `json:"error,omitempty"`
	Count int           `json:"count"`
	Quote pricing.Quote `json:"quote"`
}

// Status reports the session's checkout state plus a quote over the current
// cart. Tier may be empty; the quote is then not submittable.
func (s *Service) Status(sess *session.Session, tier domain.DeliveryTier) Status {
	sess.Lock()
	count := sess.Cart.Count()
	subtotal := sess.Cart.Subtotal()
	sess.Unlock()

	s.mu.Lock()
	st := s.stateLocked(sess.ID)
	out := Status{
		State: st.state,
		Error: st.lastErr,
		Count: count,
		Quote: s.calc.QuoteFor(subtotal, tier),
	}
	s.mu.Unlock()

	if count == 0 {
		out.Quote.Submittable = false
	}
	return out
}

// Submit runs one submission attempt for the session. Preconditions: valid
// form with a known delivery tier, non-empty cart, no submission already
// running, order not already placed. On gateway success the cart is cleared
// and the session is Placed for good; on gateway failure the cart is kept
// and the session returns to Editing with the error recorded.
func (s *Service) Submit(ctx context.Context, sess *session.Session, form domain.OrderForm) (*domain.OrderRecord, error) {
	if err := s.validate.Struct(form); err != nil {
		return nil, &ValidationError{Fields: fieldErrors(err)}
	}

	sess.Lock()
	lines := sess.Cart.Lines()
	subtotal := sess.Cart.Subtotal()
	sess.Unlock()

	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	quote := s.calc.QuoteFor(subtotal, form.Tier)
	if !quote.Submittable {
		return nil, &ValidationError{Fields: map[string]string{"location": "unknown delivery tier"}}
	}

	s.mu.Lock()
	st := s.stateLocked(sess.ID)
	switch st.state {
	case StatePlaced:
		s.mu.Unlock()
		return nil, domain.ErrOrderPlaced
	case StateSubmitting:
		s.mu.Unlock()
		return nil, domain.ErrSubmitInFlight
	}
	st.state = StateSubmitting
	st.lastErr = ""
	s.mu.Unlock()

	order := s.buildOrder(form, lines, quote)

	err := s.gateway.Submit(ctx, order)

	s.mu.Lock()
	if err != nil {
		st.state = StateEditing
		st.lastErr = err.Error()
		s.mu.Unlock()
		s.logger.Printf("order submission failed for session %s: %v", sess.ID, err)
		return nil, fmt.Errorf("submit order: %w", err)
	}
	st.state = StatePlaced
	s.mu.Unlock()

	sess.Lock()
	sess.Cart.Clear()
	sess.Unlock()

	s.logger.Printf("order placed for session %s, total %d", sess.ID, order.Total)
	return &order, nil
}

func (s *Service) buildOrder(form domain.OrderForm, lines []domain.CartLine, quote pricing.Quote) domain.OrderRecord {
	items := make([]domain.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, domain.OrderItem{
			Name:     l.Product.Name,
			Quantity: l.Quantity,
			Price:    l.Product.Price,
			Weight:   l.Product.Weight,
		})
	}
	return domain.OrderRecord{
		Form:           form,
		Items:          items,
		Subtotal:       quote.Subtotal,
		DeliveryCharge: quote.DeliveryCharge,
		Total:          quote.Total,
		PlacedAt:       s.now(),
	}
}

// stateLocked returns the session's checkout state, creating the Editing
// default on first touch. Caller holds s.mu.
func (s *Service) stateLocked(id string) *sessionState {
	st, ok := s.states[id]
	if !ok {
		st = &sessionState{state: StateEditing}
		s.states[id] = st
	}
	return st
}

func fieldErrors(err error) map[string]string {
	out := make(map[string]string)
	if ve, ok := err.(validatorv10.ValidationErrors); ok {
		for _, fe := range ve {
			out[fe.Field()] = fe.Tag()
		}
		return out
	}
	out["form"] = err.Error()
	return out
}
