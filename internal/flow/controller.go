// Package flow drives one session's check-in through its screens:
// Welcome, Mood, Comfort and Results.
package flow

import (
	"context"
	"fmt"
	"sync"

	"github.com/blaisecz/comfort-census/internal/domain"
	"github.com/blaisecz/comfort-census/internal/langfuse"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Step is a screen of the check-in flow.
type Step string

const (
	StepWelcome Step = "welcome"
	StepMood    Step = "mood"
	StepComfort Step = "comfort"
	StepResults Step = "results"
)

// PersistenceNotice is shown on Results when the check-in could not be saved.
const PersistenceNotice = "We couldn't save your check-in, but your comfort prescription is ready."

// Prescriber acquires a prescription for a completed selection.
type Prescriber interface {
	Prescribe(ctx context.Context, mood domain.MoodState, comfort domain.ComfortType) (*domain.Prescription, error)
}

// Recorder persists a completed check-in.
type Recorder interface {
	Record(ctx context.Context, sessionID string, mood domain.MoodState, comfort domain.ComfortType) (*domain.CheckIn, error)
}

// View is a snapshot of a Controller.
// @Description Current state of a check-in session.
type View struct {
	SessionID       string                    `json:"session_id" example:"session_1712345678_ab12cd34e"`
	Step            Step                      `json:"step" example:"comfort" enums:"welcome,mood,comfort,results"`
	SelectedMood    domain.MoodState          `json:"selected_mood,omitempty" example:"tired"`
	SelectedComfort domain.ComfortType        `json:"selected_comfort,omitempty" example:"stillness"`
	Recommendation  *domain.Recommendation    `json:"recommendation,omitempty"`
	Source          domain.PrescriptionSource `json:"source,omitempty" example:"ai" enums:"ai,static"`
	TraceID         string                    `json:"trace_id,omitempty"`
	// Non-blocking message, set when the check-in could not be saved
	Notice     string `json:"notice,omitempty"`
	InProgress bool   `json:"in_progress" example:"false"`
}

// Controller is the check-in state machine of a single session. It is safe
// for concurrent use; a submission in flight blocks every other transition.
type Controller struct {
	sessionID  string
	prescriber Prescriber
	recorder   Recorder

	mu         sync.Mutex
	step       Step
	mood       domain.MoodState
	comfort    domain.ComfortType
	result     *domain.Prescription
	notice     string
	inProgress bool
}

// NewController returns a controller at the Welcome step.
func NewController(sessionID string, prescriber Prescriber, recorder Recorder) *Controller {
	return &Controller{
		sessionID:  sessionID,
		prescriber: prescriber,
		recorder:   recorder,
		step:       StepWelcome,
	}
}

func (c *Controller) SessionID() string {
	return c.sessionID
}

// View returns the current state.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

// Start moves Welcome to Mood.
func (c *Controller) Start() (View, error) {
	return c.transition(func() error {
		if err := c.expect(StepWelcome); err != nil {
			return err
		}
		c.step = StepMood
		return nil
	})
}

// SelectMood records the mood on the Mood step.
func (c *Controller) SelectMood(mood domain.MoodState) (View, error) {
	return c.transition(func() error {
		if err := c.expect(StepMood); err != nil {
			return err
		}
		if !mood.Valid() {
			return &domain.InputError{Field: "mood", Reason: "must be one of energized, calm, neutral, tired"}
		}
		c.mood = mood
		return nil
	})
}

// Continue moves Mood to Comfort once a mood is selected.
func (c *Controller) Continue() (View, error) {
	return c.transition(func() error {
		if err := c.expect(StepMood); err != nil {
			return err
		}
		if c.mood == "" {
			return fmt.Errorf("%w: select a mood first", domain.ErrInvalidTransition)
		}
		c.step = StepComfort
		return nil
	})
}

// SelectComfort records the comfort on the Comfort step.
func (c *Controller) SelectComfort(comfort domain.ComfortType) (View, error) {
	return c.transition(func() error {
		if err := c.expect(StepComfort); err != nil {
			return err
		}
		if !comfort.Valid() {
			return &domain.InputError{Field: "comfort", Reason: "must be one of warmth, stillness, distraction"}
		}
		c.comfort = comfort
		return nil
	})
}

// Back moves Comfort to Mood. Selections are kept.
func (c *Controller) Back() (View, error) {
	return c.transition(func() error {
		if err := c.expect(StepComfort); err != nil {
			return err
		}
		c.step = StepMood
		return nil
	})
}

// StartOver moves Results to Welcome and forgets the selection and result.
func (c *Controller) StartOver() (View, error) {
	return c.transition(func() error {
		if err := c.expect(StepResults); err != nil {
			return err
		}
		c.step = StepWelcome
		c.mood = ""
		c.comfort = ""
		c.result = nil
		c.notice = ""
		return nil
	})
}

// Submit acquires a prescription and records the check-in concurrently, then
// moves Comfort to Results. A recording failure only sets the notice. The
// step stays at Comfort when no prescription could be obtained at all, and a
// record still in flight is then cancelled. A record that already committed
// is not undone.
func (c *Controller) Submit(ctx context.Context) (View, error) {
	c.mu.Lock()
	if c.inProgress {
		c.mu.Unlock()
		return View{}, domain.ErrSubmissionInProgress
	}
	if err := c.expect(StepComfort); err != nil {
		c.mu.Unlock()
		return View{}, err
	}
	if c.mood == "" || c.comfort == "" {
		c.mu.Unlock()
		return View{}, fmt.Errorf("%w: select a mood and a comfort first", domain.ErrInvalidTransition)
	}
	mood, comfort := c.mood, c.comfort
	c.inProgress = true
	c.mu.Unlock()

	ctx = langfuse.WithSession(ctx, c.sessionID)

	// The check-in outlives a client that hangs up mid-request, but not a
	// failed prescription: the step stays at Comfort and a retry records again.
	recordCtx, cancelRecord := context.WithCancel(context.WithoutCancel(ctx))
	defer cancelRecord()

	var (
		result     *domain.Prescription
		persistErr error
		g          errgroup.Group
	)
	g.Go(func() error {
		p, err := c.prescriber.Prescribe(ctx, mood, comfort)
		if err != nil {
			cancelRecord()
			return err
		}
		result = p
		return nil
	})
	g.Go(func() error {
		_, persistErr = c.recorder.Record(recordCtx, c.sessionID, mood, comfort)
		return nil
	})
	err := g.Wait()

	if persistErr != nil {
		log.Error().Err(persistErr).Str("session_id", c.sessionID).Msg("[flow] check-in not recorded")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inProgress = false

	if err != nil {
		return View{}, err
	}

	c.step = StepResults
	c.result = result
	c.notice = ""
	if persistErr != nil {
		c.notice = PersistenceNotice
	}
	return c.viewLocked(), nil
}

// transition applies fn under the lock unless a submission is running.
func (c *Controller) transition(fn func() error) (View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inProgress {
		return View{}, domain.ErrSubmissionInProgress
	}
	if err := fn(); err != nil {
		return View{}, err
	}
	return c.viewLocked(), nil
}

func (c *Controller) expect(step Step) error {
	if c.step != step {
		return fmt.Errorf("%w: at %s, need %s", domain.ErrInvalidTransition, c.step, step)
	}
	return nil
}

func (c *Controller) viewLocked() View {
	v := View{
		SessionID:       c.sessionID,
		Step:            c.step,
		SelectedMood:    c.mood,
		SelectedComfort: c.comfort,
		Notice:          c.notice,
		InProgress:      c.inProgress,
	}
	if c.result != nil {
		rec := c.result.Recommendation.Clone()
		v.Recommendation = &rec
		v.Source = c.result.Source
		v.TraceID = c.result.TraceID
	}
	return v
}
