package turns

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

var (
	ErrAlreadyActive  = errors.New("turn broadcaster already active")
	ErrNoParticipants = errors.New("turn broadcaster has no participants")
	ErrNeverStarted   = errors.New("turn broadcaster was never started")
)

// Phase is one slot of the repeating turn cycle
type Phase int

const (
	PhaseMain Phase = iota
	PhaseReaction
)

var phaseNames = map[Phase]string{
	PhaseMain:     "MAIN",
	PhaseReaction: "REACTION",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PHASE_%d", int(p))
}

// DefaultPhases is the two-phase cycle used by a two-team match
var DefaultPhases = []Phase{PhaseMain, PhaseReaction}

// Participant is anything that takes part in the turn cycle
type Participant interface {
	// ResponsePhase is the phase this participant acts in
	ResponsePhase() Phase
	// OnPhaseOpen is called when the participant's phase opens
	OnPhaseOpen(turn int)
	// IsReadyToAdvance reports whether the broadcaster may move past this participant
	IsReadyToAdvance() bool
	// OnInterrupted is called instead of a normal notification when the cycle is aborted
	OnInterrupted()
}

// Observer is told about cycle progress
type Observer interface {
	PhaseOpened(phase Phase, turn int)
	TurnEnded(turn int)
}

// Broadcaster drives the phase cycle. Each phase notifies its participants in
// registration order and is held open until all of them report ready.
//
// Broadcaster is driven from a single control flow and is not safe for
// concurrent use. Participants and observers may call Stop or Interrupt from
// inside their callbacks.
type Broadcaster struct {
	participants []Participant
	observers    []Observer
	phases       []Phase

	phaseIdx int
	turn     int
	active   bool
	// The interrupted phase had already finished, so Resume moves past it
	interruptedDone bool

	logger zerolog.Logger
}

// NewBroadcaster creates a stopped broadcaster cycling through phases.
// An empty phase list falls back to DefaultPhases.
func NewBroadcaster(logger zerolog.Logger, phases ...Phase) *Broadcaster {
	if len(phases) == 0 {
		phases = DefaultPhases
	}
	ps := make([]Phase, len(phases))
	copy(ps, phases)
	return &Broadcaster{
		phases: ps,
		logger: logger.With().Str("component", "TurnBroadcaster").Logger(),
	}
}

// Register adds a participant. Registering twice is a no-op.
func (b *Broadcaster) Register(p Participant) {
	if p == nil || b.indexOf(p) >= 0 {
		return
	}
	b.participants = append(b.participants, p)
	b.logger.Debug().
		Str("response_phase", p.ResponsePhase().String()).
		Int("participants", len(b.participants)).
		Msg("Participant registered")
}

// Unregister removes a participant. Unknown participants are ignored.
func (b *Broadcaster) Unregister(p Participant) {
	i := b.indexOf(p)
	if i < 0 {
		return
	}
	b.participants = append(b.participants[:i], b.participants[i+1:]...)
	b.logger.Debug().Int("participants", len(b.participants)).Msg("Participant unregistered")
}

// AddObserver subscribes o to phase and turn notifications
func (b *Broadcaster) AddObserver(o Observer) {
	if o != nil {
		b.observers = append(b.observers, o)
	}
}

func (b *Broadcaster) IsActive() bool        { return b.active }
func (b *Broadcaster) CurrentTurn() int      { return b.turn }
func (b *Broadcaster) CurrentPhase() Phase   { return b.phases[b.phaseIdx] }
func (b *Broadcaster) ParticipantCount() int { return len(b.participants) }

// Start opens the first phase of turn 1
func (b *Broadcaster) Start() error {
	if b.active {
		return ErrAlreadyActive
	}
	if len(b.participants) == 0 {
		b.logger.Warn().Msg("Cannot start turn cycle without participants")
		return ErrNoParticipants
	}

	b.turn = 1
	b.phaseIdx = 0
	b.active = true
	b.interruptedDone = false
	b.logger.Info().Int("participants", len(b.participants)).Msg("Turn cycle started")

	b.openPhase()
	return nil
}

// Stop halts the cycle without notifying participants
func (b *Broadcaster) Stop() {
	if !b.active {
		return
	}
	b.active = false
	b.logger.Info().
		Int("turn", b.turn).
		Str("phase", b.CurrentPhase().String()).
		Msg("Turn cycle stopped")
}

// Interrupt aborts the current phase: every participant gets OnInterrupted
// and the cycle stops. Resume reopens the same phase, unless every
// participant of it had already reported ready.
func (b *Broadcaster) Interrupt() {
	if !b.active {
		return
	}
	b.active = false
	b.interruptedDone = b.phaseComplete()
	for _, p := range b.snapshot() {
		p.OnInterrupted()
	}
	b.logger.Info().
		Int("turn", b.turn).
		Str("phase", b.CurrentPhase().String()).
		Msg("Turn cycle interrupted")
}

// Resume restarts a stopped cycle by reopening its current phase
func (b *Broadcaster) Resume() error {
	if b.active {
		return ErrAlreadyActive
	}
	if b.turn == 0 {
		return ErrNeverStarted
	}
	b.active = true
	b.logger.Info().
		Int("turn", b.turn).
		Bool("phase_done", b.interruptedDone).
		Msg("Turn cycle resumed")

	if b.interruptedDone {
		b.interruptedDone = false
		b.Advance()
		return nil
	}
	b.openPhase()
	return nil
}

// Reset returns the broadcaster to its never-started state. Participants stay registered.
func (b *Broadcaster) Reset() {
	b.active = false
	b.turn = 0
	b.phaseIdx = 0
	b.interruptedDone = false
}

// Advance moves to the next phase once every participant of the current phase
// is ready. Returns true if the phase changed.
func (b *Broadcaster) Advance() bool {
	if !b.active {
		return false
	}
	if !b.phaseComplete() {
		return false
	}

	b.phaseIdx++
	if b.phaseIdx >= len(b.phases) {
		b.phaseIdx = 0
		ended := b.turn
		b.turn++
		b.logger.Debug().Int("turn", ended).Msg("Turn ended")
		for _, o := range b.observers {
			o.TurnEnded(ended)
		}
		if !b.active {
			return true
		}
	}

	b.openPhase()
	return true
}

func (b *Broadcaster) openPhase() {
	phase := b.CurrentPhase()
	b.logger.Debug().Int("turn", b.turn).Str("phase", phase.String()).Msg("Opening phase")

	for _, o := range b.observers {
		o.PhaseOpened(phase, b.turn)
	}
	for _, p := range b.snapshot() {
		if !b.active {
			return
		}
		if p.ResponsePhase() == phase {
			p.OnPhaseOpen(b.turn)
		}
	}
}

func (b *Broadcaster) phaseComplete() bool {
	current := b.CurrentPhase()
	for _, p := range b.participants {
		if p.ResponsePhase() == current && !p.IsReadyToAdvance() {
			return false
		}
	}
	return true
}

func (b *Broadcaster) snapshot() []Participant {
	out := make([]Participant, len(b.participants))
	copy(out, b.participants)
	return out
}

func (b *Broadcaster) indexOf(p Participant) int {
	for i, q := range b.participants {
		if q == p {
			return i
		}
	}
	return -1
}
