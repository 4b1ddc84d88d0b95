package extract

import (
	"fmt"
	"image"
	"log"
	"os"
	"sync"
)

// State is the coarse state of a Session.
type State int

const (
	// NoImageLoaded is the initial state and the state after Unload.
	NoImageLoaded State = iota

	// ImageLoaded means an image is active; HasResults tells whether a
	// result is available for it.
	ImageLoaded
)

func (s State) String() string {
	switch s {
	case NoImageLoaded:
		return "no_image_loaded"
	case ImageLoaded:
		return "image_loaded"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Outcome is what a submitted run delivers when it completes.
type Outcome struct {
	// Seq is the submission number of the run.
	Seq uint64

	// Result is the run's result, nil when Err is set.
	Result *Result

	// Err is the run's error, if any.
	Err error

	// Stale is set when a newer submission or a new image arrived before
	// the run completed. Stale outcomes are never stored in the Session.
	Stale bool
}

// Session holds the active image and its latest extraction result.
//
// Runs are ordered by submission, not completion: every Submit takes the
// next sequence number and a finished run is stored only if it is still
// the newest submission. Loading an image also advances the sequence, so
// runs on a previous image can never publish.
//
// A Session is safe for concurrent use. The active image is shared
// read-only between runs.
type Session struct {
	// Logger receives debug output. Defaults to stderr when nil.
	Logger *log.Logger

	mu       sync.Mutex
	img      image.Image
	baseName string
	seq      uint64
	result   *Result
}

// NewSession creates a session with no image loaded.
func NewSession(logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(os.Stderr, "", 0)
	}
	return &Session{Logger: logger}
}

// Load makes img the active image and discards any previous result.
// baseName is used to name exported objects.
func (s *Session) Load(img image.Image, baseName string) error {
	if img == nil || img.Bounds().Empty() {
		return ErrUnreadableImage
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.img = img
	s.baseName = baseName
	s.result = nil
	s.seq++
	s.logf("loaded %s (%dx%d)", baseName, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}

// Unload drops the active image and its result.
func (s *Session) Unload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.img = nil
	s.baseName = ""
	s.result = nil
	s.seq++
}

// Submit starts a run with p on the active image in a new goroutine.
//
// The returned channel receives exactly one Outcome and is then closed.
// Without an active image the Outcome carries ErrNoImageLoaded.
func (s *Session) Submit(p Params) <-chan Outcome {
	out := make(chan Outcome, 1)

	s.mu.Lock()
	img := s.img
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	if img == nil {
		out <- Outcome{Seq: seq, Err: ErrNoImageLoaded}
		close(out)
		return out
	}

	go func() {
		defer close(out)
		result, err := Run(img, p)
		out <- s.publish(seq, result, err)
	}()

	return out
}

// Run runs p on the active image and waits for it.
//
// If a newer submission was made meanwhile, the result is returned
// together with ErrSuperseded and is not stored.
func (s *Session) Run(p Params) (*Result, error) {
	o := <-s.Submit(p)
	if o.Err != nil {
		return nil, o.Err
	}
	if o.Stale {
		return o.Result, ErrSuperseded
	}
	return o.Result, nil
}

func (s *Session) publish(seq uint64, result *Result, err error) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := Outcome{Seq: seq, Result: result, Err: err}
	if seq != s.seq {
		o.Stale = true
		s.logf("run %d superseded by %d", seq, s.seq)
		return o
	}

	// A failed run still replaces the previous result: it belonged to
	// older parameters.
	s.result = result
	if err != nil {
		s.logf("run %d failed: %v", seq, err)
	} else {
		s.logf("run %d: %d detected, %d extracted, %d discarded",
			seq, result.Detected, result.Count(), result.Discarded)
	}
	return o
}

// Result returns the latest stored result, or nil.
func (s *Session) Result() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Image returns the active image and its base name.
func (s *Session) Image() (image.Image, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.img, s.baseName
}

// State returns the session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.img == nil {
		return NoImageLoaded
	}
	return ImageLoaded
}

// HasResults reports whether a non-empty result is stored.
func (s *Session) HasResults() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.result.IsEmpty()
}

// Clear discards the stored result but keeps the image. Hosts call it
// after exporting.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = nil
}

func (s *Session) logf(format string, args ...interface{}) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}
