// Package scanner connects decoded QR text to crop lookup. Codes arrive either
// from manual entry or from a Decoder running on its own goroutine; each scan
// reports at most one result and then stops.
package scanner

import (
	"context"
	"errors"
	"sync"

	"github.com/fekuna/gardentrack/internal/logger"
	"github.com/fekuna/gardentrack/internal/model"
	"go.uber.org/zap"
)

var (
	// ErrCameraUnavailable is the only error reported for a decoder that
	// failed to start, whatever the underlying cause.
	ErrCameraUnavailable = errors.New("camera unavailable")
	ErrAlreadyScanning   = errors.New("scan already in progress")
)

const (
	SourceManual = "manual"
	SourceCamera = "camera"
)

type CropFinder interface {
	GetCropByQR(code string) (model.Crop, bool)
}

type Recorder interface {
	QRLookup(source string, found bool)
}

type Result struct {
	Code  string
	Crop  model.Crop
	Found bool
}

type Option func(*Scanner)

func WithLogger(log logger.ZapLogger) Option {
	return func(s *Scanner) {
		s.logger = log
	}
}

func WithRecorder(r Recorder) Option {
	return func(s *Scanner) {
		s.recorder = r
	}
}

type Scanner struct {
	crops    CropFinder
	decoder  Decoder
	logger   logger.ZapLogger
	recorder Recorder

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New returns a scanner over crops. decoder may be nil, in which case only
// manual lookups work and Start reports ErrCameraUnavailable.
func New(crops CropFinder, decoder Decoder, opts ...Option) *Scanner {
	s := &Scanner{
		crops:    crops,
		decoder:  decoder,
		logger:   logger.NewNop(),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Lookup resolves a manually entered code. The code is used as given.
func (s *Scanner) Lookup(code string) Result {
	return s.lookup(code, SourceManual)
}

// Start runs the decoder until the first decoded code, which is looked up and
// sent on the returned channel. The channel is closed once the scan ends,
// with or without a result. There is no timeout.
func (s *Scanner) Start(ctx context.Context) (<-chan Result, error) {
	if s.decoder == nil {
		s.logger.Warn("scan requested without a decoder")
		return nil, ErrCameraUnavailable
	}

	// The scan is registered before the decoder starts, so Stop can cancel a
	// decoder that is still opening its source.
	s.mu.Lock()
	if s.running() {
		s.mu.Unlock()
		return nil, ErrAlreadyScanning
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel, s.done = cancel, done
	s.mu.Unlock()

	codes, err := s.decoder.Start(ctx)
	if err != nil {
		cancel()
		close(done)
		s.mu.Lock()
		if s.done == done {
			s.cancel, s.done = nil, nil
		}
		s.mu.Unlock()
		s.logger.Warn("decoder failed to start", zap.Error(err))
		return nil, ErrCameraUnavailable
	}

	results := make(chan Result, 1)
	go func() {
		// done closes before results so Scanning is false once a reader
		// sees the channel closed.
		defer close(results)
		defer close(done)
		defer cancel()

		select {
		case <-ctx.Done():
			s.logger.Debug("scan stopped before a code was decoded")
		case code, ok := <-codes:
			if !ok {
				s.logger.Debug("decoder closed without a code")
				return
			}
			results <- s.lookup(code, SourceCamera)
		}
	}()

	s.logger.Debug("scan started")
	return results, nil
}

// Stop cancels a running scan and waits for it to finish. Calling it with no
// scan running does nothing.
func (s *Scanner) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (s *Scanner) Scanning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running()
}

// Callers hold s.mu.
func (s *Scanner) running() bool {
	if s.done == nil {
		return false
	}
	select {
	case <-s.done:
		return false
	default:
		return true
	}
}

func (s *Scanner) lookup(code, source string) Result {
	crop, found := s.crops.GetCropByQR(code)
	s.recorder.QRLookup(source, found)
	s.logger.Debug("qr lookup",
		zap.String("source", source),
		zap.String("code", code),
		zap.Bool("found", found),
	)
	return Result{Code: code, Crop: crop, Found: found}
}

type nopRecorder struct{}

func (nopRecorder) QRLookup(string, bool) {}
