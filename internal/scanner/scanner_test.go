package scanner

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fekuna/gardentrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type crops map[string]model.Crop

func (c crops) GetCropByQR(code string) (model.Crop, bool) {
	crop, ok := c[code]
	return crop, ok
}

var garden = crops{
	"CROP-001-TOMATO-ROMA": {ID: "1", Name: "Tomato", QRData: "CROP-001-TOMATO-ROMA"},
}

type lookups struct {
	calls []string
}

func (l *lookups) QRLookup(source string, found bool) {
	result := "miss"
	if found {
		result = "hit"
	}
	l.calls = append(l.calls, source+":"+result)
}

// chanDecoder hands out codes pushed by the test.
type chanDecoder struct {
	codes chan string
	err   error
}

func (d *chanDecoder) Start(ctx context.Context) (<-chan string, error) {
	if d.err != nil {
		return nil, d.err
	}
	out := make(chan string)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case code := <-d.codes:
				select {
				case out <- code:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func TestLookupManual(t *testing.T) {
	rec := &lookups{}
	s := New(garden, nil, WithRecorder(rec))

	hit := s.Lookup("CROP-001-TOMATO-ROMA")
	assert.True(t, hit.Found)
	assert.Equal(t, "Tomato", hit.Crop.Name)

	miss := s.Lookup("crop-001-tomato-roma")
	assert.False(t, miss.Found)
	assert.Equal(t, "crop-001-tomato-roma", miss.Code)

	assert.Equal(t, []string{"manual:hit", "manual:miss"}, rec.calls)
}

func TestStartWithoutDecoder(t *testing.T) {
	s := New(garden, nil)

	_, err := s.Start(context.Background())
	assert.ErrorIs(t, err, ErrCameraUnavailable)
	assert.False(t, s.Scanning())
}

func TestStartFailureIsGeneric(t *testing.T) {
	s := New(garden, &chanDecoder{err: errors.New("permission denied: /dev/video0")})

	_, err := s.Start(context.Background())
	assert.ErrorIs(t, err, ErrCameraUnavailable)
	assert.Equal(t, ErrCameraUnavailable.Error(), err.Error())
}

func TestFirstDecodeStopsScan(t *testing.T) {
	rec := &lookups{}
	dec := &chanDecoder{codes: make(chan string, 2)}
	s := New(garden, dec, WithRecorder(rec))

	results, err := s.Start(context.Background())
	require.NoError(t, err)
	assert.True(t, s.Scanning())

	dec.codes <- "CROP-001-TOMATO-ROMA"
	dec.codes <- "CROP-404"

	got, ok := <-results
	require.True(t, ok)
	assert.True(t, got.Found)
	assert.Equal(t, "1", got.Crop.ID)

	_, ok = <-results
	assert.False(t, ok)
	assert.False(t, s.Scanning())
	assert.Equal(t, []string{"camera:hit"}, rec.calls)

	s.Stop()
}

func TestStartTwice(t *testing.T) {
	s := New(garden, &chanDecoder{codes: make(chan string)})

	_, err := s.Start(context.Background())
	require.NoError(t, err)
	defer s.Stop()

	_, err = s.Start(context.Background())
	assert.ErrorIs(t, err, ErrAlreadyScanning)
}

func TestStopIsIdempotent(t *testing.T) {
	s := New(garden, &chanDecoder{codes: make(chan string)})
	s.Stop()

	results, err := s.Start(context.Background())
	require.NoError(t, err)

	s.Stop()
	s.Stop()

	_, ok := <-results
	assert.False(t, ok)
	assert.False(t, s.Scanning())

	// A stopped scanner can scan again.
	_, err = s.Start(context.Background())
	require.NoError(t, err)
	s.Stop()
}

func TestContextCancelEndsScan(t *testing.T) {
	s := New(garden, &chanDecoder{codes: make(chan string)})
	ctx, cancel := context.WithCancel(context.Background())

	results, err := s.Start(ctx)
	require.NoError(t, err)
	cancel()

	_, ok := <-results
	assert.False(t, ok)
	s.Stop()
}

func TestLineDecoderStripsPrefix(t *testing.T) {
	input := "\nQR-Code:CROP-001-TOMATO-ROMA\r\nQR-Code:CROP-002\n"
	dec := NewLineDecoder(strings.NewReader(input), "QR-Code:")

	codes, err := dec.Start(context.Background())
	require.NoError(t, err)

	var got []string
	for c := range codes {
		got = append(got, c)
	}
	assert.Equal(t, []string{"CROP-001-TOMATO-ROMA", "CROP-002"}, got)
}

func TestLineDecoderWithoutInput(t *testing.T) {
	_, err := NewLineDecoder(nil, "").Start(context.Background())
	assert.Error(t, err)
}

func TestScanFromStream(t *testing.T) {
	r, w := io.Pipe()
	t.Cleanup(func() { _ = w.Close() })

	s := New(garden, NewLineDecoder(r, "QR-Code:"))
	results, err := s.Start(context.Background())
	require.NoError(t, err)

	_, err = io.WriteString(w, "QR-Code:CROP-001-TOMATO-ROMA\n")
	require.NoError(t, err)

	got := <-results
	assert.True(t, got.Found)
	s.Stop()
}

func TestDeviceDecoderMissingDevice(t *testing.T) {
	s := New(garden, NewDeviceDecoder(filepath.Join(t.TempDir(), "video0"), ""))

	_, err := s.Start(context.Background())
	assert.ErrorIs(t, err, ErrCameraUnavailable)
}

func TestDeviceDecoderReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codes")
	require.NoError(t, os.WriteFile(path, []byte("QR-Code:CROP-001-TOMATO-ROMA\n"), 0o600))

	s := New(garden, NewDeviceDecoder(path, "QR-Code:"))
	results, err := s.Start(context.Background())
	require.NoError(t, err)

	got, ok := <-results
	require.True(t, ok)
	assert.Equal(t, "1", got.Crop.ID)
	s.Stop()
}

func TestLineDecoderClosesReaderOnCancel(t *testing.T) {
	r, w := io.Pipe()
	t.Cleanup(func() { _ = w.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	codes, err := NewLineDecoder(r, "").Start(ctx)
	require.NoError(t, err)
	cancel()

	_, ok := <-codes
	assert.False(t, ok)

	_, err = io.WriteString(w, "CROP-001-TOMATO-ROMA\n")
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}

// slowDecoder blocks in Start until its context ends, like a device that is
// still being opened.
type slowDecoder struct {
	entered chan struct{}
}

func (d *slowDecoder) Start(ctx context.Context) (<-chan string, error) {
	close(d.entered)
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestStopWhileDecoderStarting(t *testing.T) {
	dec := &slowDecoder{entered: make(chan struct{})}
	s := New(garden, dec)

	errs := make(chan error, 1)
	go func() {
		_, err := s.Start(context.Background())
		errs <- err
	}()
	<-dec.entered
	assert.True(t, s.Scanning())

	s.Stop()
	assert.ErrorIs(t, <-errs, ErrCameraUnavailable)
	assert.False(t, s.Scanning())
}
