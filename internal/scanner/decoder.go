package scanner

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"
)

// Decoder is an external source of decoded QR text, typically a camera.
//
// Start begins decoding and returns a channel of decoded strings. The channel
// is closed when ctx is done or the source is exhausted. An error from Start
// means the source could not be opened at all.
type Decoder interface {
	Start(ctx context.Context) (<-chan string, error)
}

// LineDecoder reads one decoded symbol per line from r, the way zbarcam
// --raw or zbarcam (with a "QR-Code:" symbology prefix) print them.
//
// When r is an io.Closer it is closed once the scan context ends, which wakes
// a pending read. Lines already read ahead are dropped with it. A reader that
// cannot be closed keeps its goroutine until the next line or EOF.
type LineDecoder struct {
	r      io.Reader
	prefix string
}

func NewLineDecoder(r io.Reader, prefix string) *LineDecoder {
	return &LineDecoder{r: r, prefix: prefix}
}

func (d *LineDecoder) Start(ctx context.Context) (<-chan string, error) {
	if d.r == nil {
		return nil, errors.New("no input stream")
	}

	out := make(chan string)
	finished := make(chan struct{})
	if c, ok := d.r.(io.Closer); ok {
		go func() {
			select {
			case <-ctx.Done():
				_ = c.Close()
			case <-finished:
			}
		}()
	}

	go func() {
		defer close(out)
		defer close(finished)
		sc := bufio.NewScanner(d.r)
		for sc.Scan() {
			code := d.decode(sc.Text())
			if code == "" {
				continue
			}
			select {
			case out <- code:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// decode strips the line ending and the symbology prefix. Anything else is
// part of the code.
func (d *LineDecoder) decode(line string) string {
	line = strings.TrimSuffix(line, "\r")
	if d.prefix != "" {
		line = strings.TrimPrefix(line, d.prefix)
	}
	return line
}

// DeviceDecoder opens path when a scan starts and reads decoded lines from it,
// for example a FIFO that zbarcam writes to. The file is closed when the scan
// context ends.
type DeviceDecoder struct {
	path   string
	prefix string
}

func NewDeviceDecoder(path, prefix string) *DeviceDecoder {
	return &DeviceDecoder{path: path, prefix: prefix}
}

func (d *DeviceDecoder) Start(ctx context.Context) (<-chan string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := openDevice(d.path)
	if err != nil {
		return nil, err
	}
	codes, err := NewLineDecoder(f, d.prefix).Start(ctx)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	go func() {
		<-ctx.Done()
		_ = f.Close()
	}()
	return codes, nil
}

// openDevice opens path for reading without waiting on a writer. A FIFO is
// opened read-write: a read-only open would block until zbarcam connects, and
// holding a write end keeps reads from hitting EOF between writers. Closing
// the file wakes a pending read.
func openDevice(path string) (*os.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Mode()&os.ModeNamedPipe != 0 {
		return os.OpenFile(path, os.O_RDWR, 0)
	}
	return os.Open(path)
}
