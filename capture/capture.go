package capture

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
)

// Config holds audio input parameters.
type Config struct {
	// SampleRate is the capture rate in Hz.
	SampleRate int
	// FramesPerBuffer is the number of frames delivered per callback.
	FramesPerBuffer int
}

// Engine owns the portaudio input stream. Every captured frame's first
// (mono) channel is pushed into the relay from the audio thread; overflow
// drops samples rather than stalling the callback.
//
// portaudio.Initialize must have been called before NewEngine.
type Engine struct {
	stream *portaudio.Stream
	relay  *Relay
}

// NewEngine opens an input stream on the default capture device.
func NewEngine(relay *Relay, cfg Config) (*Engine, error) {
	e := &Engine{relay: relay}
	stream, err := portaudio.OpenDefaultStream(
		1, // mono input
		0, // no output
		float64(cfg.SampleRate),
		cfg.FramesPerBuffer,
		e.captureCallback,
	)
	if err != nil {
		return nil, fmt.Errorf("open input stream: %w", err)
	}
	e.stream = stream
	return e, nil
}

// captureCallback runs on the audio thread. It must not block or allocate.
func (e *Engine) captureCallback(in []float32) {
	for _, s := range in {
		e.relay.Push(s)
	}
}

// Start begins capturing.
func (e *Engine) Start() error {
	if err := e.stream.Start(); err != nil {
		return fmt.Errorf("start input stream: %w", err)
	}
	return nil
}

// Stop stops capturing without closing the stream.
func (e *Engine) Stop() error {
	return e.stream.Stop()
}

// Close releases the stream.
func (e *Engine) Close() error {
	return e.stream.Close()
}
