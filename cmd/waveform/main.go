// SPDX-License-Identifier: EPL-2.0

// Command waveform indexes an audio file, or a live recording, and draws its
// waveform as text or PNG.
//
//	waveform [flags] <input.{wav,aif,aiff,mp3,ogg}>
//	waveform [flags] -capture 5s
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/ik5/audmip"
	"github.com/ik5/audmip/audio"
	"github.com/ik5/audmip/capture"
	"github.com/ik5/audmip/formats/aiff"
	"github.com/ik5/audmip/formats/mp3"
	"github.com/ik5/audmip/formats/vorbis"
	"github.com/ik5/audmip/formats/wav"
	"github.com/ik5/audmip/internal/logging"
	"github.com/ik5/audmip/mipmap"
	"github.com/ik5/audmip/waveform"
)

var logger = logging.NewLogger("waveform")

type options struct {
	res     uint
	clip    float64
	mono    bool
	width   int
	height  int
	zoom    float64
	offset  float64
	channel uint
	png     string
	capture time.Duration
	rate    int
	inputs  int
}

func main() {
	var o options
	flag.UintVar(&o.res, "res", 2, "mipmap resolution; each level groups res+2 bins")
	flag.Float64Var(&o.clip, "clip", 0, "headroom above full scale; negative derives it from the peak")
	flag.BoolVar(&o.mono, "mono", false, "mix all channels down to one")
	flag.IntVar(&o.width, "width", 100, "output width in columns")
	flag.IntVar(&o.height, "height", 0, "output height in rows, or pixels with -png (default 20 rows, 200 pixels)")
	flag.Float64Var(&o.zoom, "zoom", 0, "frames per column, 0 fits the whole input")
	flag.Float64Var(&o.offset, "offset", 0, "first frame drawn")
	flag.UintVar(&o.channel, "channel", 0, "channel to draw")
	flag.StringVar(&o.png, "png", "", "write a PNG to this path instead of text to stdout")
	flag.DurationVar(&o.capture, "capture", 0, "record from the default input device for this long")
	flag.IntVar(&o.rate, "rate", 48000, "capture sample rate")
	flag.IntVar(&o.inputs, "inputs", 1, "capture channel count")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <input> | -capture <duration>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(o, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "waveform:", err)
		os.Exit(1)
	}
}

func run(o options, args []string) error {
	if o.res > 255 {
		return fmt.Errorf("resolution %d out of range", o.res)
	}

	var (
		m   *mipmap.Mipmap[uint8]
		err error
	)
	switch {
	case o.capture > 0:
		m, err = record(o)
	case len(args) == 1:
		m, err = load(o, args[0])
	default:
		flag.Usage()
		return errors.New("expected exactly one input file or -capture")
	}
	if err != nil {
		return err
	}

	if mipmap.ChannelCount(o.channel) >= m.ChannelCount() {
		return fmt.Errorf("channel %d out of range, input has %d", o.channel, m.ChannelCount())
	}

	cols := waveform.Columns(m, waveform.View{
		Channel:         mipmap.ChannelIdx(o.channel),
		Offset:          float32(o.offset),
		FramesPerColumn: float32(o.zoom),
		Width:           o.width,
	})
	limit := 1 + float32(m.MaxSourceClip())

	if o.png == "" {
		height := o.height
		if height <= 0 {
			height = 20
		}
		_, err := io.WriteString(os.Stdout, waveform.Text(cols, height, limit))
		return err
	}

	height := o.height
	if height <= 0 {
		height = 200
	}

	return writePNG(o.png, cols, height, limit)
}

func registry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})

	return reg
}

func load(o options, path string) (*mipmap.Mipmap[uint8], error) {
	dec, err := registry().ForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	opts := audmip.DefaultOptions()
	opts.Resolution = mipmap.Resolution(o.res)
	opts.Mono = o.mono
	opts.AutoClip = o.clip < 0
	opts.Clip = mipmap.MaxSourceClip(max(o.clip, 0))
	opts.Logger = logger

	return audmip.Build[uint8](src, opts)
}

func record(o options) (*mipmap.Mipmap[uint8], error) {
	if o.clip < 0 {
		return nil, errors.New("automatic clip needs the whole input and cannot be used with -capture")
	}

	cfg := capture.DefaultConfig()
	cfg.SampleRate = o.rate
	cfg.Channels = o.inputs
	cfg.Duration = o.capture
	cfg.Resolution = mipmap.Resolution(o.res)
	cfg.Clip = mipmap.MaxSourceClip(o.clip)
	cfg.Logger = logger

	rec, err := capture.Start[uint8](cfg)
	if err != nil {
		return nil, err
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	select {
	case <-rec.Full():
	case <-interrupt:
		logger.Info("interrupted, keeping what was captured")
	}

	region, err := rec.Stop()
	if err != nil {
		return nil, err
	}
	logger.Debugf("captured frames [%d,%d)", region.Beg, region.End)

	m := rec.Mipmap()
	if o.mono && m.ChannelCount() > 1 {
		logger.Warn("-mono is ignored for capture; use -inputs 1")
	}

	return m, nil
}

func writePNG(path string, cols []waveform.Column, height int, limit float32) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	style := waveform.DefaultStyle()
	style.Height = height
	style.Limit = limit

	return waveform.WritePNG(f, cols, style)
}
