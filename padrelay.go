// This file is part of Padrelay.
//
// Padrelay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Padrelay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Padrelay.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/jetsetilly/padrelay/buffer"
	"github.com/jetsetilly/padrelay/layout"
	"github.com/jetsetilly/padrelay/logger"
	"github.com/jetsetilly/padrelay/metrics"
	"github.com/jetsetilly/padrelay/modalflag"
	"github.com/jetsetilly/padrelay/paths"
	"github.com/jetsetilly/padrelay/prefs"
	"github.com/jetsetilly/padrelay/relay"
	"github.com/jetsetilly/padrelay/shutdown"
	"github.com/jetsetilly/padrelay/source"
	"github.com/jetsetilly/padrelay/source/sdlsource"
	"github.com/jetsetilly/padrelay/statsview"
	"github.com/jetsetilly/padrelay/transport"
	"github.com/jetsetilly/padrelay/version"
)

// exit values
const (
	exitParseError = 10
	exitModeError  = 20
)

// SDL must be polled from the main thread. the relay polls the source from
// the goroutine that calls relay.Run(), which is the main goroutine
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	os.Exit(launch(os.Args[1:]))
}

// launch parses the arguments and runs the selected mode. returns the exit
// value for the process.
func launch(args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("SOCKET", "CONSOLE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "SOCKET":
		err = socket(md)

	case "CONSOLE":
		err = console(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return 0
}

// flags common to both modes
type common struct {
	rate      *float64
	layouts   *string
	log       *bool
	metrics   *string
	stats     *bool
	prefs     *string
	saveprefs *bool
}

func addCommonFlags(md *modalflag.Modes) *common {
	return &common{
		rate:      md.AddFloat64("rate", relay.DefaultRate, "ticks per second for polling and writing"),
		layouts:   md.AddString("layouts", "", "layouts file (default is layouts.yaml in the config directory)"),
		log:       md.AddBool("log", false, "echo debugging log to stderr"),
		metrics:   md.AddString("metrics", "", "serve prometheus metrics on address"),
		stats:     md.AddBool("stats", false, "run stats server (if available in this build)"),
		prefs:     md.AddString("prefs", "", "preferences string. for example \"relay.rate::120\""),
		saveprefs: md.AddBool("saveprefs", false, "save preferences to disk"),
	}
}

// session is everything needed by a mode once the flags have been parsed
type session struct {
	prefs   *relay.Preferences
	token   *shutdown.Token
	buf     *buffer.Buffer
	metrics *metrics.Relay

	// cleanup functions called in reverse order by end()
	cleanup []func()
}

func (s *session) end() {
	for i := len(s.cleanup) - 1; i >= 0; i-- {
		s.cleanup[i]()
	}
}

// newSession prepares the ambient stack for the mode. the visit function is
// called for every flag that was set on the command line, after preferences
// have been loaded, so that flags take priority over preferences.
func newSession(md *modalflag.Modes, c *common, visit func(*relay.Preferences, string) error) (*session, error) {
	s := &session{
		token: shutdown.NewToken(),
		buf:   buffer.NewBuffer(),
	}

	if *c.log {
		var w io.Writer = os.Stderr
		if logger.IsTerminal(os.Stderr) {
			w = logger.NewColorizer(os.Stderr)
		}
		logger.SetEcho(w, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *c.prefs != "" {
		prefs.PushCommandLineStack(*c.prefs)
		s.cleanup = append(s.cleanup, func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
			}
		})
	}

	var err error
	s.prefs, err = relay.NewPreferences()
	if err != nil {
		s.end()
		return nil, err
	}

	md.Visit(func(flg string) {
		if err != nil {
			return
		}
		switch flg {
		case "rate":
			err = s.prefs.Rate.Set(*c.rate)
		case "layouts":
			err = s.prefs.Layouts.Set(*c.layouts)
		default:
			if visit != nil {
				err = visit(s.prefs, flg)
			}
		}
	})
	if err != nil {
		s.end()
		return nil, err
	}

	if *c.saveprefs {
		if err := s.prefs.Save(); err != nil {
			s.end()
			return nil, err
		}
	}

	if *c.metrics != "" {
		s.metrics = metrics.NewRelay()
		srv, err := s.metrics.Serve(*c.metrics)
		if err != nil {
			s.end()
			return nil, err
		}
		s.cleanup = append(s.cleanup, func() { srv.Close() })
	}

	if *c.stats {
		statsview.Launch(os.Stderr)
	}

	// interrupt signals set the token. the relay winds down normally
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case v := <-sig:
			s.token.Set(fmt.Sprintf("signal: %v", v))
		case <-s.token.Done():
		}
	}()
	s.cleanup = append(s.cleanup, func() {
		signal.Stop(sig)
		s.token.Set("session ended")
	})

	return s, nil
}

// sdl returns the SDL source with the layout table. the layout table is the
// default table supplemented by the layouts file.
func (s *session) sdl() (source.Source, error) {
	table := layout.NewDefaultTable()

	pth := s.prefs.Layouts.String()
	if pth == "" {
		var err error
		pth, err = paths.ResourcePath("", "layouts.yaml")
		if err != nil {
			return nil, err
		}
	}
	if err := layout.LoadFile(pth, table); err != nil {
		return nil, err
	}
	logger.Logf(logger.Allow, "layout", "%d layouts", table.Len())

	return sdlsource.New(table)
}

// run the relay with the transport. the transport is closed when run()
// returns.
func (s *session) run(tr transport.Transport) error {
	period, err := s.prefs.Period()
	if err != nil {
		tr.Close()
		return err
	}

	src, err := s.sdl()
	if err != nil {
		tr.Close()
		return err
	}

	r := relay.New(relay.Config{
		Period:  period,
		Token:   s.token,
		Buffer:  s.buf,
		Metrics: s.metrics,
	}, src, tr)

	return r.Run()
}

func socket(md *modalflag.Modes) error {
	md.NewMode()

	c := addCommonFlags(md)
	addr := md.AddString("addr", transport.DefaultAddress, "address to listen on")
	acceptTimeout := md.AddDuration("accepttimeout", 0, "how long to wait for a client. zero is forever")
	userTimeout := md.AddDuration("usertimeout", 0, "time before a client that isn't reading is disconnected (linux only)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	s, err := newSession(md, c, func(prf *relay.Preferences, flg string) error {
		switch flg {
		case "addr":
			return prf.Address.Set(*addr)
		case "accepttimeout":
			return prf.AcceptTimeout.Set(*acceptTimeout)
		case "usertimeout":
			return prf.UserTimeout.Set(*userTimeout)
		}
		return nil
	})
	if err != nil {
		return err
	}
	defer s.end()

	sck, err := transport.NewSocket(s.token, s.buf, s.prefs.Address.String(), transport.SocketOptions{
		AcceptTimeout: s.prefs.AcceptTimeout.Get().(time.Duration),
		UserTimeout:   s.prefs.UserTimeout.Get().(time.Duration),
	})
	if err != nil {
		return err
	}
	sck.Metrics = s.metrics

	return s.run(sck)
}

func console(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("records are written to stdout. type exit to quit.")

	c := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	s, err := newSession(md, c, nil)
	if err != nil {
		return err
	}
	defer s.end()

	con := transport.NewConsole(s.token, s.buf, os.Stdin, os.Stdout)
	con.Metrics = s.metrics

	return s.run(con)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	if *revision {
		fmt.Println(r)
	} else {
		fmt.Println(v)
	}

	return nil
}
