package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/simon/muxpick/internal/actuator"
	"github.com/simon/muxpick/internal/config"
	"github.com/simon/muxpick/internal/mux"
	"github.com/simon/muxpick/internal/picker"
	"github.com/simon/muxpick/internal/state"
)

// env is everything a command needs to talk to the authority.
type env struct {
	cfg       *config.Config
	authority mux.Authority
	host      string
	logger    *slog.Logger
	journal   *state.Store
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if flags.verbose || os.Getenv("MUXPICK_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// setup loads configuration and resolves the authority for the selected host.
func setup() (*env, error) {
	return setupHost("")
}

func setupHost(hostOverride string) (*env, error) {
	logger := newLogger()

	cfg, err := config.Load(flags.config)
	if err != nil {
		return nil, err
	}
	if flags.authority != "" {
		cfg.Authority = flags.authority
	}
	if flags.host != "" {
		cfg.Host = flags.host
	}
	if hostOverride != "" {
		cfg.Host = hostOverride
	}

	runner, err := resolveRunner(cfg, cfg.Host)
	if err != nil {
		return nil, err
	}

	authority, err := mux.FromName(cfg.Authority, runner,
		mux.WithBinary(cfg.Binary),
		mux.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved authority", "authority", authority.Name(), "host", cfg.Host, "config", cfg.ConfigFile)

	e := &env{cfg: cfg, authority: authority, host: cfg.Host, logger: logger}
	if store, err := state.Open(); err != nil {
		logger.Warn("action journal unavailable", "err", err)
	} else {
		e.journal = store
	}
	return e, nil
}

func (e *env) close() {
	if e.journal != nil {
		e.journal.Close()
	}
}

func (e *env) actuator() *actuator.Actuator {
	return actuator.New(e.authority, actuator.WithLogger(e.logger))
}

func (e *env) picker() *picker.Picker {
	p := &picker.Picker{
		Authority:   e.authority,
		Actuator:    e.actuator(),
		Host:        e.host,
		Placeholder: e.cfg.Placeholder,
		Logger:      e.logger,
	}
	if e.journal != nil {
		p.Journal = e.journal
	}
	return p
}

// resolveRunner returns a runner for the given host nickname.
// Empty host returns a LocalRunner.
func resolveRunner(cfg *config.Config, host string) (mux.Runner, error) {
	if host == "" {
		return mux.LocalRunner{}, nil
	}
	h, err := cfg.LookupHost(host)
	if err != nil {
		return nil, err
	}
	return &mux.SSHRunner{
		Nickname: host,
		Addr:     h.Host,
		User:     h.User,
		SSHKey:   h.SSHKey,
	}, nil
}

// parseHostName splits "host:name" into (host, name) when host is a
// configured host. Anything else is a plain session name.
func parseHostName(s string) (host, name string) {
	idx := strings.IndexByte(s, ':')
	if idx < 0 {
		return "", s
	}
	cfg, err := config.Load(flags.config)
	if err != nil {
		return "", s
	}
	if _, ok := cfg.Hosts[s[:idx]]; !ok {
		return "", s
	}
	return s[:idx], s[idx+1:]
}
