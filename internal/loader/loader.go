// Package loader publishes CMS bootstrap constants from layered .env files.
//
// A Loader is built once per process with the directory holding the .env
// files. Load parses the files, exposes every parsed key through the
// environment without overriding variables that were already set, and
// publishes the fixed constant set into a write-once registry:
//
//	reg := registry.New()
//	l := loader.New("/srv/www", loader.Options{Features: loader.Extended, Registry: reg})
//	if err := l.Load(nil); err != nil {
//	    log.Fatal(err)
//	}
//	host := reg.String(loader.DBHost)
package loader

import (
	"fmt"
	"io"
	"sync"

	"github.com/labstack/gommon/log"
	"github.com/nckslvrmn/wpenv/internal/dotenv"
	"github.com/nckslvrmn/wpenv/internal/environ"
	"github.com/nckslvrmn/wpenv/internal/registry"
	"github.com/nckslvrmn/wpenv/pkg/utils"
)

// Logger is satisfied by *log.Logger from gommon and by echo.Logger.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

type Options struct {
	Features       Feature
	HTTPSDetection HTTPSDetection
	Environment    environ.Environment
	Registry       *registry.Registry
	Logger         Logger
}

type Loader struct {
	mu       sync.Mutex
	path     string
	env      string
	features Feature
	https    HTTPSDetection
	vars     environ.Environment
	reg      *registry.Registry
	logger   Logger
}

func New(basePath string, opts Options) *Loader {
	l := &Loader{
		path:     utils.TrimTrailingSeparator(basePath),
		features: opts.Features,
		https:    opts.HTTPSDetection,
		vars:     opts.Environment,
		reg:      opts.Registry,
		logger:   opts.Logger,
	}
	if l.vars == nil {
		l.vars = environ.OS()
	}
	if l.reg == nil {
		l.reg = registry.New()
	}
	if l.logger == nil {
		l.logger = discardLogger()
	}
	l.env = l.resolveEnvironment()
	return l
}

func discardLogger() Logger {
	logger := log.New("loader")
	logger.SetOutput(io.Discard)
	logger.SetLevel(log.OFF)
	return logger
}

func (l *Loader) resolveEnvironment() string {
	return utils.StringOr(environ.Getenv(l.vars, WPEnv), DefaultEnvironment)
}

func (l *Loader) BasePath() string {
	return l.path
}

func (l *Loader) Environment() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.env
}

func (l *Loader) Features() Feature {
	return l.features
}

func (l *Loader) Registry() *registry.Registry {
	return l.reg
}

// IsProduction reports whether the resolved environment is exactly "production".
func (l *Loader) IsProduction() bool {
	return l.Environment() == DefaultEnvironment
}

// TablePrefix returns TABLE_PREFIX, or "wp_" when it is unset or empty.
func (l *Loader) TablePrefix() string {
	return utils.StringOr(environ.Getenv(l.vars, TablePrefixVar), DefaultTablePrefix)
}

// Files returns the candidate .env files in the order they are applied.
func (l *Loader) Files() []string {
	return dotenv.FileSet(l.path, l.Environment(), l.features.Has(FeatureEnvironmentFile))
}

// Load reads the .env files, exposes their keys and publishes the constant
// set. req may be nil when no inbound request is being served. Repeated
// calls are safe: exposure never overrides a set variable and publication
// is write-once.
func (l *Loader) Load(req Request) error {
	files := l.Files()

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.features.Has(FeatureEnvironmentFile) {
		if err := dotenv.ValidEnvironment(l.env); err != nil {
			return fmt.Errorf("failed to load environment files: %w", err)
		}
	}

	vars, err := dotenv.Read(files)
	if err != nil {
		return fmt.Errorf("failed to load environment files: %w", err)
	}

	for _, file := range files {
		if !dotenv.Exists(file) {
			l.logger.Debugf("skipping missing env file %s", file)
		}
	}

	if err := l.expose(vars); err != nil {
		return err
	}

	if !l.features.Has(FeatureEnvironmentFile) {
		l.env = l.resolveEnvironment()
	}

	l.publish(req)
	return nil
}

// expose writes every unset key. A failed write unsets the keys already
// written so the environment is left as it was found.
func (l *Loader) expose(vars map[string]string) error {
	var exposed []string
	for key, value := range vars {
		set, err := environ.SetIfUnset(l.vars, key, value)
		if err != nil {
			for _, k := range exposed {
				if uerr := l.vars.Unsetenv(k); uerr != nil {
					l.logger.Warnf("failed to roll back %s: %v", k, uerr)
				}
			}
			return fmt.Errorf("failed to expose %s: %w", key, err)
		}
		if set {
			exposed = append(exposed, key)
		} else {
			l.logger.Debugf("%s already set, keeping external value", key)
		}
	}
	l.logger.Infof("loaded %d variables (%d exposed) for environment %s", len(vars), len(exposed), l.env)
	return nil
}

func (l *Loader) publish(req Request) {
	l.define(WPEnv, l.env)

	for _, c := range databaseConstants {
		l.define(c.name, l.stringOr(c.name, c.fallback))
	}

	if l.features.Has(FeatureCron) {
		l.define(DisableWPCron, utils.Boolean(l.getenv(DisableWPCron)))
	}

	if req != nil {
		l.applyRequest(req)
	}

	if l.features.Has(FeatureSiteURL) {
		siteURL := l.getenv(WPSiteURL)
		if siteURL == "" && req != nil {
			siteURL = req.Header(HeaderOrigin)
		}
		if siteURL != "" {
			l.define(WPSiteURL, siteURL)
		}
		if home := l.getenv(WPHome); home != "" {
			l.define(WPHome, home)
		}
	}

	if l.features.Has(FeatureSES) {
		for _, c := range sesConstants {
			l.define(c.name, l.stringOr(c.name, c.fallback))
		}
	}
}

func (l *Loader) define(name string, value any) {
	if !l.reg.SetIfAbsent(name, value) {
		l.logger.Debugf("constant %s already defined", name)
	}
}

func (l *Loader) getenv(key string) string {
	return environ.Getenv(l.vars, key)
}

func (l *Loader) stringOr(key, fallback string) string {
	return utils.StringOr(l.getenv(key), fallback)
}

// ApplyRequest marks req as HTTPS when it was forwarded over HTTPS by a
// proxy. It reports whether the request was marked.
func (l *Loader) ApplyRequest(req Request) bool {
	if req == nil {
		return false
	}
	return l.applyRequest(req)
}

func (l *Loader) applyRequest(req Request) bool {
	if !l.features.Has(FeatureProxyHTTPS) {
		return false
	}
	if !forwardedHTTPS(req.Header(HeaderForwardedProto), l.https) {
		return false
	}
	req.MarkHTTPS()
	return true
}

// SiteURL returns the published WP_SITEURL, falling back to the request's
// Origin header.
func (l *Loader) SiteURL(req Request) string {
	if url := l.reg.String(WPSiteURL); url != "" {
		return url
	}
	if req == nil || !l.features.Has(FeatureSiteURL) {
		return ""
	}
	return req.Header(HeaderOrigin)
}
