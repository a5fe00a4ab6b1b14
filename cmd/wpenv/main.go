package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/labstack/gommon/log"
	"github.com/nckslvrmn/wpenv/internal/config"
	"github.com/nckslvrmn/wpenv/internal/loader"
	"github.com/nckslvrmn/wpenv/internal/registry"
	"github.com/nckslvrmn/wpenv/internal/ses"
	"github.com/nckslvrmn/wpenv/pkg/utils"
)

type Report struct {
	Environment string         `json:"environment"`
	Production  bool           `json:"production"`
	TablePrefix string         `json:"table_prefix"`
	Files       []string       `json:"files"`
	Constants   map[string]any `json:"constants"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New("wpenv")
	logger.SetOutput(stderr)

	if err := config.LoadAppConfig(); err != nil {
		logger.Error(err)
		return 1
	}
	logger.SetLevel(config.LogLevel)

	fs := flag.NewFlagSet("wpenv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("path", config.BasePath, "directory holding the .env files")
	variant := fs.String("variant", config.Variant, "feature set: minimal or extended")
	detection := fs.String("https", config.HTTPSDetection, "X-Forwarded-Proto check: strict or legacy")
	asJSON := fs.Bool("json", false, "print the constant table as JSON")
	reveal := fs.Bool("reveal", false, "print secrets unmasked")
	checkSES := fs.Bool("ses", false, "report the WP Offload SES credentials")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if *verbose {
		logger.SetLevel(log.DEBUG)
	}

	features, err := loader.ParseVariant(*variant)
	if err != nil {
		logger.Error(err)
		return 2
	}
	mode, err := loader.ParseHTTPSDetection(*detection)
	if err != nil {
		logger.Error(err)
		return 2
	}

	reg := registry.New()
	l := loader.New(*path, loader.Options{
		Features:       features,
		HTTPSDetection: mode,
		Registry:       reg,
		Logger:         logger,
	})
	if err := l.Load(nil); err != nil {
		logger.Errorf("bootstrap failed: %v", err)
		return 1
	}

	report := Report{
		Environment: l.Environment(),
		Production:  l.IsProduction(),
		TablePrefix: l.TablePrefix(),
		Files:       l.Files(),
		Constants:   constants(reg, *reveal),
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			logger.Error(err)
			return 1
		}
	} else {
		printText(stdout, reg, report)
	}

	if *checkSES {
		if err := reportSES(stdout, reg); err != nil {
			logger.Error(err)
			return 1
		}
	}

	return 0
}

func constants(reg *registry.Registry, reveal bool) map[string]any {
	out := reg.Snapshot()
	if reveal {
		return out
	}
	for name, value := range out {
		if s, ok := value.(string); ok && loader.Secret(name) {
			out[name] = utils.Mask(s)
		}
	}
	return out
}

func printText(w io.Writer, reg *registry.Registry, report Report) {
	fmt.Fprintf(w, "# environment=%s production=%t table_prefix=%s\n", report.Environment, report.Production, report.TablePrefix)
	for _, name := range reg.Names() {
		fmt.Fprintf(w, "%s=%v\n", name, report.Constants[name])
	}
}

func reportSES(w io.Writer, reg *registry.Registry) error {
	if err := config.LoadAWSConfig(); err != nil {
		return err
	}

	cfg, err := ses.LoadConfig(context.Background(), reg, config.AWSRegion)
	if err != nil {
		return err
	}

	if _, ok := ses.StaticCredentials(reg); ok {
		fmt.Fprintf(w, "# ses: static credentials %s in %s\n", utils.Mask(reg.String(loader.SESAccessKeyID)), cfg.Region)
		return nil
	}
	fmt.Fprintf(w, "# ses: no static credentials, default chain in %s\n", cfg.Region)
	return nil
}
