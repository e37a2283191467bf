package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/flutterbuild/internal/app/codegen"
	"github.com/alexisbeaulieu97/flutterbuild/internal/config"
	"github.com/alexisbeaulieu97/flutterbuild/internal/logger"
)

// appContext bundles the services a command needs.
type appContext struct {
	Logger  *logger.Logger
	Codegen *codegen.Service
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	if err := validateLogFormat(flags.logFormat); err != nil {
		return nil, err
	}

	level := "info"
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: flags.logFormat == logFormatConsole,
		Writer:        cmd.ErrOrStderr(),
		Component:     cmd.Name(),
	})
	if err != nil {
		return nil, err
	}

	return &appContext{
		Logger:  log,
		Codegen: codegen.NewService(nil, log),
	}, nil
}

// generate parses the document at path and translates it.
func (a *appContext) generate(ctx context.Context, path string) (*config.Document, *codegen.Result, error) {
	if err := validateDocumentPath(path); err != nil {
		return nil, nil, err
	}

	doc, err := config.ParseDocument(path)
	if err != nil {
		return nil, nil, err
	}

	result, err := a.Codegen.Generate(ctx, doc)
	if err != nil {
		return nil, nil, err
	}

	return doc, result, nil
}
