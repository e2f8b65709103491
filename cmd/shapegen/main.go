/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command shapegen generates Go shape types from schema documents.
//
//	shapegen --config schema/sagemaker/shapegen.yaml [--dry-run]
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"dirpx.dev/dxsage/dxcore/codegen"
	"dirpx.dev/dxsage/internal/config"
	"dirpx.dev/dxsage/internal/logging"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "shapegen:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("shapegen", pflag.ContinueOnError)
	config.GenerateFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadGenerate(fs)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	header, err := cfg.ReadHeader()
	if err != nil {
		return err
	}
	g := &codegen.Generator{Header: header}

	for _, target := range cfg.Targets {
		if err := generate(logger, g, target, cfg.DryRun); err != nil {
			logger.Error("generation failed", zap.String("schema", target.Schema), zap.Error(err))
			return err
		}
	}
	return nil
}

func generate(logger *zap.Logger, g *codegen.Generator, target config.Target, dryRun bool) error {
	doc, err := codegen.Load(target.Schema)
	if err != nil {
		return err
	}
	if target.Package != "" && doc.Package != target.Package {
		return fmt.Errorf("%s: declares package %s, configuration expects %s", target.Schema, doc.Package, target.Package)
	}

	files, err := g.Generate(doc)
	if err != nil {
		return err
	}
	logger.Debug("schema loaded",
		zap.String("schema", target.Schema),
		zap.String("package", doc.Package),
		zap.Int("files", len(files)))

	if !dryRun {
		if err := os.MkdirAll(target.Output, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	for _, f := range files {
		path := filepath.Join(target.Output, f.Name)
		if dryRun {
			logger.Info("would write", zap.String("file", path), zap.Int("bytes", len(f.Content)))
			continue
		}
		if err := os.WriteFile(path, f.Content, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		logger.Info("wrote", zap.String("file", path), zap.Int("bytes", len(f.Content)))
	}
	return nil
}
