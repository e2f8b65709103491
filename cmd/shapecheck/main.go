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

// Command shapecheck decodes a JSON payload of a SageMaker operation,
// validates it and prints the decoded value and its canonical encoding.
//
//	shapecheck --operation DescribeTrainingJob --direction output [--mode strict] FILE|-
//
// Options can also be set through DXSAGE_* environment variables or a .env
// file. The exit status is 1 when the payload cannot be decoded or is invalid.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"dirpx.dev/dxsage/dxcore/errors"
	"dirpx.dev/dxsage/dxcore/model"
	"dirpx.dev/dxsage/dxcore/model/shape"
	"dirpx.dev/dxsage/internal/config"
	"dirpx.dev/dxsage/internal/logging"
	"dirpx.dev/dxsage/sagemaker"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "shapecheck:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := pflag.NewFlagSet("shapecheck", pflag.ContinueOnError)
	config.CheckFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadCheck(fs)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.List {
		for _, op := range sagemaker.Operations() {
			fmt.Fprintf(stdout, "%s\t%s\n", op.Name, op.Target)
		}
		return nil
	}

	op, ok := sagemaker.Lookup(cfg.Operation)
	if !ok {
		return fmt.Errorf("unknown operation %q, use --list to see the known ones", cfg.Operation)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("want exactly one FILE argument or - for stdin, got %d", fs.NArg())
	}
	data, err := readPayload(fs.Arg(0), stdin)
	if err != nil {
		return err
	}

	decode := op.DecodeResponse
	if cfg.Direction == config.DirectionInput {
		decode = op.DecodeRequest
	}
	value, err := decode(data, cfg.DecodeMode)
	if err != nil {
		return err
	}
	logger.Debug("payload decoded",
		zap.String("operation", op.Name),
		zap.String("type", value.TypeName()),
		zap.Stringer("mode", cfg.DecodeMode))

	fmt.Fprintln(stdout, model.SafeString(value, !cfg.Redact))
	if !cfg.Redact {
		canonical, err := value.MarshalJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, string(canonical))
	}

	var opts []shape.ValidateOption
	if cfg.DecodeMode == shape.Strict {
		opts = append(opts, shape.StrictEnums())
	}
	if err := shape.Validate(value, opts...); err != nil {
		violations := errors.ValidationErrors(err)
		for _, ve := range violations {
			logger.Warn("constraint violated",
				zap.String("field", ve.Field),
				zap.String("rule", ve.Rule),
				zap.String("reason", ve.Reason))
		}
		return fmt.Errorf("%s is invalid: %d violation(s)", value.TypeName(), len(violations))
	}
	return nil
}

func readPayload(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	return data, nil
}
