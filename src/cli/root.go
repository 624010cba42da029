// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/x509-chain-segmenter/src/config"
	"github.com/H0llyW00dzZ/x509-chain-segmenter/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/x509-chain-segmenter/src/internal/helper/posix"
	x509certs "github.com/H0llyW00dzZ/x509-chain-segmenter/src/internal/x509/certs"
	x509chain "github.com/H0llyW00dzZ/x509-chain-segmenter/src/internal/x509/chain"
	"github.com/H0llyW00dzZ/x509-chain-segmenter/src/logger"
)

var (
	// ErrInputFileRequired is returned when no -f flag was given.
	ErrInputFileRequired = errors.New("cli: at least one input file is required (use -f)")

	// ErrUnsupportedFormat is returned when the requested output format is
	// not available for the command.
	ErrUnsupportedFormat = errors.New("cli: unsupported output format")

	// ErrTooManyCertificates is returned when the inputs hold more
	// certificates than defaults.maxCertificates allows.
	ErrTooManyCertificates = errors.New("cli: too many certificates")
)

// maxInputSize bounds each input file.
const maxInputSize = 16 << 20

var (
	segmentFormats = []string{config.FormatPEM, config.FormatDER, config.FormatJSON}
	orderFormats   = []string{config.FormatPEM, config.FormatDER, config.FormatJSON, config.FormatTree, config.FormatTable}
)

// options holds the flag values of one command tree.
type options struct {
	files      []string
	outputFile string
	format     string
	configFile string

	cfg     *config.Config
	log     logger.Logger
	decoder *x509certs.Certificate
}

// Execute runs the command line with os.Args.
//
// Parameters:
//   - ctx: Cancelling ctx stops input processing between files
//   - version: Version reported by --version
//   - log: Destination for warnings, such as certificates left out of a chain
//
// Returns:
//   - error: The first error hit, already descriptive for display
func Execute(ctx context.Context, version string, log logger.Logger) error {
	cmd := NewCommand(version, log)
	cmd.SetArgs(os.Args[1:])
	return cmd.ExecuteContext(ctx)
}

// NewCommand builds the root command and its subcommands.
//
// Without a subcommand the root command behaves like "order".
func NewCommand(version string, log logger.Logger) *cobra.Command {
	opts := &options{
		log:     log,
		decoder: x509certs.New(),
	}

	rootCmd := &cobra.Command{
		Use:   posix.ExecutableName("x509-chain-segmenter"),
		Short: "Order X.509 certificate lists and split out their intermediates",
		Long: `x509-chain-segmenter orders an unordered list of X.509 certificates from the
end-entity certificate to the topmost certificate reachable by issuer names.

Certificates are matched by subject and issuer names only. No signature,
validity, revocation, or trust check is made, and nothing is fetched.`,
		Version:           version,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.prepare,
		RunE:              opts.runOrder,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringArrayVarP(&opts.files, "file", "f", nil, "input certificate file (PEM, DER, or PKCS#7); repeatable")
	flags.StringVarP(&opts.outputFile, "output", "o", "", "output to OUTPUT_FILE (default: stdout)")
	flags.StringVar(&opts.format, "format", "", "output format: pem, der, json, tree, or table (default from config)")
	flags.StringVarP(&opts.configFile, "config", "c", "", "configuration file (JSON or YAML)")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "root",
			Short: "Print the topmost certificate of the chain",
			Args:  cobra.NoArgs,
			RunE:  opts.runRoot,
		},
		&cobra.Command{
			Use:   "intermediates",
			Short: "Print the intermediates between leaf and root, leaf-adjacent first",
			Args:  cobra.NoArgs,
			RunE:  opts.runIntermediates,
		},
		&cobra.Command{
			Use:   "order",
			Short: "Print the whole chain from leaf to root",
			Args:  cobra.NoArgs,
			RunE:  opts.runOrder,
		},
	)

	return rootCmd
}

// prepare loads configuration and checks that inputs were given.
func (o *options) prepare(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return err
	}
	o.cfg = cfg

	if len(o.files) == 0 {
		return ErrInputFileRequired
	}
	return nil
}

// resolveFormat picks the requested format, or the configured default when
// none was requested. A configured default the command cannot produce falls
// back to PEM; an explicit request it cannot produce is an error.
func (o *options) resolveFormat(allowed []string) (string, error) {
	if o.format == "" {
		if slices.Contains(allowed, o.cfg.Defaults.Format) {
			return o.cfg.Defaults.Format, nil
		}
		return config.FormatPEM, nil
	}

	if !slices.Contains(allowed, o.format) {
		return "", fmt.Errorf("%w: %q (supported: %v)", ErrUnsupportedFormat, o.format, allowed)
	}
	return o.format, nil
}

// loadCertificates decodes every input file, keeping file order and the
// order of certificates within each file.
func (o *options) loadCertificates(ctx context.Context) ([]*x509.Certificate, error) {
	var certs []*x509.Certificate

	for _, file := range o.files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := gc.ReadFile(file, maxInputSize)
		if err != nil {
			return nil, fmt.Errorf("error reading input file: %w", err)
		}

		bundle, err := o.decoder.DecodeBundle(data)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", file, err)
		}

		certs = append(certs, bundle...)
		if len(certs) > o.cfg.Defaults.MaxCertificates {
			return nil, fmt.Errorf("%w: more than %d", ErrTooManyCertificates, o.cfg.Defaults.MaxCertificates)
		}
	}

	return certs, nil
}

// warnUnplaced reports certificates that the walk left out.
func (o *options) warnUnplaced(unplaced []*x509.Certificate) {
	if !o.cfg.Defaults.WarnUnplaced || len(unplaced) == 0 {
		return
	}

	o.log.Warnf("%d certificate(s) not part of the chain", len(unplaced))
	for _, cert := range unplaced {
		o.log.Warnf("  not placed: %s", cert.Subject.String())
	}
}

// write sends data to the output file, or to the command's stdout.
func (o *options) write(cmd *cobra.Command, data []byte) error {
	if o.outputFile != "" {
		if err := os.WriteFile(o.outputFile, data, 0o644); err != nil {
			return fmt.Errorf("error writing to output file: %w", err)
		}
		return nil
	}

	_, err := cmd.OutOrStdout().Write(data)
	return err
}
