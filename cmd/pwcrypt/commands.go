package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-pwcrypt/hashing"
	"github.com/hasbyte1/go-pwcrypt/internal/config"
	"github.com/hasbyte1/go-pwcrypt/strength"
)

var errMismatch = errors.New("password does not match")

// app is the state shared by all subcommands once configuration is loaded.
type app struct {
	configPath string

	cfg   *config.Config
	log   *slog.Logger
	crypt *hashing.Crypt
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "pwcrypt",
		Short:             "Encode, verify and score passwords",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")

	root.AddCommand(
		&cobra.Command{
			Use:   "encode [password]",
			Short: "Hash a password into descriptor$salt$digest form",
			Args:  cobra.MaximumNArgs(1),
			RunE:  a.encode,
		},
		&cobra.Command{
			Use:   "verify <stored-hash> [password]",
			Short: "Check a password against a stored or legacy hash",
			Args:  cobra.RangeArgs(1, 2),
			RunE:  a.verify,
		},
		&cobra.Command{
			Use:   "score [password]",
			Short: "Report entropy and every unmet strength rule",
			Args:  cobra.MaximumNArgs(1),
			RunE:  a.score,
		},
		&cobra.Command{
			Use:   "info <stored-hash>",
			Short: "Show the algorithm and parameters of a stored hash",
			Args:  cobra.ExactArgs(1),
			RunE:  a.info,
		},
	)
	return root
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = cfg.Logger.NewLogger(cmd.ErrOrStderr())

	a.crypt, err = hashing.NewCrypt(cfg.Crypt.Options())
	if err != nil {
		return fmt.Errorf("invalid crypt configuration: %w", err)
	}
	a.log.Debug("configuration loaded",
		"algorithm", a.crypt.Algorithm().String(),
		"salt_mode", cfg.Crypt.Salt,
		"min_length", cfg.Crypt.MinLength,
		"max_length", cfg.Crypt.MaxLength,
	)
	return nil
}

func (a *app) encode(cmd *cobra.Command, args []string) error {
	password, err := readPassword(cmd, args, 0)
	if err != nil {
		return err
	}
	stored, err := a.crypt.Make(password)
	if err != nil {
		return err
	}
	if stored == "" {
		a.log.Info("placeholder given, nothing to encode")
		return nil
	}
	a.log.Debug("password encoded", "algorithm", a.crypt.Algorithm().String())
	fmt.Fprintln(cmd.OutOrStdout(), stored)
	return nil
}

func (a *app) verify(cmd *cobra.Command, args []string) error {
	stored := args[0]
	password, err := readPassword(cmd, args, 1)
	if err != nil {
		return err
	}
	if _, ok := hashing.DetectFormat(stored); !ok {
		a.log.Warn("stored hash has an unrecognised format", "length", len(stored))
	}
	ok, err := a.crypt.Check(password, stored)
	if err != nil {
		return err
	}
	if !ok {
		return errMismatch
	}
	if needs, _ := a.crypt.NeedsRehash(stored); needs {
		a.log.Info("stored hash should be re-encoded with the current algorithm",
			"current", a.crypt.Algorithm().String())
	}
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}

func (a *app) score(cmd *cobra.Command, args []string) error {
	password, err := readPassword(cmd, args, 0)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "entropy: %.2f\n", strength.Entropy(password))

	failures := strength.Evaluate(password, a.cfg.Strength)
	for _, f := range failures {
		fmt.Fprintf(out, "%s: %s\n", f.Rule, f.Message)
	}
	if len(failures) > 0 {
		return &strength.RuleError{Failures: failures}
	}
	fmt.Fprintln(out, "ok")
	return nil
}

func (a *app) info(cmd *cobra.Command, args []string) error {
	info, err := a.crypt.Info(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "format: %s\n", info.Format)
	fmt.Fprintf(out, "algorithm: %s\n", info.Algorithm)
	fmt.Fprintf(out, "salt: %s\n", info.Salt)

	keys := make([]string, 0, len(info.Params))
	for k := range info.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "%s: %v\n", k, info.Params[k])
	}
	return nil
}

// readPassword returns args[i], or the first line of standard input when
// the argument is absent.
func readPassword(cmd *cobra.Command, args []string, i int) (string, error) {
	if len(args) > i {
		return args[i], nil
	}
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
