// Package main provides a CLI for issuing and checking XP claim nullifiers.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"xpclaim/circuits/claim"
	"xpclaim/config"
	"xpclaim/pkg/nullifier"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "xpclaim",
		Short: "Commitment and nullifier tooling for XP reward claims",
		Long: `xpclaim derives player secrets, issues single-use nullifiers for XP
claims and validates the public inputs submitted with claim proofs.

The master secret is read from the config file or XPCLAIM_MASTER_SECRET.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file (json, yaml or toml)")

	load := func() (*config.Config, zerolog.Logger, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, zerolog.Nop(), err
		}
		lvl, err := cfg.Level()
		if err != nil {
			return nil, zerolog.Nop(), err
		}
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
		return cfg, logger, nil
	}

	rootCmd.AddCommand(
		secretCmd(load),
		generateCmd(load),
		claimCmd(load),
		verifyFormatCmd(),
		validateCmd(load),
		storageKeyCmd(),
		circuitInfoCmd(),
	)
	return rootCmd
}

type loader func() (*config.Config, zerolog.Logger, error)

func newService(cfg *config.Config, logger zerolog.Logger) (*nullifier.Service, error) {
	h, err := cfg.Hasher()
	if err != nil {
		return nil, err
	}
	return nullifier.New(nullifier.WithHasher(h), nullifier.WithLogger(logger)), nil
}

// secretCmd derives the player secret for an address
func secretCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "secret <address>",
		Short: "Derive the player secret for an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), nullifier.GeneratePlayerSecret(args[0], cfg.MasterSecret))
			return nil
		},
	}
}

// generateCmd generates a nullifier with an explicit player secret
func generateCmd(load loader) *cobra.Command {
	var (
		season int64
		secret string
	)

	cmd := &cobra.Command{
		Use:   "generate <address> <xp>",
		Short: "Generate a commitment and nullifier",
		Long: `Generate a commitment and nullifier for one claim. The player secret
is derived from the master secret unless --secret is given.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := load()
			if err != nil {
				return err
			}
			xp, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %v", nullifier.ErrInvalidXPAmount, err)
			}
			if secret == "" {
				if err := cfg.Validate(); err != nil {
					return err
				}
				secret = nullifier.GeneratePlayerSecret(args[0], cfg.MasterSecret)
			}

			svc, err := newService(cfg, logger)
			if err != nil {
				return err
			}
			r, err := svc.GenerateNullifier(args[0], xp, season, secret)
			if err != nil {
				return err
			}
			inputs, err := nullifier.GenerateProofInputs(r, args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), struct {
				*nullifier.Result
				ProofInputs nullifier.ProofPublicInputs `json:"proofInputs"`
			}{r, inputs})
		},
	}
	cmd.Flags().Int64Var(&season, "season", 1, "claim season")
	cmd.Flags().StringVar(&secret, "secret", "", "player secret (at least 32 characters)")
	return cmd
}

// claimCmd runs the full issuing flow
func claimCmd(load loader) *cobra.Command {
	var season int64

	cmd := &cobra.Command{
		Use:   "claim <address> <xp>",
		Short: "Issue a claim ticket: nullifier, proof inputs and storage key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			xp, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %v", nullifier.ErrInvalidXPAmount, err)
			}
			svc, err := newService(cfg, logger)
			if err != nil {
				return err
			}
			ticket, err := svc.Claim(args[0], xp, season, cfg.MasterSecret)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), ticket)
		},
	}
	cmd.Flags().Int64Var(&season, "season", 1, "claim season")
	return cmd
}

func verifyFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-format <nullifier>",
		Short: "Check that a nullifier is a field element in (0, p)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd.OutOrStdout(), map[string]bool{"valid": nullifier.VerifyNullifierFormat(args[0])})
		},
	}
}

// validateCmd validates a public-input tuple, given as arguments or as a
// JSON array on stdin.
func validateCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [nullifier xp address season]",
		Short: "Validate proof public inputs",
		Long: `Validate proof public inputs. With no arguments a JSON array is read
from stdin. Exits non-zero when the inputs are rejected.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := load()
			if err != nil {
				return err
			}

			var res nullifier.ValidationResult
			if len(args) > 0 {
				res = nullifier.New(nullifier.WithLogger(logger)).ValidateProofInputs(args)
			} else {
				var inputs []any
				dec := json.NewDecoder(cmd.InOrStdin())
				dec.UseNumber()
				if err := dec.Decode(&inputs); err != nil {
					return fmt.Errorf("%s: %w", nullifier.KindInvalidInputsArray, err)
				}
				res = nullifier.ValidateProofInputsAny(inputs)
			}

			if err := writeJSON(cmd.OutOrStdout(), res); err != nil {
				return err
			}
			if !res.Valid {
				return fmt.Errorf("%s: %s", res.Error, res.Reason)
			}
			return nil
		},
	}
}

func storageKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "storage-key <nullifier>",
		Short: "Derive the storage lookup key of a nullifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), nullifier.CreateStorageKey(args[0]))
			return nil
		},
	}
}

func circuitInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "circuit-info",
		Short: "Compile the reference claim circuit and report its size",
		RunE: func(cmd *cobra.Command, args []string) error {
			ccs, err := claim.Compile()
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]int{
				"constraints":   ccs.GetNbConstraints(),
				"public_inputs": ccs.GetNbPublicVariables() - 1,
			})
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
