// Copyright (c) 2026 Keymaster Team
// Envalidator - environment file validation
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	clog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/toeirei/envalidator/internal/config"
	"github.com/toeirei/envalidator/internal/envfile"
	"github.com/toeirei/envalidator/internal/i18n"
	"github.com/toeirei/envalidator/internal/keyset"
	"github.com/toeirei/envalidator/internal/logging"
	"github.com/toeirei/envalidator/internal/prompt"
	"github.com/toeirei/envalidator/internal/report"
)

// run is the whole pipeline of one invocation: optional init, missing-key
// check, optional fix, empty-value check. Warnings never fail the run;
// file access and parse errors abort it.
func run(cmd *cobra.Command, args []string) error {
	cfgPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	defaults := map[string]any{
		"env-file":     ".env",
		"example-file": ".env.example",
		"lang":         "en",
	}
	cfg, cfgErr := config.LoadConfig[config.Config](cmd, defaults, cfgPath)
	if cfgErr != nil && !errors.As(cfgErr, &viper.ConfigFileNotFoundError{}) {
		return fmt.Errorf("%s: %w", i18n.T("config.error_load"), cfgErr)
	}

	i18n.Init(cfg.Language)
	logger := logging.New(cmd.ErrOrStderr(), cfg.Debug)

	if cfgErr != nil {
		// First run, or the config file was deleted: persist the
		// defaults so configuration is discoverable. Warn, don't fail.
		if writeErr := config.WriteConfigFile(&cfg, false); writeErr != nil {
			logger.Warn(i18n.T("config.warn_write_default", writeErr))
		}
	}

	initFlag, _ := cmd.Flags().GetBool("init")
	fixFlag, _ := cmd.Flags().GetBool("fix")
	approve, _ := cmd.Flags().GetBool("approve")

	if initFlag && !approve && !prompt.IsTerminal(cmd.InOrStdin()) {
		logger.Debug("stdin is not a terminal; confirmation will fail unless input is piped")
	}

	if initFlag {
		if err := initEnvFile(cmd, logger, cfg, approve); err != nil {
			return err
		}
	}

	envKeys, err := envfile.Keys(cfg.EnvFile)
	if err != nil {
		return err
	}
	exampleKeys, err := envfile.Keys(cfg.ExampleFile)
	if err != nil {
		return err
	}

	styled := !cfg.Plain && term.IsTerminal(int(os.Stdout.Fd()))
	renderer := report.NewRenderer(styled)

	missing := keyset.Diff(envKeys, exampleKeys)
	if missing.Len() > 0 {
		keys := keyset.Sorted(missing)
		logger.Warn(i18n.T("check.missing_keys", cfg.ExampleFile, strings.Join(keys, ", ")))
		fmt.Fprint(cmd.OutOrStdout(), renderer.KeyList(i18n.T("report.missing_title"), keys))
	}

	if fixFlag {
		if _, err := envfile.FixMissing(logger, cfg.EnvFile, cfg.ExampleFile); err != nil {
			return err
		}
	}

	empty, err := envfile.EmptyKeys(cfg.EnvFile)
	if err != nil {
		return err
	}
	if empty.Len() > 0 {
		keys := keyset.Sorted(empty)
		logger.Warn(i18n.T("check.empty_keys", cfg.EnvFile, strings.Join(keys, ", ")))
		fmt.Fprint(cmd.OutOrStdout(), renderer.KeyList(i18n.T("report.empty_title"), keys))
	}

	if missing.Len() == 0 && empty.Len() == 0 {
		logger.Info(i18n.T("check.ok", cfg.ExampleFile, cfg.EnvFile))
	}

	return nil
}

// initEnvFile creates (or, after confirmation, overwrites) the env file
// with one empty-valued line per key of the example file. Declining the
// confirmation cancels the initialization but not the rest of the run.
func initEnvFile(cmd *cobra.Command, logger *clog.Logger, cfg config.Config, approve bool) error {
	if _, err := os.Stat(cfg.EnvFile); err == nil {
		if !approve {
			confirmer := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
			ok, err := confirmer.Confirm(i18n.T("init.confirm_overwrite", cfg.EnvFile))
			if err != nil {
				return fmt.Errorf("%s: %w", i18n.T("init.error_no_input"), err)
			}
			if !ok {
				logger.Info(i18n.T("init.cancelled"))
				return nil
			}
		}
		logger.Info(i18n.T("init.overwriting", cfg.EnvFile))
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", cfg.EnvFile, err)
	}

	exampleKeys, err := envfile.Keys(cfg.ExampleFile)
	if err != nil {
		return err
	}

	logger.Info(i18n.T("init.start", cfg.EnvFile, cfg.ExampleFile))
	if err := envfile.Init(cfg.EnvFile, exampleKeys); err != nil {
		return err
	}
	logger.Info(i18n.T("init.done", cfg.EnvFile, exampleKeys.Len(), cfg.ExampleFile))
	return nil
}
