package cli

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/claude-notify/claude-notify/internal/config"
	clierrors "github.com/claude-notify/claude-notify/internal/errors"
)

func newInitCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the claude-notify configuration file",
		Long: `Create the configuration file with your Pushover credentials.

Values not given as flags are prompted for when running on a terminal; keys
are read without echo. If the file already exists it is left unchanged (use
--force to overwrite).

Get your application token and user key from: ` + clierrors.CredentialsURL,
		Example: `  # Interactive setup
  claude-notify init

  # Non-interactive setup
  claude-notify init --api-key azGDORePK8gMaC0QOYAMyEEuzJnyUi --user-key uQiRzpo4DXghDmr9QzzfQu27cmVRsG

  # Notify only after 60 seconds away
  claude-notify init --busy-time 60 --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd)
		},
	}
	cmd.GroupID = GroupSetup
	cmd.Flags().String("api-key", "", "Pushover application token")
	cmd.Flags().String("user-key", "", "Pushover user key")
	cmd.Flags().Float64("busy-time", config.DefaultBusyTime, "Seconds since your last message before notifying")
	cmd.Flags().Int("history-limit", config.DefaultHistoryLimit, "Delivery history entries to keep (0 disables)")
	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
	return cmd
}

func (a *app) runInit(cmd *cobra.Command) error {
	force, _ := cmd.Flags().GetBool("force")
	out := cmd.OutOrStdout()

	if config.Exists(a.configPath) && !force {
		fmt.Fprintf(out, "%s %s: already exists at %s %s\n",
			cGreen("✓"), cBold("Config"), cDim(a.configPath), cDim("(use --force to overwrite)"))
		return nil
	}

	apiKey, _ := cmd.Flags().GetString("api-key")
	userKey, _ := cmd.Flags().GetString("user-key")
	busyTime, _ := cmd.Flags().GetFloat64("busy-time")
	historyLimit, _ := cmd.Flags().GetInt("history-limit")

	interactive := stdinIsTerminal(cmd)
	reader := bufio.NewReader(cmd.InOrStdin())

	var err error
	if apiKey == "" && interactive {
		if apiKey, err = prompt(cmd, reader, "Pushover application token", true); err != nil {
			return err
		}
	}
	if userKey == "" && interactive {
		if userKey, err = prompt(cmd, reader, "Pushover user key", true); err != nil {
			return err
		}
	}
	if interactive && !cmd.Flags().Changed("busy-time") {
		answer, err := prompt(cmd, reader, fmt.Sprintf("Busy time in seconds [%g]", busyTime), false)
		if err != nil {
			return err
		}
		if answer != "" {
			v, err := strconv.ParseFloat(answer, 64)
			if err != nil {
				return clierrors.NewArgumentError(fmt.Sprintf("invalid busy time %q", answer), "Enter a number of seconds, e.g. 20")
			}
			busyTime = v
		}
	}

	cfg := &config.Configuration{
		APIKey:       apiKey,
		UserKey:      userKey,
		BusyTime:     busyTime,
		HistoryLimit: historyLimit,
	}
	if problems := config.Validate(cfg); len(problems) > 0 {
		return clierrors.InvalidConfig(a.configPath, problems)
	}

	if err := config.Write(a.configPath, cfg); err != nil {
		return clierrors.FileNotWritable(a.configPath, err)
	}

	fmt.Fprintf(out, "%s %s: created at %s\n", cGreen("✓"), cBold("Config"), cDim(a.configPath))
	fmt.Fprintf(out, "\nNext: run %s to register the hook\n", cCyan("claude-notify install"))
	return nil
}
