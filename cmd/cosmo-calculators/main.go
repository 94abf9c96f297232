package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cosmoinvest/cosmo-calculators/internal/cli"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	command := NewCalculatorsCommand()
	if err := command.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func NewCalculatorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cosmo-calculators [command] [flags]",
		Short: "cosmo-calculators runs the SIP, compound interest, investment growth, EMI and goal planning calculators.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(cli.NewCmdCalc())
	cmd.AddCommand(cli.NewCmdWatch())
	cmd.AddCommand(cli.NewCmdServe())
	cmd.AddCommand(cli.NewCmdVersion())

	return cmd
}
