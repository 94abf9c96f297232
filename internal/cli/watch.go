package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/cosmoinvest/cosmo-calculators/internal/calculator"
	"github.com/cosmoinvest/cosmo-calculators/internal/dispatch"
	"github.com/cosmoinvest/cosmo-calculators/internal/form"
	"github.com/cosmoinvest/cosmo-calculators/pkg/constants"
	"github.com/cosmoinvest/cosmo-calculators/pkg/output"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type WatchOptions struct {
	GlobalOptions

	Debounce time.Duration
}

func DefaultWatchOptions() *WatchOptions {
	return &WatchOptions{GlobalOptions: DefaultGlobalOptions()}
}

func NewCmdWatch() *cobra.Command {
	o := DefaultWatchOptions()
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Recalculate as field changes arrive on stdin.",
		Long: "Reads one change per line, either FIELD=VALUE or \"reset KIND\", and prints\n" +
			"a calculator's panel once its fields have been quiet for the debounce delay.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			defer o.Sync()
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *WatchOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.DurationVar(&o.Debounce, "debounce", o.Debounce, "quiet period override (e.g. 250ms)")
}

// Complete applies the debounce override on top of the configuration.
func (o *WatchOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	if o.Debounce <= 0 {
		o.Debounce = o.Config.Calculator.Debounce
	}
	return nil
}

// Run feeds every line of in to a dispatcher until in is exhausted or ctx is
// done. Pending calculations are flushed before returning.
func (o *WatchOptions) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	var mu sync.Mutex
	observe := func(snap form.Snapshot) {
		mu.Lock()
		defer mu.Unlock()
		switch o.OutputFormat {
		case constants.OutputFormatCSV:
			output.CsvFormat(out, []form.Snapshot{snap})
		default:
			output.PrettyFormat(out, snap)
		}
	}

	f := form.New(o.Logger, form.WithDefault(form.FieldCIFrequency, o.Config.Calculator.DefaultFrequencyText()))
	d := dispatch.New(o.Logger, f, o.Debounce, observe)
	defer d.Close()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			d.Flush()
			return nil
		case line, ok := <-lines:
			if !ok {
				d.Flush()
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("failed to read input: %w", err)
					}
				default:
				}
				return nil
			}
			if err := o.apply(d, line); err != nil {
				o.Logger.Warn(err.Error(),
					zap.String("op", "cli.WatchOptions.Run"),
				)
			}
		}
	}
}

func (o *WatchOptions) apply(d *dispatch.Dispatcher, line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	if rest, ok := strings.CutPrefix(line, "reset "); ok {
		kind, err := calculator.ParseKind(rest)
		if err != nil {
			return err
		}
		d.Reset(kind)
		return nil
	}

	field, value, ok := strings.Cut(line, "=")
	if !ok {
		return fmt.Errorf("expected FIELD=VALUE or \"reset KIND\", got %q", line)
	}
	return d.Input(strings.TrimSpace(field), value)
}
