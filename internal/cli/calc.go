package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/cosmoinvest/cosmo-calculators/internal/calculator"
	"github.com/cosmoinvest/cosmo-calculators/internal/form"
	"github.com/cosmoinvest/cosmo-calculators/pkg/constants"
	"github.com/cosmoinvest/cosmo-calculators/pkg/output"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type CalcOptions struct {
	GlobalOptions

	Schedule bool

	kind   calculator.Kind
	fields form.Fields
}

func DefaultCalcOptions() *CalcOptions {
	return &CalcOptions{
		GlobalOptions: DefaultGlobalOptions(),
		fields:        make(form.Fields),
	}
}

func NewCmdCalc() *cobra.Command {
	o := DefaultCalcOptions()
	cmd := &cobra.Command{
		Use:   "calc KIND --FIELD=VALUE...",
		Short: "Evaluate one calculator.",
		Long: "Evaluate one calculator (sip, ci, ig, emi, gp) from its field values.\n" +
			"Prints \"no result\" when the inputs do not allow a calculation.",
		Example: "  cosmo-calculators calc sip --sip-monthly=10000 --sip-return=12 --sip-years=10",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			defer o.Sync()
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *CalcOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.BoolVar(&o.Schedule, "schedule", o.Schedule, "print the period breakdown (sip, ig, emi)")
	for _, kind := range calculator.Kinds() {
		for _, name := range form.FieldNames(kind) {
			fs.String(name, "", fmt.Sprintf("%s field", kind.Title()))
		}
	}
}

// Complete collects the field flags that were given on the command line.
func (o *CalcOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}

	kind, err := calculator.ParseKind(args[0])
	if err != nil {
		return err
	}
	o.kind = kind

	cmd.Flags().Visit(func(f *pflag.Flag) {
		if _, ok := form.KindForField(f.Name); ok {
			o.fields[f.Name] = f.Value.String()
		}
	})
	return nil
}

func (o *CalcOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	var foreign []string
	for name := range o.fields {
		if owner, _ := form.KindForField(name); owner != o.kind {
			foreign = append(foreign, "--"+name)
		}
	}
	if len(foreign) > 0 {
		return fmt.Errorf("flags %s do not belong to the %s", strings.Join(foreign, ", "), o.kind.Title())
	}

	if o.Schedule && !form.SupportsSchedule(o.kind) {
		return fmt.Errorf("the %s has no schedule", o.kind.Title())
	}
	return nil
}

func (o *CalcOptions) Run(out io.Writer) error {
	f := form.New(o.Logger, form.WithDefault(form.FieldCIFrequency, o.Config.Calculator.DefaultFrequencyText()))
	for name, value := range o.fields {
		if _, err := f.SetField(name, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", name, err)
		}
	}

	if o.Schedule {
		sched, ok := form.EvaluateSchedule(calculator.NewScheduleGenerator(o.Logger), o.kind, f.Snapshot(o.kind).Fields)
		o.Logger.Debug(fmt.Sprintf("evaluated %s schedule", o.kind),
			zap.String("op", "cli.CalcOptions.Run"),
			zap.Bool("shown", ok),
		)
		if !ok {
			fmt.Fprintln(out, "no result")
			return nil
		}
		switch o.OutputFormat {
		case constants.OutputFormatCSV:
			output.CsvSchedule(out, sched)
		default:
			output.PrettySchedule(out, sched)
		}
		return nil
	}

	snap := f.Recalculate(o.kind)
	switch o.OutputFormat {
	case constants.OutputFormatCSV:
		output.CsvFormat(out, []form.Snapshot{snap})
	default:
		output.PrettyFormat(out, snap)
	}
	return nil
}
