package cli

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/askiada/go-lazy/internal/config"
	"github.com/askiada/go-lazy/internal/data"
	"github.com/askiada/go-lazy/pkg/pipeline/drawer"
	"github.com/askiada/go-lazy/pkg/pipeline/logger"
	"github.com/askiada/go-lazy/pkg/pipeline/measure"
)

// flagKeys maps flags to their configuration key.
var flagKeys = map[string]string{
	"input":      "input",
	"graph":      "graph",
	"first-name": "first_name",
	"log-level":  "log.level",
	"log-format": "log.format",
}

func newEmployeesCmd(out io.Writer, configFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employees",
		Short: "Rename employees, add one year to their jobs and fix the QA position.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.New(*configFile)
			if err != nil {
				return err
			}

			err = bindFlags(v, cmd)
			if err != nil {
				return err
			}

			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			log, err := newLogger(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			return runEmployees(cfg, log, out)
		},
	}

	cmd.Flags().StringP("input", "i", "", "YAML file of employees, the sample employees when empty")
	cmd.Flags().StringP("graph", "g", "", "write the pipeline graph to this DOT file")
	cmd.Flags().String("first-name", "", "first name given to every employee")
	cmd.Flags().String("log-level", "", "log level")
	cmd.Flags().String("log-format", "", "log format, console or json")

	return cmd
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for flag, key := range flagKeys {
		err := v.BindPFlag(key, cmd.Flags().Lookup(flag))
		if err != nil {
			return errors.Wrapf(err, "unable to bind flag %s", flag)
		}
	}

	return nil
}

func loadEmployees(fileName string) ([]data.Employee, error) {
	if fileName == "" {
		return data.SampleEmployees(), nil
	}

	file, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", fileName)
	}
	defer file.Close()

	return data.ReadEmployees(file)
}

func runEmployees(cfg *config.Config, log zerolog.Logger, out io.Writer) error {
	employees, err := loadEmployees(cfg.Input)
	if err != nil {
		return err
	}

	msr := measure.NewDefaultMeasure()
	normalized := data.Normalize(employees, cfg.FirstName,
		logger.PipelineLogger(log),
		measure.PipelineMeasure(msr),
	)

	err = data.WriteEmployees(out, normalized.Force())
	if err != nil {
		return err
	}

	for _, cost := range measure.Ranking(msr) {
		log.Debug().
			Str(logger.FieldStep, cost.StepName).
			Int64("calls", cost.Calls).
			Dur(logger.FieldDuration, cost.Average).
			Msg("step cost")
	}

	if cfg.Graph == "" {
		return nil
	}

	drw := drawer.NewFileDrawer(cfg.Graph, drawer.GraphAttribute("rankdir", "LR"))

	err = drawer.DrawPipeline(drw, normalized.Steps(), msr)
	if err != nil {
		return errors.Wrapf(err, "unable to draw %s", cfg.Graph)
	}

	log.Info().Str("graph", cfg.Graph).Msg("pipeline graph written")

	return nil
}
