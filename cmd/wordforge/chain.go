package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wordforge/internal/fill"
	"wordforge/internal/logging"
	"wordforge/internal/morph"
	"wordforge/internal/observ"
	"wordforge/internal/permute"
	"wordforge/internal/pipeline"
	"wordforge/internal/stats"
)

var chainCmd = &cobra.Command{
	Use:   "chain [flags]",
	Short: "Run the candidate pipeline",
	Long: `Chain connects the enabled stages in fixed order, permute then fill
then morph, over in-process pipes and streams candidates from the
input to the output. With --stats the stream is swallowed and a
summary printed instead. Without any stage flags the input is copied
through unchanged.

A finished run is recorded in the run log (wordforge.log by default)
with a run id, the command line, the candidate count and the elapsed
time. Stats runs skip the log.`,
	Args: cobra.NoArgs,
	RunE: runChain,
}

func init() {
	registerStreamFlags(chainCmd)
	chainCmd.Flags().Bool("permute", false, "enable the permute stage")
	chainCmd.Flags().Bool("lenient", false, "permute: tolerate missing weights instead of failing")
	chainCmd.Flags().StringArray("fill", nil, "enable the fill stage with this mask (repeatable)")
	chainCmd.Flags().StringArray("morph", nil, "enable the morph stage with this rule (repeatable)")
	chainCmd.Flags().Bool("stats", false, "summarize candidates instead of writing them")
	chainCmd.Flags().String("log", "", "run log file (default from wordforge.toml)")
	chainCmd.Flags().String("ui", "auto", "progress display (auto|on|off)")
}

func runChain(cmd *cobra.Command, args []string) error {
	usePermute, err := cmd.Flags().GetBool("permute")
	if err != nil {
		return fmt.Errorf("failed to get permute flag: %w", err)
	}
	lenient, err := cmd.Flags().GetBool("lenient")
	if err != nil {
		return fmt.Errorf("failed to get lenient flag: %w", err)
	}
	fillMasks, err := cmd.Flags().GetStringArray("fill")
	if err != nil {
		return fmt.Errorf("failed to get fill flag: %w", err)
	}
	morphRules, err := cmd.Flags().GetStringArray("morph")
	if err != nil {
		return fmt.Errorf("failed to get morph flag: %w", err)
	}
	statsMode, err := cmd.Flags().GetBool("stats")
	if err != nil {
		return fmt.Errorf("failed to get stats flag: %w", err)
	}
	logFlag, err := cmd.Flags().GetString("log")
	if err != nil {
		return fmt.Errorf("failed to get log flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	cfg, limits, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	in, size, closeIn, err := inputFile(cmd)
	if err != nil {
		return err
	}
	defer closeIn()

	// Stats mode swallows the candidate stream: the report is buffered
	// during the run and printed on stdout afterwards, so --output does
	// not apply.
	var (
		dst      io.Writer
		outName  string
		closeOut func() error
		buffered bytes.Buffer
	)
	if statsMode {
		dst = &buffered
		outName = "stats"
		closeOut = func() error { return nil }
	} else {
		var out *os.File
		out, outName, closeOut, err = outputFile(cmd)
		if err != nil {
			return err
		}
		dst = out
	}

	// Stats runs keep the log file untouched; stage warnings then go to
	// the console instead of the run log.
	var runLog *zap.Logger
	if statsMode {
		runLog, err = logging.NewConsoleLogger("warn")
	} else {
		logPath := logFlag
		if logPath == "" {
			logPath = cfg.LogFile()
		}
		runLog, err = logging.NewRunLogger(logPath, cfg.LogLevel())
	}
	if err != nil {
		_ = closeOut()
		return err
	}
	defer func() { _ = runLog.Sync() }()

	timer := observ.NewTimer()

	var stages []pipeline.Stage
	err = timer.Time("build stages", func() error {
		if usePermute {
			stages = append(stages, permute.New(lenient))
		}
		if len(fillMasks) > 0 {
			fillStage, err := fill.New(cmd.Context(), fillMasks, limits)
			if err != nil {
				return reportMaskError(cmd, err)
			}
			stages = append(stages, fillStage)
		}
		if len(morphRules) > 0 {
			specs, err := morph.ParseSpecs(morphRules)
			if err != nil {
				return err
			}
			stages = append(stages, morph.New(specs, runLog))
		}
		if statsMode {
			stages = append(stages, stats.Stage{})
		}
		return nil
	})
	if err != nil {
		_ = closeOut()
		return err
	}

	stdoutIsData := !statsMode && outName == "stdout"
	useTUI, err := resolveTUI(mode, in != os.Stdin, stdoutIsData)
	if err != nil {
		_ = closeOut()
		return err
	}

	opts := pipeline.Options{Stages: stages, InputSize: size}

	var res pipeline.Result
	var runErr error
	if useTUI {
		res, runErr = runChainWithUI(cmd.Context(), "wordforge chain", stageNames(stages), opts, in, dst)
	} else {
		res, runErr = pipeline.Chain(cmd.Context(), opts, in, dst)
	}
	timer.Observe("pipeline", res.Elapsed, fmt.Sprintf("%d candidates", res.Candidates))

	if closeErr := closeOut(); closeErr != nil && runErr == nil {
		runErr = closeErr
	}

	runID := uuid.NewString()
	if !statsMode {
		fields := []zap.Field{
			zap.String("run_id", runID),
			zap.Strings("command", os.Args),
			zap.Uint64("candidates", res.Candidates),
			zap.String("output", outName),
			zap.Duration("elapsed", res.Elapsed),
		}
		if runErr != nil {
			runLog.Error("run failed", append(fields, zap.Error(runErr))...)
		} else {
			runLog.Info("run complete", fields...)
		}
	}

	if runErr != nil {
		return runErr
	}

	if statsMode {
		if _, err := io.Copy(os.Stdout, &buffered); err != nil {
			return err
		}
	} else if !quiet {
		fmt.Fprintf(os.Stderr, "generated %d candidates in %s -> %s\n",
			res.Candidates, res.Elapsed.Round(time.Millisecond), outName)
	}

	if showTimings && !quiet {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	return nil
}

func stageNames(stages []pipeline.Stage) []string {
	names := make([]string, len(stages))
	for i, st := range stages {
		names[i] = st.Name()
	}
	return names
}
