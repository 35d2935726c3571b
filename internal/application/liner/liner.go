package liner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/es-debug/liner/internal/liner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

func Start() error {
	return NewCommand().Execute()
}

// NewCommand builds the liner root command with its own viper instance.
func NewCommand() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "liner",
		Short: "Print every line of a file, glob or URL as a (number, content) pair",
		Example: `  liner -p main.go
  liner -p 'logs/*.log' -o lines.txt
  LINER_PATH=https://example.com/robots.txt liner`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags, err := readCMDFlags(v)
			if err != nil {
				return fmt.Errorf("read flags: %w", err)
			}

			return run(cmd.Context(), flags, cmd.OutOrStdout(), newLogger(cmd.ErrOrStderr(), flags.verbose))
		},
	}

	defineFlags(cmd.Flags())
	bindFlags(v, cmd.Flags())

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(ctx context.Context, flags cmdFlags, stdout io.Writer, logger *slog.Logger) (err error) {
	// A failed read cancels egCtx, which also aborts HTTP bodies still being read.
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(flags.workers)

	sources, err := liner.Open(egCtx, flags.path, nil)
	if err != nil {
		return fmt.Errorf("open sources: %w", err)
	}

	defer func() {
		if closeErr := liner.Close(sources); closeErr != nil && err == nil {
			err = fmt.Errorf("close sources: %w", closeErr)
		}
	}()

	lines, err := readSources(egCtx, eg, sources, flags.maxLineSize, logger)
	if err != nil {
		return err
	}

	out := stdout

	if flags.output != "" {
		var f *os.File

		f, err = os.OpenFile(flags.output, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("open output: %w", err)
		}

		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close output: %w", closeErr)
			}
		}()

		out = f
	}

	if err := write(out, sources, lines); err != nil {
		return fmt.Errorf("write lines: %w", err)
	}

	return nil
}

func readSources(
	ctx context.Context,
	eg *errgroup.Group,
	sources []liner.Source,
	maxLineSize int,
	logger *slog.Logger,
) ([][]liner.Line, error) {
	reader := liner.NewReader(maxLineSize)
	lines := make([][]liner.Line, len(sources))

	for i, src := range sources {
		eg.Go(func() error {
			logger.Debug("reading source", slog.String("name", src.Name))

			srcLines, err := reader.Read(ctx, src.Body)
			if err != nil {
				return fmt.Errorf("read %s: %w", src.Name, err)
			}

			logger.Debug("source read", slog.String("name", src.Name), slog.Int("lines", len(srcLines)))

			lines[i] = srcLines

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("eg.Wait(): %w", err)
	}

	return lines, nil
}

func write(w io.Writer, sources []liner.Source, lines [][]liner.Line) error {
	bw := bufio.NewWriter(w)

	for i, src := range sources {
		fmt.Fprintf(bw, "# %s\n", src.Name)

		for _, l := range lines[i] {
			fmt.Fprintln(bw, l)
		}
	}

	return bw.Flush()
}
