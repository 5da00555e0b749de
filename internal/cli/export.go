package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/karnaugh/config"
	"github.com/katalvlaran/karnaugh/latex"
	"github.com/katalvlaran/karnaugh/render"
	"github.com/katalvlaran/karnaugh/session"
)

// exportOptions are the flags shared by latex and render.
type exportOptions struct {
	File   string
	Output string
	Watch  bool
}

// encodeFunc writes doc in one output format.
type encodeFunc func(w io.Writer, doc session.Document, cfg *config.Config) error

func encodeLatex(w io.Writer, doc session.Document, cfg *config.Config) error {
	return latex.Write(w, doc, latex.WithOvalShrink(cfg.Latex.OvalShrink))
}

// pngEncoder keeps one renderer per configuration, so --watch redraws reuse
// its label records.
func pngEncoder() encodeFunc {
	var (
		r    *render.Renderer
		last *config.Config
	)
	return func(w io.Writer, doc session.Document, cfg *config.Config) error {
		if r == nil || cfg != last {
			r = render.NewRenderer(
				render.WithCellSize(cfg.Render.CellSize),
				render.WithColors(cfg.PaletteHex()),
				render.WithLineWidths(cfg.Render.LineWidth, cfg.Render.SelectedLineWidth),
				render.WithInset(cfg.Render.Inset),
			)
			last = cfg
		}
		return r.PNG(w, doc)
	}
}

func newLatexCmd() *cobra.Command {
	opts := &exportOptions{}
	cmd := &cobra.Command{
		Use:   "latex",
		Short: "Export a session file as a kvmacros \\karnaughmap",
		Example: `  kvmap latex -f session.yaml
  kvmap latex -f session.yaml -o map.tex --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, opts, encodeLatex)
		},
	}
	addExportFlags(cmd, opts)
	return cmd
}

func newRenderCmd() *cobra.Command {
	opts := &exportOptions{}
	cmd := &cobra.Command{
		Use:     "render",
		Short:   "Render a session file to PNG",
		Example: `  kvmap render -f session.yaml -o map.png`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, opts, pngEncoder())
		},
	}
	addExportFlags(cmd, opts)
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func addExportFlags(cmd *cobra.Command, opts *exportOptions) {
	f := cmd.Flags()
	f.StringVarP(&opts.File, "file", "f", "", "session file (YAML)")
	f.StringVarP(&opts.Output, "output", "o", "", "output file (default: stdout)")
	f.BoolVar(&opts.Watch, "watch", false, "re-export whenever the session or config file changes")
	_ = cmd.MarkFlagRequired("file")
}

func runExport(cmd *cobra.Command, opts *exportOptions, encode encodeFunc) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}
	export := func(cfg *config.Config) error {
		s, err := newSession(cfg, cliCtx.Logger, opts.File)
		if err != nil {
			return err
		}
		return writeOutput(cmd, opts.Output, func(w io.Writer) error {
			return encode(w, s.Document(), cfg)
		})
	}

	if err := export(cliCtx.Config); err != nil {
		if !opts.Watch {
			return err
		}
		cliCtx.Logger.Warn("export failed", zap.String("reason", "start"), zap.Error(err))
	}
	if !opts.Watch {
		return nil
	}
	return watch(cmd.Context(), cliCtx, opts.File, export)
}

// writeOutput renders into memory first so a failed export never truncates
// an existing output file.
func writeOutput(cmd *cobra.Command, path string, fn func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return err
	}
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("cli: write %s: %w", path, err)
	}
	return nil
}
