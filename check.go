package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/fatih/color"
	"github.com/mfdls/medford-lsp/utils"
	"github.com/mfdls/medford-lsp/validation"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var ErrDiagnostics = errors.New("documents have errors")

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Validate MEDFORD files and print their diagnostics",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().IntP("jobs", "j", 0, "files checked in parallel, 0 means GOMAXPROCS")
}

var (
	locationColor = color.New(color.Bold)
	errorColor    = color.New(color.FgRed, color.Bold)
	kindColor     = color.New(color.FgYellow)
)

type FileReport struct {
	Path   string
	Result *validation.Result
}

func runCheck(cmd *cobra.Command, args []string) error {
	jobs, _ := cmd.Flags().GetInt("jobs")
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")

	switch colorFlag {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	}

	reports, err := CheckFiles(cmd.Context(), args, jobs)

	if err != nil {
		return err
	}

	if PrintReports(cmd.OutOrStdout(), reports) > 0 {
		return ErrDiagnostics
	}

	return nil
}

// CheckFiles validates every file in parallel. Reports keep the order of paths.
func CheckFiles(ctx context.Context, paths []string, jobs int) ([]FileReport, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	reports := make([]FileReport, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(paths), 1)))

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := checkFile(path)

			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			reports[i] = FileReport{Path: path, Result: res}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

func checkFile(path string) (*validation.Result, error) {
	bytes, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)

	if err != nil {
		return nil, err
	}

	res, err := validation.Validate(utils.ToUri(abs), string(bytes))

	// translation problems still leave a usable result
	if res.Aborted {
		return nil, err
	}

	return res, nil
}

// PrintReports writes "path:line:col: error[kind]: message" lines and
// returns the number of diagnostics written.
func PrintReports(w io.Writer, reports []FileReport) (count int) {
	for _, report := range reports {
		for _, d := range report.Result.Diagnostics {
			kind := ""

			if d.Code != nil {
				kind = fmt.Sprint(d.Code.Value)
			}

			locationColor.Fprintf(w, "%s:%d:%d:", report.Path, d.Range.Start.Line+1, d.Range.Start.Character+1)
			fmt.Fprint(w, " ")
			errorColor.Fprint(w, "error")
			kindColor.Fprintf(w, "[%s]", kind)
			fmt.Fprintf(w, ": %s\n", d.Message)

			for _, info := range d.RelatedInformation {
				fmt.Fprintf(w, "    %s:%d:%d: %s\n", report.Path, info.Location.Range.Start.Line+1, info.Location.Range.Start.Character+1, info.Message)
			}

			count++
		}
	}

	return
}
