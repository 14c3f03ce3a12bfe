package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Veraticus/expense-tally/internal/cli"
	"github.com/Veraticus/expense-tally/internal/common"
	"github.com/Veraticus/expense-tally/internal/config"
	"github.com/Veraticus/expense-tally/internal/ledger"
	"github.com/Veraticus/expense-tally/internal/tui/viewmodel"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var errMalformedRow = errors.New("malformed row")

// rowError describes a CSV row the ledger rejected.
type rowError struct {
	err  error
	line int
}

func reportCmd() *cobra.Command {
	var (
		input  string
		format string
		style  string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Tally expenses from CSV and print the list and summary",
		Long: `Read expenses as CSV rows of description,amount,category (stdin by default),
record each one, and print the list, the running total and the per-category summary.

Rows that fail validation are reported with their line number and skipped,
unless --strict is set. An optional header row and lines starting with # are ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "text" && format != "markdown" {
				return fmt.Errorf("invalid format %q: must be text or markdown", format)
			}

			app, err := loadApp()
			if err != nil {
				return err
			}

			r := cmd.InOrStdin()
			if input != "" && input != "-" {
				f, err := os.Open(config.ExpandPath(input))
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer f.Close()
				r = f
			}

			l := newLedger(app)
			rejected, err := loadExpenses(l, r, strict)
			if err != nil {
				return err
			}

			for _, re := range rejected {
				title, body := viewmodel.ValidationMessage(re.err)
				fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatWarning(fmt.Sprintf("line %d: %s. %s", re.line, title, body)))
			}

			report, err := newFormatter(app).Report(l)
			if err != nil {
				return fmt.Errorf("failed to build report: %w", err)
			}

			common.LogDebug("report built", common.Fields{
				"recorded": l.Len(),
				"rejected": len(rejected),
			})

			if format == "markdown" {
				return writeMarkdown(cmd.OutOrStdout(), report, style)
			}
			writeText(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "CSV file to read (default: stdin)")
	cmd.Flags().StringVar(&format, "format", "text", "output format (text, markdown)")
	cmd.Flags().StringVar(&style, "style", "auto", "glamour style for markdown output (auto, dark, light, notty, ascii)")
	cmd.Flags().BoolVar(&strict, "strict", false, "stop at the first invalid row")

	return cmd
}

// loadExpenses adds every CSV row to l. Rows the ledger rejects are returned;
// with strict set the first one aborts the load instead.
func loadExpenses(l *ledger.Ledger, r io.Reader, strict bool) ([]rowError, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var rejected []rowError
	first := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		line, _ := reader.FieldPos(0)

		if first {
			first = false
			if isHeader(record) {
				continue
			}
		}

		if len(record) != 3 {
			return nil, common.NewUserError(
				fmt.Sprintf("line %d: expected 3 fields (description,amount,category), got %d", line, len(record)),
				errMalformedRow,
			)
		}

		if _, err := l.Add(record[0], record[1], record[2]); err != nil {
			if !ledger.IsValidationError(err) {
				return nil, err
			}
			if strict {
				title, _ := viewmodel.ValidationMessage(err)
				return nil, common.NewUserError(fmt.Sprintf("line %d: %s", line, title), err)
			}
			rejected = append(rejected, rowError{line: line, err: err})
		}
	}

	return rejected, nil
}

func isHeader(record []string) bool {
	return len(record) == 3 &&
		strings.EqualFold(strings.TrimSpace(record[0]), "description") &&
		strings.EqualFold(strings.TrimSpace(record[1]), "amount") &&
		strings.EqualFold(strings.TrimSpace(record[2]), "category")
}

func writeText(w io.Writer, report viewmodel.Report) {
	fmt.Fprintln(w, cli.FormatTitle("Recorded expenses"))
	if len(report.Entries) == 0 {
		fmt.Fprintln(w, cli.SubtleStyle.Render(viewmodel.EmptySummaryMessage))
		return
	}
	for _, entry := range report.Entries {
		fmt.Fprintln(w, entry)
	}
	fmt.Fprintln(w, cli.TotalStyle.Render(report.Total))
	fmt.Fprintln(w)

	fmt.Fprintln(w, cli.FormatTitle(viewmodel.SummaryTitle))
	for _, line := range report.Summary.Lines {
		fmt.Fprintln(w, line.String())
	}
}

func writeMarkdown(w io.Writer, report viewmodel.Report, style string) error {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(100)}
	if style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := renderer.Render(report.Markdown())
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}

	_, err = io.WriteString(w, out)
	return err
}
