package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/blockhint/internal/config"
	"github.com/abhisek/blockhint/internal/diagnosis"
	"github.com/abhisek/blockhint/internal/hints"
	"github.com/abhisek/blockhint/internal/pipeline"
	"github.com/abhisek/blockhint/internal/submission"
	"github.com/abhisek/blockhint/internal/telemetry"
	"github.com/abhisek/blockhint/internal/ui/theme"
)

// errNoHint makes the process exit non-zero when no rule matched.
var errNoHint = errors.New("no hint available")

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Diagnose a block program locally and print its hint",
	Long: `Run the classifier and hint generators on a Blockly XML file.

Pass the program with --code and the run's error text with --error or
--error-file, or pass a whole submission with --input (the same JSON the
HTTP service accepts). The command exits non-zero when no hint is found.`,
	RunE: runDiagnose,
}

func init() {
	diagnoseCmd.Flags().String("input", "", "JSON submission file ({code, output, error, status, code_language})")
	diagnoseCmd.Flags().String("code", "", "Blockly XML file (- for stdin)")
	diagnoseCmd.Flags().String("error", "", "Error text reported by the run")
	diagnoseCmd.Flags().String("error-file", "", "File holding the error text reported by the run")
	diagnoseCmd.Flags().String("status", "", `Run status: "0" success, "1" failure (default: "1" when error text is given)`)
	diagnoseCmd.Flags().String("language", string(diagnosis.LanguagePython), "Authoring language: Python or Arduino")
	diagnoseCmd.Flags().Bool("plain", false, "Print unstyled text")
	diagnoseCmd.MarkFlagsMutuallyExclusive("input", "code")
	diagnoseCmd.MarkFlagsMutuallyExclusive("error", "error-file")
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	req, err := readSubmission(cmd)
	if err != nil {
		return err
	}

	logger, err := telemetry.NewLogger(config.LogConfig{Level: "warn", Format: "text"}, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	p := pipeline.New(pipeline.WithLogger(logger))

	plain, _ := cmd.Flags().GetBool("plain")
	out := cmd.OutOrStdout()

	res, err := p.Diagnose(cmd.Context(), req.Outcome(), req.Code)
	if err != nil {
		if pipeline.NoHintAvailable(err) {
			printNoHint(out, plain, err)
			return errNoHint
		}
		return err
	}

	if plain {
		fmt.Fprintln(out, res.Document.String())
		return nil
	}
	fmt.Fprintln(out, renderHint(res))
	return nil
}

// readSubmission builds the request from --input or the individual flags and
// validates it against the request schema.
func readSubmission(cmd *cobra.Command) (*submission.Request, error) {
	if path, _ := cmd.Flags().GetString("input"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		return submission.Decode(raw)
	}

	codePath, _ := cmd.Flags().GetString("code")
	if codePath == "" {
		return nil, fmt.Errorf("either --input or --code is required")
	}
	code, err := readSource(cmd.InOrStdin(), codePath)
	if err != nil {
		return nil, fmt.Errorf("read code: %w", err)
	}

	errText, _ := cmd.Flags().GetString("error")
	if path, _ := cmd.Flags().GetString("error-file"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read error text: %w", err)
		}
		errText = string(b)
	}

	status, _ := cmd.Flags().GetString("status")
	if status == "" {
		status = string(diagnosis.StatusSuccess)
		if strings.TrimSpace(errText) != "" {
			status = string(diagnosis.StatusFailure)
		}
	}
	lang, _ := cmd.Flags().GetString("language")

	raw, err := json.Marshal(submission.Request{
		Code:         code,
		Error:        errText,
		Status:       status,
		CodeLanguage: lang,
	})
	if err != nil {
		return nil, err
	}
	return submission.Decode(raw)
}

func readSource(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

// renderHint lays the six sections out in a card, one styled heading each.
func renderHint(res *pipeline.Result) string {
	var b strings.Builder
	title := string(res.Diagnosis.Category)
	if info := diagnosis.GetCategory(res.Diagnosis.Category); info != nil {
		title = info.Label
	}
	b.WriteString(theme.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("matched by " + res.Diagnosis.MatchedBy))

	for _, s := range hints.Sections() {
		b.WriteString("\n\n")
		if l := s.Label(); l != "" {
			b.WriteString(theme.SectionLabel.Render(l))
			b.WriteString("\n")
		}
		style := theme.Body
		if s == hints.SectionExample {
			style = theme.Example
		}
		b.WriteString(style.Render(res.Document.Body(s)))
	}
	return theme.Card.Render(b.String())
}

func printNoHint(w io.Writer, plain bool, reason error) {
	if plain {
		fmt.Fprintln(w, hints.NoHintMessage)
		return
	}
	fmt.Fprintln(w, theme.Failure.Render(hints.NoHintMessage))
	fmt.Fprintln(w, theme.Subtitle.Render(reason.Error()))
}
