package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/apidirlint/internal/configloader"
	"github.com/yaklabco/apidirlint/internal/logging"
	"github.com/yaklabco/apidirlint/pkg/config"
	"github.com/yaklabco/apidirlint/pkg/fsutil"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the default settings",
		Long: `Create a .apidirlint.yml configuration file in the current directory
holding the default dialect: section anchor, minimum entries, the accepted
Auth, HTTPS and CORS values, and the link markup.

When the file exists, init asks before replacing it on an interactive
terminal and refuses otherwise unless --force is given.`,
		Example: `  apidirlint init
  apidirlint init --full
  apidirlint init --output docs/.apidirlint.yml`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "list every rule in the generated file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", configloader.ProjectConfigFiles[0], "output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.FromContext(commandContext(cmd))

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	exists, err := fsutil.Exists(absPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if exists && !flags.force {
		if !isInteractive(cmd.InOrStdin()) {
			return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrUsage, flags.output)
		}
		ok, err := confirm(cmd.InOrStdin(), cmd.ErrOrStderr(), fmt.Sprintf("Overwrite %s?", flags.output))
		if err != nil {
			return err
		}
		if !ok {
			logger.Info("kept existing configuration file", logging.FieldPath, flags.output)
			return nil
		}
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{Full: flags.full})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := fsutil.WriteAtomic(commandContext(cmd), absPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrIO, flags.output, err)
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	return nil
}

// isInteractive reports whether r is a terminal.
func isInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// confirm asks a yes/no question, defaulting to no.
func confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	fmt.Fprintf(out, "%s [y/N] ", question)

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
