package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/lukaszgryglicki/numparse"

	_ "github.com/tliron/commonlog/simple"
)

var version = "0.1.0"

var (
	configPath string
	verbosity  int
	cfg        *Config

	log = commonlog.GetLogger("numparse")
)

var (
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed)
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "numparse",
		Short: "Validated, bounds-checked numeric parsing",
		Long: `numparse converts textual numbers - unsigned integers, reals, complex
numbers, and byte sizes - into validated typed values, reporting a precise
error class and the position of the first unconsumed character.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)
			var err error
			cfg, err = LoadConfig(configPath)
			return err
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML defaults file")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newUintCmd())
	rootCmd.AddCommand(newRealCmd())
	rootCmd.AddCommand(newPartCmd())
	rootCmd.AddCommand(newComplexCmd())
	rootCmd.AddCommand(newBytesCmd())

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("numparse v%s\n", version)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// report prints the outcome for one parsed argument. OK is silent,
// ErrTrailing is a warning paired with a usable result, everything else is
// fatal.
func report(what, input string, cursor int, code numparse.Code) error {
	log.Debugf("%s: %q: code=%q cursor=%d", what, input, code, cursor)
	switch code {
	case numparse.OK:
		return nil
	case numparse.ErrTrailing:
		warnColor.Fprintf(os.Stderr, "warning: %s: %s (unparsed: %q)\n", what, code, input[cursor:])
		return nil
	default:
		errorColor.Fprintf(os.Stderr, "error: %s: %s\n", what, code)
		return fmt.Errorf("%s: %s", what, code)
	}
}
