package main

import (
	"io"
	"os"

	"github.com/sagernet/sing-deque/common/log"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	verbose bool
	output  string
)

func main() {
	command := cobra.Command{
		Use:   "deque-demo [step...]",
		Short: "Linked list deque demo.",
		Long: "Linked list deque demo.\n\n" +
			"Without arguments, runs the built-in scenario. Otherwise each argument is one step:\n" +
			"  first:N last:N pop-first pop-last get:I rget:I size empty print copy",
		Example: "deque-demo first:5 first:10 last:25 print get:1 pop-last size",
		Version: version,
		Run:     run,
	}
	command.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose mode")
	command.Flags().StringVarP(&output, "output", "o", "", "Write results to file instead of stdout")
	err := command.Execute()
	if err != nil {
		logrus.Fatal(err)
	}
}

func run(cmd *cobra.Command, args []string) {
	log.SetVerbose(verbose)
	logger := log.NewLogger("deque-demo")

	var writer io.Writer = os.Stdout
	if output != "" {
		file, err := os.Create(output)
		if err != nil {
			logger.Fatal("create output: ", err)
		}
		defer file.Close()
		writer = file
	}

	var script []step
	if len(args) == 0 {
		script = defaultScript()
	} else {
		var err error
		script, err = parseScript(args)
		if err != nil {
			logger.Fatal(err)
		}
	}
	logger.Debug("running ", len(script), " steps")
	err := runScript(writer, script, logger)
	if err != nil {
		logger.Fatal(err)
	}
}
