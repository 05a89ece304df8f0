// cmd/cipherscope/main.go
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/cipherscope/cipherscope/cmd/cipherscope/commands"
	"github.com/cipherscope/cipherscope/pkg/analyzer"
)

func main() {
	rootCmd := commands.NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		if !commands.WasReported(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		code := analyzer.ExitCode(err)
		if errors.Is(err, commands.ErrUsage) {
			code = 2
		}
		os.Exit(code)
	}
}
