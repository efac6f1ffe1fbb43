// Monday CLI — инструмент командной строки для работы с monday-proxy:
// создание items/subitems и загрузка файлов через HTTP API.
//
// Использование:
//
//	monday [--api-url URL] [--compact] <command> <subcommand> [flags]
//
// Команды:
//
//	item      Управление items
//	subitem   Управление subitems
//	file      Загрузка файлов
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dyllanvgin/monday-file-backend/internal/cli"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	var apiURL string
	var compact bool

	rootCmd := &cobra.Command{
		Use:           "monday",
		Short:         "Monday proxy CLI — create items and upload files",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "http://localhost:8080", "Proxy server URL")
	rootCmd.PersistentFlags().BoolVar(&compact, "compact", false, "Output compact JSON")

	clientFn := func() *cli.Client { return cli.NewClient(apiURL) }
	outputFn := func() *cli.Output { return cli.NewOutput(compact) }

	rootCmd.AddCommand(
		cli.NewItemCmd(clientFn, outputFn),
		cli.NewSubitemCmd(clientFn, outputFn),
		cli.NewFileCmd(clientFn, outputFn),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
