package main

import (
	"os"

	lsp "github.com/mfdls/medford-lsp/providers"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var rootCmd = &cobra.Command{
	Use:           "mfdls",
	Short:         "MEDFORD language server and checker",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the language server (stdio by default)",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func serveFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	flags.Bool("tcp", false, "listen on TCP instead of stdio")
	flags.Bool("ws", false, "listen on websocket instead of stdio")
	flags.String("host", "127.0.0.1", "host for --tcp and --ws")
	flags.Int("port", 2087, "port for --tcp and --ws")
	flags.String("log-file", "", "write logs to this file")
	flags.CountP("verbose", "v", "log verbosity, repeat for more")

	return flags
}

func init() {
	rootCmd.PersistentFlags().String("schema", "", "schema TOML file, the embedded schema is used by default")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	serveCmd.Flags().AddFlagSet(serveFlags())

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tokensCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	opts := lsp.Options{}

	opts.SchemaPath, _ = flags.GetString("schema")
	opts.Tcp, _ = flags.GetBool("tcp")
	opts.WebSocket, _ = flags.GetBool("ws")
	opts.Host, _ = flags.GetString("host")
	opts.Port, _ = flags.GetInt("port")

	logFile, _ := flags.GetString("log-file")
	verbosity, _ := flags.GetCount("verbose")

	// stdout belongs to the protocol when serving stdio
	if logFile == "" && !opts.Tcp && !opts.WebSocket {
		logFile = os.DevNull
	}

	var path *string

	if logFile != "" {
		path = &logFile
	}

	commonlog.Configure(verbosity, path)

	return lsp.StartServer(opts)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
