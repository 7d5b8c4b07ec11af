package main

import (
	"fmt"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func unwrap[T any](value T, err error) T {
	check(err)
	return value
}

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

var (
	args struct {
		Endpoint string
		Output   string
	}

	rootCmd = &cobra.Command{
		Use:          "schoolctl",
		Short:        "School records client",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _args []string) error {
			if args.Output != outputJSON && args.Output != outputYAML {
				return fmt.Errorf("unknown output format %q", args.Output)
			}
			return nil
		},
	}
)

func defaultEndpoint() string {
	if endpoint := os.Getenv("SCHOOL_ENDPOINT"); len(endpoint) > 0 {
		return endpoint
	}
	return "http://localhost:8000"
}

func initLogging() {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.ConsoleSeparator = " "
	config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.StampMilli)
	log = unwrap(config.Build())
}

func initCommands() {
	rootCmd.PersistentFlags().StringVar(&args.Endpoint, "endpoint", defaultEndpoint(), "Records service endpoint")
	rootCmd.PersistentFlags().StringVarP(&args.Output, "output", "o", outputJSON, "Output format: json or yaml")

	rootCmd.AddCommand(makeGetCommand())
	rootCmd.AddCommand(makeCreateCommand())
	rootCmd.AddCommand(makeUpdateCommand())
	rootCmd.AddCommand(makeDeleteCommand())
}

func init() {
	initLogging()
	initCommands()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Command failed: %s\n", err.Error())
		os.Exit(1)
	}
}
