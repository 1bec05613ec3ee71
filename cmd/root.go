package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/finanzas-ar/resumen/extractor"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Embedded default configuration. Issuer pattern overrides live here;
// the engine falls back to built-in patterns for anything unset.
const defaultConfigYAML = `
liquidacion:
  patterns:
    pago_minimo: PAGO\s+M[IÍ]NIMO[:\s]*\$?\s*(-?[\d.,]+)?
    cierre: Cierre[:\s]+(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})
    vencimiento: Vencimiento[:\s]+(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})
  issuers:
    AMEX:
      total: SALDO\s+TOTAL\s+A\s+PAGAR[:\s]*\$?\s*(-?[\d.,]+)
    MASTERCARD:
      total: TOTAL\s+A\s+PAGAR[:\s]*\$?\s*(-?[\d.,]+)
    VISA:
      total: TOTAL\s+A\s+PAGAR[:\s]*\$?\s*(-?[\d.,]+)
`

var (
	cfgFile string
	verbose bool
	rootCmd = &cobra.Command{
		Use:   "resumen [filename]",
		Short: "Extract structured data from credit card statements",
		Long: `resumen is a utility to extract structured data out of Argentine
credit card statement PDFs (and photographed statements via OCR).`,
		Args: cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 1 {
				extractor.ExecuteAgainstPath(args[0])
				return
			}
			cmd.Help()
		},
	}
)

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogging)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default is ./.resumen.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

func initLogging() {
	if !verbose {
		log.SetOutput(io.Discard)
	} else {
		log.SetFlags(log.Ltime | log.Lmsgprefix)
		log.SetPrefix("INFO: ")
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigName(".resumen")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if err := viper.ReadConfig(bytes.NewBufferString(defaultConfigYAML)); err != nil {
				fmt.Printf("Error loading embedded configuration: %v\n", err)
				os.Exit(1)
			}
		} else {
			fmt.Printf("Error reading config file: %v\n", err)
			os.Exit(1)
		}
	}
}
