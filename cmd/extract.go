package cmd

import (
	"github.com/finanzas-ar/resumen/extractor"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extracts statement(s)",
	Long: `Extracts a given statement or a directory of statements.
Each PDF (or photographed statement) is run through the extraction
pipeline and the results are printed as JSON.`,
	Run: func(cmd *cobra.Command, args []string) {
		extractor.ExecuteAgainstPath(viper.GetString("target"))
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringP("folder", "f", ".", "File or folder in which resumen will scan for statements")
	viper.BindPFlag("target", extractCmd.Flags().Lookup("folder"))
}
