package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/farcourt/lexis/lexer"
	"github.com/spf13/cobra"
)

var (
	jsonOut bool
	verbose bool
)

const version = "0.1.0"

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	scanCmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the token stream as JSON")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "lexis",
	Short: "Lexis is a CLI tool for tokenizing source text",
	Long:  `Lexis tokenizes source text into a typed token stream and displays it for inspection.`,
}

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Tokenize a file",
	Long:  `Tokenize a file and print every token with its kind, offsets and text.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filePath := args[0]
		content, err := os.ReadFile(filePath)
		if err != nil {
			log.Fatalf("Failed to read file: %v", err)
		}

		tokens, err := lexer.Tokenize(string(content))
		if err != nil {
			log.Fatalf("Failed to tokenize %s: %v", filePath, err)
		}

		if verbose {
			spew.Dump(tokens)
		}

		if jsonOut {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(tokens); err != nil {
				log.Fatalf("Failed to encode tokens: %v", err)
			}
			return
		}

		for _, tok := range tokens {
			fmt.Printf("%5d-%-5d %-12s %q\n", tok.Start, tok.End, tok.Kind, tok.Text)
		}
		fmt.Printf("Successfully scanned %s\n", filePath)
		fmt.Printf("Found %d tokens\n", len(tokens))
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the lexis version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lexis %s\n", version)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
