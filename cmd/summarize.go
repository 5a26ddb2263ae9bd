package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"docsum/src/chunk"
	"docsum/src/core/study"
	"docsum/src/document"
	"docsum/src/llm"
)

var (
	summarizeFile      string
	summarizeMediaType string
	summarizeOut       string
)

// summarizeCmd represents the summarize command
var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize a local document from the command line",
	Long: `Summarize runs the full pipeline against a local file: the document is
loaded, chunked, each chunk is summarized, and the chunk summaries are
combined into one final summary printed to stdout.`,
	Run: func(cmd *cobra.Command, args []string) {
		if summarizeFile == "" {
			fmt.Println("Error: --file is required")
			return
		}

		mediaType := summarizeMediaType
		if mediaType == "" {
			mediaType = mediaTypeFromExtension(summarizeFile)
		}
		if mediaType == "" {
			fmt.Printf("Error: cannot infer media type of %s, pass --media-type\n", summarizeFile)
			return
		}

		data, err := os.ReadFile(summarizeFile)
		if err != nil {
			fmt.Printf("Error reading file: %v\n", err)
			return
		}

		splitter, err := chunk.NewSplitter(viper.GetInt("chunker.size"), viper.GetInt("chunker.overlap"))
		if err != nil {
			fmt.Printf("Error in chunker configuration: %v\n", err)
			return
		}

		llmClient, err := llm.NewClient(llm.Config{
			Provider:   viper.GetString("llm.provider"),
			Model:      viper.GetString("llm.model"),
			BaseURL:    viper.GetString("llm.base_url"),
			APIKey:     viper.GetString("llm.api_key"),
			Timeout:    viper.GetDuration("llm.timeout"),
			MaxRetries: uint64(viper.GetInt("llm.max_retries")),
		})
		if err != nil {
			fmt.Printf("Error creating llm client: %v\n", err)
			return
		}

		ctx := context.Background()
		scratch := document.NewLocalScratchStore(filepath.Join(os.TempDir(), "docsum-uploads"))
		loader := document.NewLoader(scratch)

		doc, err := loader.Load(ctx, filepath.Base(summarizeFile), mediaType, data)
		if err != nil {
			fmt.Printf("Error loading document: %v\n", err)
			return
		}

		chunks := splitter.Split(doc)
		fmt.Printf("Summarizing %s (%d chunks)\n", doc.SourceName, len(chunks))

		bar := progressbar.Default(int64(len(chunks)), "summarizing chunks")
		engine := study.NewEngine(llmClient, study.WithProgress(func(done, total int) {
			bar.Add(1)
		}))

		session := study.NewSession("cli", doc.SourceName, chunks)
		summary, err := engine.Summarize(ctx, session)
		if err != nil {
			fmt.Printf("Error summarizing document: %v\n", err)
			return
		}

		fmt.Println("Final summary:")
		fmt.Println("-------------------")
		fmt.Println(summary)
		fmt.Println("-------------------")

		if summarizeOut != "" {
			if err := os.WriteFile(summarizeOut, []byte(summary), 0644); err != nil {
				fmt.Printf("Error writing summary to %s: %v\n", summarizeOut, err)
				return
			}
			fmt.Printf("Summary written to %s\n", summarizeOut)
		}
	},
}

func init() {
	rootCmd.AddCommand(summarizeCmd)

	summarizeCmd.Flags().StringVar(&summarizeFile, "file", "", "path of the document to summarize")
	summarizeCmd.Flags().StringVar(&summarizeMediaType, "media-type", "", "declared media type (text/plain, text/csv, application/pdf)")
	summarizeCmd.Flags().StringVar(&summarizeOut, "out", "", "write the final summary to this file")
}

func mediaTypeFromExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return string(document.SourceTypePlain)
	case ".csv":
		return string(document.SourceTypeCSV)
	case ".pdf":
		return string(document.SourceTypePDF)
	default:
		return ""
	}
}
