package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Work with documents",
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents in a folder",
	RunE:  runDocsList,
}

var docsUploadCmd = &cobra.Command{
	Use:   "upload [file]",
	Short: "Upload a local file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsUpload,
}

var docsDownloadCmd = &cobra.Command{
	Use:   "download [document-id]",
	Short: "Download a document's content",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsDownload,
}

var (
	docsFolder string
	docsSite   string
	docsName   string
	docsOut    string
)

func init() {
	docsListCmd.Flags().StringVar(&docsFolder, "folder", "", "folder path to list (drive root when omitted)")
	docsListCmd.Flags().StringVar(&docsSite, "site", "", "site ID (first available site when omitted)")
	docsUploadCmd.Flags().StringVar(&docsFolder, "folder", "", "destination folder path (drive root when omitted)")
	docsUploadCmd.Flags().StringVar(&docsSite, "site", "", "site ID (first available site when omitted)")
	docsUploadCmd.Flags().StringVar(&docsName, "name", "", "destination file name (defaults to the local file name)")
	docsDownloadCmd.Flags().StringVar(&docsSite, "site", "", "site ID (first available site when omitted)")
	docsDownloadCmd.Flags().StringVarP(&docsOut, "output", "o", "", "write content to a file instead of stdout")

	docsCmd.AddCommand(docsListCmd)
	docsCmd.AddCommand(docsUploadCmd)
	docsCmd.AddCommand(docsDownloadCmd)
	rootCmd.AddCommand(docsCmd)
}

func runDocsList(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	provider, err := resolveProvider(ctx)
	if err != nil {
		return err
	}

	docs, err := provider.ListDocuments(ctx, docsFolder, docsSite)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents found.")
		return nil
	}

	for _, doc := range docs {
		kind := "file"
		if doc.IsFolder {
			kind = "folder"
		}
		cmd.Printf("  %s  %s (%s", doc.ID, doc.Name, kind)
		if !doc.IsFolder {
			cmd.Printf(", %d bytes", doc.Size)
		}
		cmd.Println(")")
	}
	return nil
}

func runDocsUpload(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	provider, err := resolveProvider(ctx)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	name := docsName
	if name == "" {
		name = filepath.Base(args[0])
	}

	doc, err := provider.UploadDocument(ctx, name, content, docsFolder, docsSite)
	if err != nil {
		return fmt.Errorf("failed to upload document: %w", err)
	}

	cmd.Printf("Uploaded %s (%s)\n", doc.Path, doc.ID)
	if doc.WebURL != "" {
		cmd.Printf("URL: %s\n", doc.WebURL)
	}
	return nil
}

func runDocsDownload(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	provider, err := resolveProvider(ctx)
	if err != nil {
		return err
	}

	content, err := provider.DownloadDocument(ctx, args[0], docsSite)
	if err != nil {
		return fmt.Errorf("failed to download document: %w", err)
	}

	if docsOut == "" {
		cmd.OutOrStdout().Write(content)
		return nil
	}

	if err := os.WriteFile(docsOut, content, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	cmd.Printf("Wrote %d bytes to %s\n", len(content), docsOut)
	return nil
}
