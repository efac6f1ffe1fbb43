package cli

import (
	"github.com/spf13/cobra"
)

// NewFileCmd создаёт группу команд для работы с файлами.
func NewFileCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file",
		Short: "Manage item files",
	}

	cmd.AddCommand(
		newFileUploadCmd(clientFn, outputFn),
	)

	return cmd
}

func newFileUploadCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var itemID string
	var columnID string

	cmd := &cobra.Command{
		Use:   "upload <path>",
		Short: "Upload a file into an item column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			result, err := client.Upload(itemID, columnID, args[0])
			if err != nil {
				return err
			}

			out.JSON(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&itemID, "item", "", "Item ID (required)")
	cmd.Flags().StringVar(&columnID, "column", "", "File column ID (required)")
	cmd.MarkFlagRequired("item")
	cmd.MarkFlagRequired("column")

	return cmd
}
