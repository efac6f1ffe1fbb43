package cli

import (
	"github.com/spf13/cobra"
)

// NewItemCmd создаёт группу команд для работы с items.
func NewItemCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage board items",
	}

	cmd.AddCommand(
		newItemCreateCmd(clientFn, outputFn),
	)

	return cmd
}

func newItemCreateCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var boardID string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create an item on a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			result, err := client.CreateItem(boardID, args[0])
			if err != nil {
				return err
			}

			out.JSON(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&boardID, "board", "", "Board ID (required)")
	cmd.MarkFlagRequired("board")

	return cmd
}

// NewSubitemCmd создаёт группу команд для работы с subitems.
func NewSubitemCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subitem",
		Short: "Manage subitems",
	}

	cmd.AddCommand(
		newSubitemCreateCmd(clientFn, outputFn),
	)

	return cmd
}

func newSubitemCreateCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var parentID string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a subitem under a parent item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			result, err := client.CreateSubitem(parentID, args[0])
			if err != nil {
				return err
			}

			out.JSON(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&parentID, "parent", "", "Parent item ID (required)")
	cmd.MarkFlagRequired("parent")

	return cmd
}
