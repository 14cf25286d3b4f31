package queues

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/woojoong88/atomix/pkg/client"
)

type addArgs struct {
	Queue string `validate:"required"`
	Item  string
}

func addItem(cmd *cobra.Command, c client.Client, args map[string]string) error {
	a := addArgs{Queue: args["queue"], Item: args["item"]}
	if err := validate.Struct(a); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}

	res, err := c.V1().AddItemWithTextBodyWithResponse(cmd.Context(), a.Queue, a.Item)
	if err != nil {
		return err
	}

	if res.StatusCode() != 200 {
		cmd.PrintErrf("Add failed: %d\n", res.StatusCode())
	}

	return nil
}
