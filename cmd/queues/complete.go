package queues

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/woojoong88/atomix/pkg/client"
)

type completeArgs struct {
	Queue string `validate:"required"`
	Task  string `validate:"required"`
}

func completeTask(cmd *cobra.Command, c client.Client, args map[string]string) error {
	a := completeArgs{Queue: args["queue"], Task: args["task"]}
	if err := validate.Struct(a); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}

	res, err := c.V1().CompleteTaskWithResponse(cmd.Context(), a.Queue, a.Task)
	if err != nil {
		return err
	}

	if res.StatusCode() != 200 {
		cmd.PrintErrf("Complete failed: %d\n", res.StatusCode())
	}

	return nil
}
