package queues

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/woojoong88/atomix/pkg/client"
	v1 "github.com/woojoong88/atomix/pkg/client/v1"
)

type takeArgs struct {
	Queue string `validate:"required"`
	Count int
}

func takeItems(cmd *cobra.Command, c client.Client, args map[string]string) error {
	a := takeArgs{Queue: args["queue"], Count: 1}

	if s, ok := args["count"]; ok {
		count, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("count must be an integer, got %q", s)
		}
		a.Count = count
	}

	if err := validate.Struct(a); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}

	res, err := c.V1().TakeItemsWithResponse(cmd.Context(), a.Queue, &v1.TakeItemsParams{Items: a.Count})
	if err != nil {
		return err
	}

	if res.StatusCode() != 200 {
		cmd.PrintErrf("Take failed: %d\n", res.StatusCode())
		return nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, res.Body); err != nil {
		cmd.PrintErrln("Take failed: invalid response body")
		return nil
	}

	cmd.Println(buf.String())
	return nil
}
