package main

import (
	"github.com/woojoong88/atomix/cmd"
)

func main() {
	cmd.Execute()
}
