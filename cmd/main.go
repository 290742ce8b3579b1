package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Gnanasekark/Online-property-listing/internal/commands"
)

func main() {
	if err := commands.NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
