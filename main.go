package main

import (
	"context"
	"fmt"
	"os"

	"github.com/beka-birhanu/vacuum-planner/cli"
)

func main() {
	if err := cli.New().Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
