package main

import (
	"context"
	"flag"
	"fmt"
	"os"
)

const version = "0.3.0"

var (
	versionOption = flag.Bool("version", false, "javagen version")
	configOption  = flag.String("config", "", "path to the config file")
	watchOption   = flag.Bool("watch", false, "regenerate when schema files change")
)

func main() {
	flag.Parse()

	if *versionOption {
		fmt.Printf("javagen v%s", version)

		return
	}

	ctx := context.Background()
	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
