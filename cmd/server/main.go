// Command server runs the site backend API: catalog, order, quote, and
// contact endpoints over HTTP.
//
// Configuration comes from the YAML file named by CONFIG_PATH plus
// environment overrides. Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kdtech/site-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
