// Command rnaenum enumerates candidate secondary structures of an RNA
// sequence under mutation and bond restrictions.
//
//	rnaenum enumerate AUGCAU --max-mutations 1 --max-bonds 2
//	rnaenum enumerate --config job.yaml --parallel --count
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
