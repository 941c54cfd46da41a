package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/titlespec"
)

// Run executes the serve command. The dataset loads in the background so
// the server answers with the loading state right away.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := deps.Server
	srv.Addr = c.Addr
	srv.DefaultFirst = c.DefaultFirst

	if err := srv.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", titlespec.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Serving title specifications at %s\n", srv.URL())

	go func() {
		reloadCatalog(deps.Ctx, deps.Catalog, deps.Logger)
		if c.ReloadInterval <= 0 {
			return
		}

		ticker := time.NewTicker(c.ReloadInterval)
		defer ticker.Stop()
		for {
			select {
			case <-deps.Ctx.Done():
				return
			case <-ticker.C:
				reloadCatalog(deps.Ctx, deps.Catalog, deps.Logger)
			}
		}
	}()

	<-deps.Ctx.Done()

	return srv.Close()
}
