// Command metaoxide extracts structured data from HTML documents.
//
//	metaoxide extract page.html
//	metaoxide extract --format microdata --base-url https://ex.com/ page.html
//	metaoxide extract --url https://ex.com/ --query '.opengraph.title'
//	cat page.html | metaoxide extract --yaml
//	metaoxide manifest --url https://ex.com/manifest.json
//	metaoxide oembed 'https://ex.com/oembed?url=...'
//	metaoxide serve --addr :8080
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(&http.Client{}).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
