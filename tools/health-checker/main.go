package main

import (
	"fmt"
	"net/http"
	"os"
	"time"
)

// Probes one or more health endpoints and exits non-zero on the first
// failure. Meant to be used as a container HEALTHCHECK, where a shell and
// curl are not available in a scratch image.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: health-checker <url> [<url>...]")
		os.Exit(1)
	}

	client := &http.Client{
		Timeout: 3 * time.Second,
	}

	for _, url := range os.Args[1:] {
		resp, err := client.Get(url)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", url, err)
			os.Exit(1)
		}
		resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			fmt.Fprintf(os.Stderr, "%s: status %d\n", url, resp.StatusCode)
			os.Exit(1)
		}
	}

	os.Exit(0)
}
