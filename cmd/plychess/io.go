package main

import (
	"bufio"
	"context"
	"os"

	"github.com/seekerror/logw"
)

// readStdinLines reads stdin lines into a chan. Async.
func readStdinLines(ctx context.Context) <-chan string {
	ret := make(chan string, 1)
	go func() {
		defer close(ret)

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			logw.Debugf(ctx, "<< %v", scanner.Text())
			ret <- scanner.Text()
		}
	}()
	return ret
}
