package main

import (
	"fmt"
	"os"
)

func main() {
	Execute()
}

// fatal is for failures after the server has left cobra's error path.
func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "tracker: %s: %v\n", msg, err)
	os.Exit(1)
}
