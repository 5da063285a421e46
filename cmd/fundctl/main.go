// fundctl is a small command-line client for the fund API. It talks to a
// running server over HTTP and prints responses as indented JSON.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
