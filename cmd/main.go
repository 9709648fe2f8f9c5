package main

import "os"

// @title        logdash API
// @version      1.0
// @description  Log viewer dashboard over a remote log service.
// @BasePath     /
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
