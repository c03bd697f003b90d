// Command jlog writes one structured log record from the command line.
package main

import "github.com/philipp01105/jsonlog/cmd/jlog/cmd"

func main() {
	cmd.Execute()
}
