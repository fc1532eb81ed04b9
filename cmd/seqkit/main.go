package main

import (
	"os"

	"github.com/msto63/seqkit/cmd/seqkit/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
