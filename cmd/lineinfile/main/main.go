package main

import (
	"os"

	"github.com/arthur-debert/lineinfile/cmd/lineinfile"
)

func main() {
	os.Exit(lineinfile.Run(os.Args[1:], os.Stdout, os.Stderr))
}
