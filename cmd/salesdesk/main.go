package main

import (
	"github.com/cycleworks/salesdesk/internal/cmd"
)

func main() {
	cmd.Execute()
}
