package main

import (
	"github.com/imagespy/driverimages/cmd"
)

func main() {
	cmd.Execute()
}
