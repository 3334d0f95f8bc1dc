// Copyright © 2018 One Concern

package main

import (
	"github.com/oneconcern/overrides/cmd/overrides/cmd"
)

func main() {
	cmd.Execute()
}
