package main

import "github.com/daticahealth/snapdash/cmd"

func main() {
	cmd.Execute()
}
