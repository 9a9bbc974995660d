package main

import "github.com/mtlaird/steam-db/cmd"

func main() {
	cmd.Execute()
}
