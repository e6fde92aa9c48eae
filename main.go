package main

import "github.com/dr460nf1r3/calamares/cmd"

func main() {
	cmd.Execute()
}
