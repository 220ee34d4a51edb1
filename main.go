package main

import "github.com/Suchak123/RSS-Extractor/cmd"

func main() {
	cmd.Execute()
}
