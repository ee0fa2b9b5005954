package main

import "github.com/lord-charite/blogApp/cmd"

func main() {
	cmd.Execute()
}
