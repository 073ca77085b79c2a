package main

import "github.com/alibaba/arraystack/pkg/cmd"

func main() {
	cmd.Execute()
}
