package main

import (
	"os"

	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
