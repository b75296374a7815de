package main

import (
	"fmt"
	"os"

	. "mdgo/internal/config"
	. "mdgo/internal/logger"
	"mdgo/internal/server"
	"mdgo/internal/ui"
)

func main() {
	Log.Start()
	conf := GetConfig()

	if len(os.Args) > 1 && os.Args[1] == "serve" {
		err := server.Start(conf)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		return
	}

	filename := ""
	if len(os.Args) > 1 { filename = os.Args[1] }

	u := ui.NewUi(conf)
	u.Start(filename)
}
