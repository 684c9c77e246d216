package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/idilsaglam/reminders/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], cli.Options{}))
}
