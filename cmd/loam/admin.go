package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"loam/internal/auth"
)

// handleAdminCommands runs one-off administrative actions and returns; the
// caller exits the process afterwards.
//
//	loam admin create-user <username> <display name>
func handleAdminCommands(db *gorm.DB) {
	if len(flag.Args()) == 0 || flag.Arg(0) != "admin" {
		return
	}

	switch flag.Arg(1) {
	case "create-user":
		username := flag.Arg(2)
		displayName := flag.Arg(3)
		if username == "" || displayName == "" {
			log.Fatal().Msg("usage: loam admin create-user <username> <display name>")
		}

		fmt.Print("Password: ")
		reader := bufio.NewReader(os.Stdin)
		password, err := reader.ReadString('\n')
		if err != nil {
			log.Fatal().Err(err).Msg("error reading password")
		}
		password = strings.TrimSpace(password)

		service := auth.NewService(auth.NewRepository(db))
		user, err := service.RegisterUser(username, displayName, password)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating user")
		}
		log.Info().Str("username", user.Username).Msg("user created")

	default:
		log.Fatal().Str("command", flag.Arg(1)).Msg("unknown admin command")
	}
}
