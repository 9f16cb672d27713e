// Command admintoken prints a bearer token for the event management
// endpoints, signed with the configured JWT secret.
package main

import (
	"flag"
	"fmt"
	"log"

	"kurabi-service/internal/app/config"
	"kurabi-service/internal/pkg/utils"
)

func main() {
	subject := flag.String("subject", "admin", "subject recorded in the token")
	flag.Parse()

	internalConfig := config.NewInternalConfig()

	token, err := utils.GenerateAdminJWT(*subject, internalConfig.JWT.Secret, internalConfig.JWT.ExpTimeInHour)
	if err != nil {
		log.Fatalf("Failed to generate admin token: %s", err.Error())
	}

	fmt.Println(token)
}
