package main

import (
	"fmt"
	"log"
	"os"

	"portfolioledger/cmd"
	"portfolioledger/internal/util"

	_ "github.com/lib/pq"
)

func main() {
	fmt.Println(os.Getenv("commit_hash"))
	secrets, err := util.LoadSecrets()
	if err != nil {
		log.Fatal(err)
	}
	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	err = apiHandler.StartApi(secrets.Port)
	if err != nil {
		log.Fatal(err)
	}
}
