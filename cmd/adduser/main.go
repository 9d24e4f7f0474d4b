// cmd/adduser/main.go
// Creates or updates an API user allowed to modify runs.
//
// Usage:
//
//	go run ./cmd/adduser -username pat -password testing
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/padraicbc/runlog/config"
	bundb "github.com/padraicbc/runlog/db"
	"github.com/padraicbc/runlog/handlers"
	"github.com/padraicbc/runlog/store"
)

func main() {
	username := flag.String("username", "", "username (required)")
	password := flag.String("password", "", "plain-text password (required)")
	flag.Parse()

	hash, err := handlers.HashPasswordForUser(*username, *password)
	if err != nil {
		log.Fatal("adduser: ", err)
	}

	ctx := context.Background()
	cfg := config.Load()
	db := bundb.Setup(cfg)
	defer db.Close()

	if err := bundb.CreateTables(ctx, db); err != nil {
		log.Fatal("create tables: ", err)
	}

	if err := store.New(db).UpsertUser(ctx, *username, hash); err != nil {
		log.Fatal("save user: ", err)
	}

	fmt.Printf("user %q saved\n", *username)
}
