package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gunawanst/assahra-api/app/auth"
	"github.com/gunawanst/assahra-api/app/config"
	"github.com/gunawanst/assahra-api/app/sheetstore"
)

// Bootstrap tool: appends an admin row directly, bypassing the HTTP layer.
// Useful when the admins tab is empty and no one can log in yet.
func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password (min 8 characters)")
	flag.Parse()

	addr := strings.ToLower(strings.TrimSpace(*email))
	if addr == "" || len(*password) < 8 {
		fmt.Println("usage: add_admin -email you@example.com -password <min 8 chars>")
		os.Exit(1)
	}

	ctx := context.Background()
	cfg := config.Load()

	client, err := sheetstore.NewClient(ctx, cfg)
	if err != nil {
		fmt.Printf("Failed to build sheets client: %v\n", err)
		os.Exit(1)
	}
	repo := sheetstore.NewRepo(client, cfg.Tables)

	admins, err := repo.Admins(ctx)
	if err != nil {
		fmt.Printf("Failed to read admins table: %v\n", err)
		os.Exit(1)
	}
	for _, admin := range admins {
		if admin.EmailKey() == addr {
			fmt.Printf("Admin %s already exists\n", addr)
			os.Exit(1)
		}
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Failed to hash password: %v\n", err)
		os.Exit(1)
	}
	if err := repo.AddAdmin(ctx, addr, hash, auth.AdminRole); err != nil {
		fmt.Printf("Failed to append admin row: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Admin created successfully: %s\n", addr)
}
