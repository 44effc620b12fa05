package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func generatePasswordHash(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Prints a bcrypt hash for seeding an admin row by hand.
func main() {
	password := "ChangeMeAdmin2026!"
	if len(os.Args) > 1 {
		password = os.Args[1]
	}
	hash, err := generatePasswordHash(password, bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
