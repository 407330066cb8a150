package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
)

func main() {
	// Generate a 32-byte random secret for HS256 signing
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate secret: %v\n", err)
		os.Exit(1)
	}

	encoded := base64.StdEncoding.EncodeToString(secret)

	fmt.Println("Generated JWT signing secret.")
	fmt.Println("\nAdd this to your .env file:")
	fmt.Println("----------------------------------------")
	fmt.Printf("JWT_SECRET=%s\n", encoded)
}
