// Command demoserver serves sample real estate listings for trying out fhscan.
// Usage: go run ./cmd/demoserver [port]
// Default port: 9999
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/raysh454/fhscan/internal/demoserver"
)

func main() {
	cfg := demoserver.DefaultConfig()

	// Optional: custom port from command line
	if len(os.Args) > 1 {
		port, err := strconv.Atoi(os.Args[1])
		if err != nil || port < 1 || port > 65535 {
			log.Fatalf("Invalid port: %s", os.Args[1])
		}
		cfg.Port = port
	}

	fmt.Println("===========================================")
	fmt.Println("   fhscan Demo Server - Sample Listings")
	fmt.Println("===========================================")
	fmt.Println()
	fmt.Println("Each listing has a draft version with fair housing")
	fmt.Println("problems and a revised, compliant version.")
	fmt.Println()
	fmt.Println("Listings:")
	for _, l := range demoserver.GetAllListings() {
		fmt.Printf("  %-28s %s\n", l.Path, l.Description)
	}
	fmt.Println()

	server := demoserver.NewDemoServer(cfg)
	if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
