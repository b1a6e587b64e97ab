package main

import (
	"flag"
	"log"

	"github.com/rtwknd/go-weekend-raytracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port for the preview server")
	flag.Parse()

	srv := server.NewServer(*port)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
