package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"vertexit-site/internal/config"
	"vertexit-site/internal/db"
	"vertexit-site/internal/docstore"
	"vertexit-site/internal/importer"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to a JSON content export")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatalf("open file: %v", err)
	}
	defer f.Close()

	imp := importer.NewJSONImporter(docstore.NewPostgres(pool))

	start := time.Now()
	count, err := imp.Run(ctx, f)
	if err != nil {
		log.Fatalf("import failed after %d documents: %v", count, err)
	}

	fmt.Printf("Imported %d documents in %s\n", count, time.Since(start).Truncate(time.Millisecond))
}
