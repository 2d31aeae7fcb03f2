// main.go
// HTTP entrypoint for the skrafl-engine move-generation API.

package main

import (
	"context"
	"log"
	"net/http"

	"github.com/halldorb/skrafl-engine/config"
	"github.com/halldorb/skrafl-engine/httpapi"
	"github.com/halldorb/skrafl-engine/store"

	skrafl "github.com/halldorb/skrafl-engine"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading configuration: %v", err)
	}

	words, err := cfg.LoadWords()
	if err != nil {
		log.Fatalf("loading word list: %v", err)
	}
	lex := skrafl.NewLexiconFromWords(words)
	srv := httpapi.NewServer(lex)

	if cfg.DatastoreProjectID != "" {
		st, err := store.Open(context.Background(), cfg.DatastoreProjectID)
		if err != nil {
			log.Fatalf("opening datastore: %v", err)
		}
		defer st.Close()
	}

	log.Printf("listening on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, srv.Handler()); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
