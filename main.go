package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"starboard-bot/bot"
	"starboard-bot/config"
	"starboard-bot/database"
	"starboard-bot/handlers"
	"starboard-bot/starboard"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	store := openStore(settings)

	seed := make(map[string]string)
	if store != nil {
		seed = store.Load()
	}
	ledger := starboard.NewLedger(seed)

	b, err := bot.New(settings)
	if err != nil {
		log.Fatalf("Error initializing bot: %v", err)
	}

	platform := starboard.NewDiscordPlatform(b.Session, settings.Starboard.Guild, settings.Starboard.Emoji)
	b.Orchestrator = starboard.NewOrchestrator(platform, ledger, &settings.Starboard)

	if err := b.Start(handlers.Register); err != nil {
		log.Fatalf("Error starting bot: %v", err)
	}

	// The ledger must be flushed on every exit path, or approvals made since
	// startup would be lost and re-published after a restart.
	defer saveLedger(store, ledger)

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	log.Println("Received shutdown signal, saving ledger and stopping...")
	b.Stop()
}

// openStore builds the configured persistence backend. A backend that cannot
// be opened disables persistence for this run instead of blocking startup.
func openStore(settings *config.Settings) database.Store {
	if !settings.Persistence.Enabled {
		log.Println("Persistence is disabled, approvals will not survive restarts.")
		return nil
	}

	switch settings.Persistence.Backend {
	case "sqlite":
		store, err := database.NewSQLiteStore(settings.Persistence.Path)
		if err != nil {
			log.Printf("Could not open approvals database: %v. Running without persistence.", err)
			return nil
		}
		return store
	default:
		return database.NewJSONStore(settings.Persistence.Path)
	}
}

func saveLedger(store database.Store, ledger *starboard.Ledger) {
	if store == nil {
		return
	}
	if err := store.Save(ledger.Entries()); err != nil {
		log.Printf("Failed to save approvals: %v", err)
	}
	if err := store.Close(); err != nil {
		log.Printf("Failed to close approvals store: %v", err)
	}
}
