package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	discordrouter "github.com/pokestore/order-bot/internal/adapters/discord"
	"github.com/pokestore/order-bot/internal/app/service"
	"github.com/pokestore/order-bot/internal/infra/config"
	"github.com/pokestore/order-bot/internal/infra/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	_ = godotenv.Load()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	// Store: Postgres si hay DATABASE_URL, memoria si no
	var (
		usersRepo  service.UserRepo
		ordersRepo service.OrderRepo
		configRepo service.ConfigRepo
	)
	if cfg.DatabaseURL != "" {
		db, err := storage.Open(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		if err := storage.Migrate(db); err != nil {
			log.Fatal("migrate:", err)
		}
		log.Println("✅ DB lista y migrada")
		usersRepo = storage.NewUserRepo(db)
		ordersRepo = storage.NewOrderRepo(db)
		configRepo = storage.NewConfigRepo(db)
	} else {
		mem := storage.NewMemoryStore()
		usersRepo, ordersRepo, configRepo = mem, mem, mem
		log.Println("ℹ️ Sin DATABASE_URL: los pedidos viven solo en memoria")
	}

	// Discord session
	auth := cfg.DiscordToken
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(auth)), "bot ") {
		auth = "Bot " + strings.TrimSpace(auth)
	}
	s, err := discordgo.New(auth)
	if err != nil {
		log.Fatal(err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages
	if err := s.Open(); err != nil {
		log.Fatal(err)
	}
	defer s.Close()
	log.Printf("✅ Conectado como %s (%s)", s.State.User.Username, s.State.User.ID)
	_ = s.UpdateGameStatus(0, "poke store la mejor tienda")

	// Services
	orderSvc := service.NewOrderService(usersRepo, ordersRepo)
	policySvc := service.NewPolicyService(cfg.AllowedRoles, cfg.OrderChannelID, configRepo)

	// Router
	r := discordrouter.NewRouter(s, cfg.DiscordGuild, orderSvc, policySvc, cfg.InviteURL)
	if err := r.Register(); err != nil {
		log.Fatalf("registrando comandos: %v", err)
	}
	r.Handlers()
	if cfg.DiscordGuild != "" {
		log.Printf("✅ comandos registrados en guild %s", cfg.DiscordGuild)
	} else {
		log.Println("✅ comandos registrados globalmente")
	}

	// Esperar señal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-stop
}
