package bot

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	ticketUC "tlogi/internal/application/ticket/usecases"
	"tlogi/internal/infrastructure/config"
	"tlogi/internal/infrastructure/database"
	"tlogi/internal/infrastructure/discord"
	"tlogi/internal/infrastructure/repository"
	"tlogi/internal/shared/logger"
	"tlogi/internal/shared/version"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bot",
		Short: "Start the Discord bot",
		Long:  `Start the Discord gateway bot and its internal webhook server. The bot opens ticket channels, records channel messages, and delivers staff replies and transcripts.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

// run exits with an error when the bot token is missing or the gateway
// login fails; a helpdesk without its bot is not degraded, it is down.
func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting bot", "environment", env, "version", version.Current)

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	log := logger.NewLogger()
	db := database.Get()

	ticketRepo := repository.NewTicketRepository(db)
	messageRepo := repository.NewTicketMessageRepository(db)
	userRepo := repository.NewUserRepository(db)

	session, err := discord.NewSession(cfg.Bot)
	if err != nil {
		return err
	}

	// The bot talks to Discord directly; no webhook round-trip for its
	// own notifications.
	notifier := discord.NewNotifier(session, ticketRepo, log)
	allocator := discord.NewChannelAllocator(session, cfg.Bot, log)

	createTicketUC := ticketUC.NewCreateTicketUseCase(ticketRepo, allocator, log)
	postMessageUC := ticketUC.NewPostMessageUseCase(ticketRepo, messageRepo, notifier, log)
	closeTicketUC := ticketUC.NewCloseTicketUseCase(
		ticketRepo, messageRepo, userRepo, notifier, cfg.Dashboard.FrontendOrigin, log,
	)

	b := discord.NewBot(session, cfg.Bot, discord.BotDeps{
		CreateTicket: createTicketUC,
		CloseTicket:  closeTicketUC,
		PostMessage:  postMessageUC,
		TicketRepo:   ticketRepo,
		UserRepo:     userRepo,
		Logger:       log,
	})

	if err := b.Start(); err != nil {
		return fmt.Errorf("failed to start bot: %w", err)
	}
	defer b.Stop()

	webhook := discord.NewWebhookServer(notifier, ticketRepo, cfg.Bot, log)

	errCh := make(chan error, 1)
	go func() {
		if err := webhook.Start(); err != nil {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	logger.Info("shutting down bot")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := webhook.Shutdown(ctx); err != nil {
		logger.Error("webhook server forced to shutdown", "error", err)
	}

	logger.Info("bot exited gracefully")
	return nil
}
