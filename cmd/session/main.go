package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/attribute"

	"github.com/imtaco/infinity-session/infinity"
	"github.com/imtaco/infinity-session/infinity/events"
	"github.com/imtaco/infinity-session/internal/config"
	"github.com/imtaco/infinity-session/internal/errors"
	"github.com/imtaco/infinity-session/internal/log"
	"github.com/imtaco/infinity-session/internal/otel"
	"github.com/imtaco/infinity-session/internal/retry"
	"github.com/imtaco/infinity-session/internal/workflow"
	"github.com/imtaco/infinity-session/roster"
	"github.com/imtaco/infinity-session/session"
)

type Config struct {
	App     config.App     `mapstructure:"app"`
	Log     log.Config     `mapstructure:"log"`
	Otel    otel.Config    `mapstructure:"otel"`
	Session session.Config `mapstructure:"session"`

	JoinRetryInitial time.Duration `mapstructure:"join_retry_initial" validate:"gt=0"`
	JoinRetryMax     time.Duration `mapstructure:"join_retry_max" validate:"gt=0"`
	JoinRetryTimeout time.Duration `mapstructure:"join_retry_timeout" validate:"gte=0"`
}

func loadConfig() (*Config, error) {
	return config.Load(&Config{}, func(v *viper.Viper) {
		v.SetDefault("join_retry_initial", "1s")
		v.SetDefault("join_retry_max", "15s")
		v.SetDefault("join_retry_timeout", "2m")

		config.Setup(v, "app")
		log.Setup(v, "log")
		otel.Setup(v, "otel")
		session.Setup(v, "session")
	})
}

// loadEnvFile reads APP_ENV_FILE (default .env) into the process environment
// before viper looks at it. A missing file is not an error.
func loadEnvFile() error {
	path := os.Getenv("APP_ENV_FILE")
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return godotenv.Load(path)
}

func main() {
	if err := loadEnvFile(); err != nil {
		log.Fatal("Failed to load env file", err)
	}
	config, err := loadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration", err)
	}

	logger, err := log.NewLogger(&config.Log)
	if err != nil {
		log.Fatal("Failed to create logger", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	otelShutdown, err := otel.Init(ctx, &config.Otel, logger,
		attribute.String("infinity.node", config.Session.NodeURL),
		attribute.String("infinity.alias", config.Session.Alias))
	if err != nil {
		logger.Fatal("Failed to initialize OTEL provider", log.Error(err))
	}

	logger.Info("Joining conference",
		log.String("node", config.Session.NodeURL),
		log.String("alias", config.Session.Alias),
		log.String("display_name", config.Session.DisplayName))

	deps := session.Deps{
		API: infinity.New(config.Session.NodeURL, config.Session.Alias, logger.Module("Infinity"),
			infinity.WithTimeout(config.Session.RequestTimeout)),
		Source: events.NewSource(config.Session.NodeURL, config.Session.Alias, nil, logger.Module("Events")),
	}

	var sess *session.Session
	joinRetry := retry.New(logger.Module("Join"), config.JoinRetryInitial, config.JoinRetryMax, config.JoinRetryTimeout)
	err = joinRetry.Do(ctx, func() error {
		s, err := session.Join(ctx, config.Session, deps, logger.Module("Session"))
		if err != nil {
			if errors.Is(err, infinity.ErrInvalidToken) ||
				errors.Is(err, infinity.ErrNoSuchConference) ||
				errors.Is(err, infinity.ErrNoSuchNode) {
				return retry.Permanent(err)
			}
			return err
		}
		sess = s
		return nil
	})
	if err != nil {
		logger.Fatal("Failed to join conference", log.Error(err))
	}

	joined := sess.Joined()
	logger.Info("Joined conference",
		log.String("conference", joined.ConferenceName),
		log.Stringer("participant", joined.ParticipantID),
		log.String("role", string(joined.Role)),
		log.String("service_type", string(joined.ServiceType)),
		log.String("version", joined.Version.PseudoVersion))

	runCtx, stopRun := context.WithCancel(ctx)
	defer stopRun()
	go watch(runCtx, sess, logger.Module("Watch"))

	done := make(chan error, 1)
	go func() {
		done <- sess.Run(runCtx)
		// the session ended on its own: trigger the shutdown path
		cancel()
	}()

	cleanup := func(ctx context.Context) {
		stopRun()
		select {
		case err := <-done:
			if err != nil {
				logger.Error("Session ended with error", log.Error(err))
			}
		case <-ctx.Done():
			logger.Warn("Session did not stop in time")
		}
		if err := otelShutdown(ctx); err != nil {
			logger.Error("Failed to shutdown OTEL", log.Error(err))
		}
	}
	if err := workflow.WaitGracefulShutdown(ctx, logger.Module("CleanUp"), cleanup, config.App.ShutdownTimeout); err != nil {
		logger.Error("Shutdown incomplete", log.Error(err))
	}
}

// watch logs roster, flag and chat changes until ctx is done.
func watch(ctx context.Context, sess *session.Session, logger *log.Logger) {
	participants := sess.Roster().Participants().Subscribe(ctx)
	flags := sess.Roster().ConferenceFlags().Subscribe(ctx)
	messages, unsubscribe := sess.Messenger().Subscribe(16)
	defer unsubscribe()

	for {
		select {
		case snapshot, ok := <-participants:
			if !ok {
				return
			}
			names := lo.MapToSlice(snapshot, func(_ uuid.UUID, p roster.Participant) string {
				return p.DisplayName
			})
			logger.Info("Roster changed", log.Int("count", len(snapshot)), log.Any("participants", names))
		case f, ok := <-flags:
			if !ok {
				return
			}
			logger.Info("Conference flags changed",
				log.Bool("locked", lo.FromPtr(f.Locked)),
				log.Bool("guests_muted", lo.FromPtr(f.GuestsMuted)),
				log.Bool("guests_can_unmute", lo.FromPtr(f.GuestsCanUnmute)))
		case msg, ok := <-messages:
			if !ok {
				return
			}
			logger.Info("Message",
				log.String("from", msg.ParticipantName),
				log.Bool("direct", msg.Direct),
				log.String("type", msg.Type),
				log.String("payload", msg.Payload))
		case <-ctx.Done():
			return
		}
	}
}
